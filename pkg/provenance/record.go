package provenance

import (
	"time"
)

// DefaultStandard is the provenance standard applied when callers do not
// request a specific one.
const DefaultStandard = "DaTA v1.0.0"

// Creator identifies who produced a standard record's data.
type Creator struct {
	AgentType string `json:"agent_type"`
	AgentID   string `json:"agent_id"`
	Name      string `json:"name,omitempty"`
}

// LineageEntry records one transformation step in a record's history.
type LineageEntry struct {
	SourceReference string `json:"source_reference,omitempty"`
	Transformation  string `json:"transformation,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
}

// Verification carries an optional cryptographic attestation of a record.
type Verification struct {
	Method    string `json:"method,omitempty"`
	Signature string `json:"signature,omitempty"`
	PublicKey string `json:"public_key,omitempty"`
}

// Metadata holds the optional descriptive fields of a standard record.
type Metadata struct {
	Purpose         string   `json:"purpose,omitempty"`
	RetentionPeriod string   `json:"retention_period,omitempty"`
	AccessLevel     string   `json:"access_level,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// SimpleRecord is the lightweight provenance shape for basic use cases:
// a title, a creator, the data itself, and a handful of optional annotations.
type SimpleRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Creator     string   `json:"creator"`
	CreatedAt   string   `json:"created_at"`
	Purpose     string   `json:"purpose,omitempty"`
	Data        any      `json:"data"`
	Tags        []string `json:"tags,omitempty"`
	Source      string   `json:"source,omitempty"`
}

// StandardRecord is a DaTA-compliant provenance record: the data plus its
// content hash, a structured creator, and optional lineage, verification,
// and metadata sections.
type StandardRecord struct {
	ProvenanceStandard string         `json:"provenance_standard"`
	ContentHash        string         `json:"content_hash"`
	Timestamp          string         `json:"timestamp"`
	Creator            Creator        `json:"creator"`
	Data               any            `json:"data"`
	Lineage            []LineageEntry `json:"lineage,omitempty"`
	Verification       *Verification  `json:"verification,omitempty"`
	Metadata           *Metadata      `json:"metadata,omitempty"`
}

// SimpleOptions carries the optional fields of NewSimpleRecord. Zero values
// are omitted from the record.
type SimpleOptions struct {
	Description string
	Purpose     string
	Source      string
	Tags        []string
}

// StandardOptions carries the optional fields of NewStandardRecord. Zero
// values mean "apply the documented default" for CreatorType and Standard
// and "omit" for the rest.
type StandardOptions struct {
	CreatorType string // default "ai_agent"
	Purpose     string
	Tags        []string
	Standard    string // default DefaultStandard
}

// nowUTC returns the current UTC time in strict ISO-8601 with a trailing "Z".
// Overridable in tests.
var nowUTC = func() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewSimpleRecord builds a simple provenance record, stamping created_at with
// the current UTC time. Optional fields are included only when set.
func NewSimpleRecord(title string, data any, creator string, opts SimpleOptions) SimpleRecord {
	return SimpleRecord{
		Title:       title,
		Description: opts.Description,
		Creator:     creator,
		CreatedAt:   nowUTC(),
		Purpose:     opts.Purpose,
		Data:        data,
		Tags:        opts.Tags,
		Source:      opts.Source,
	}
}

// NewStandardRecord builds a DaTA-compliant record for data created by
// creatorName. The content hash is computed over the canonical JSON of data,
// or over the raw bytes when data is already a string (see ContentHash).
// Purpose and tags, when present, land in the metadata section.
func NewStandardRecord(data any, creatorName string, opts StandardOptions) (StandardRecord, error) {
	hash, err := ContentHash(data)
	if err != nil {
		return StandardRecord{}, err
	}

	creatorType := opts.CreatorType
	if creatorType == "" {
		creatorType = "ai_agent"
	}
	standard := opts.Standard
	if standard == "" {
		standard = DefaultStandard
	}

	rec := StandardRecord{
		ProvenanceStandard: standard,
		ContentHash:        hash,
		Timestamp:          nowUTC(),
		Creator: Creator{
			AgentType: creatorType,
			AgentID:   creatorName,
			Name:      creatorName,
		},
		Data: data,
	}

	if opts.Purpose != "" || len(opts.Tags) > 0 {
		rec.Metadata = &Metadata{
			Purpose: opts.Purpose,
			Tags:    opts.Tags,
		}
	}

	return rec, nil
}
