package swip

import (
	"encoding/base64"
	"encoding/json"

	"github.com/datafund/swarm-provenance-mcp/pkg/hexid"
	"github.com/datafund/swarm-provenance-mcp/pkg/provenance"
)

// Default envelope parameters.
const (
	DefaultStandard   = provenance.DefaultStandard
	DefaultEncryption = "none"
)

// Envelope is the integrity-checked container uploaded to Swarm: the inner
// record serialized to canonical JSON, base64-encoded, alongside the SHA-256
// hash of those same bytes and the postage stamp binding.
type Envelope struct {
	ContentHash        string `json:"content_hash"`
	ProvenanceStandard string `json:"provenance_standard"`
	Encryption         string `json:"encryption"`
	Data               string `json:"data"`
	StampID            string `json:"stamp_id"`
}

// Options carries the optional envelope parameters of Wrap. Zero values mean
// DefaultStandard and DefaultEncryption.
type Options struct {
	Standard   string
	Encryption string
}

// Wrap packages inner into an envelope bound to stampID. The stamp id only
// has its "0x" prefix stripped here, not length-checked, so gateway-issued
// ids pass through untouched. The content hash is computed over the exact
// canonical JSON bytes that land base64-encoded in Data, which is what makes
// Unwrap's integrity check possible.
func Wrap(inner any, stampID string, opts Options) (Envelope, error) {
	standard := opts.Standard
	if standard == "" {
		standard = DefaultStandard
	}
	encryption := opts.Encryption
	if encryption == "" {
		encryption = DefaultEncryption
	}

	canonical, err := provenance.CanonicalJSON(inner)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		ContentHash:        provenance.HashBytes(canonical),
		ProvenanceStandard: standard,
		Encryption:         encryption,
		Data:               base64.StdEncoding.EncodeToString(canonical),
		StampID:            hexid.StripPrefix(stampID),
	}, nil
}

// Unwrap decodes the envelope's payload and checks it against the content
// hash. It never fails: any base64 or JSON decode error, and any hash
// mismatch, yields (nil, false). Callers check the validity flag instead of
// handling errors.
func Unwrap(env Envelope) (map[string]any, bool) {
	raw, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, false
	}
	if provenance.HashBytes(raw) != env.ContentHash {
		return nil, false
	}
	var inner map[string]any
	if err := json.Unmarshal(raw, &inner); err != nil {
		return nil, false
	}
	return inner, true
}

// AsMap returns the envelope in the generic map shape used by record
// validation and tool output.
func (e Envelope) AsMap() map[string]any {
	return map[string]any{
		"content_hash":        e.ContentHash,
		"provenance_standard": e.ProvenanceStandard,
		"encryption":          e.Encryption,
		"data":                e.Data,
		"stamp_id":            e.StampID,
	}
}
