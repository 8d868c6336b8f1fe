package provenance

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
)

// Schema type identifiers accepted by ValidateRecord.
const (
	SchemaSimple = "simple"
	SchemaData   = "data"
	SchemaSwip   = "swip"
)

// dataSchemaJSON is the JSON Schema for DaTA-compliant records.
const dataSchemaJSON = `{
  "type": "object",
  "properties": {
    "provenance_standard": {
      "type": "string",
      "enum": ["DaTA v1.0.0", "DaTA v1.1.0"]
    },
    "content_hash": {
      "type": "string",
      "pattern": "^(sha256:|md5:|sha1:)[a-fA-F0-9]+$"
    },
    "timestamp": {"type": "string", "format": "date-time"},
    "creator": {
      "type": "object",
      "properties": {
        "agent_type": {"type": "string"},
        "agent_id": {"type": "string"},
        "name": {"type": "string"}
      },
      "required": ["agent_type", "agent_id"]
    },
    "data": {"type": "object"},
    "lineage": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "source_reference": {"type": "string"},
          "transformation": {"type": "string"},
          "timestamp": {"type": "string", "format": "date-time"}
        }
      }
    },
    "verification": {
      "type": "object",
      "properties": {
        "method": {"type": "string"},
        "signature": {"type": "string"},
        "public_key": {"type": "string"}
      }
    },
    "metadata": {
      "type": "object",
      "properties": {
        "purpose": {"type": "string"},
        "retention_period": {"type": "string"},
        "access_level": {"type": "string"},
        "tags": {"type": "array", "items": {"type": "string"}}
      }
    }
  },
  "required": ["provenance_standard", "content_hash", "timestamp", "creator", "data"]
}`

// simpleSchemaJSON is the JSON Schema for simple records.
const simpleSchemaJSON = `{
  "type": "object",
  "properties": {
    "title": {"type": "string"},
    "description": {"type": "string"},
    "creator": {"type": "string"},
    "created_at": {"type": "string", "format": "date-time"},
    "purpose": {"type": "string"},
    "data": {},
    "tags": {"type": "array", "items": {"type": "string"}},
    "source": {"type": "string"}
  },
  "required": ["title", "creator", "data"]
}`

// requiredFields drives the basic (presence-only) validation path. The swip
// shape has no published JSON Schema, so it always validates through this
// table.
var requiredFields = map[string][]string{
	SchemaSimple: {"title", "creator", "data"},
	SchemaData:   {"provenance_standard", "content_hash", "timestamp", "creator", "data"},
	SchemaSwip:   {"content_hash", "provenance_standard", "data", "stamp_id"},
}

// compiledSchemas holds the structural validators, compiled once at package
// init. A nil entry means only the basic path runs for that type.
var compiledSchemas = map[string]*jsonschema.Schema{}

func init() {
	for name, doc := range map[string]string{
		SchemaSimple: simpleSchemaJSON,
		SchemaData:   dataSchemaJSON,
	} {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		url := fmt.Sprintf("https://schemas.datafund.io/provenance/%s.schema.json", name)
		if err := c.AddResource(url, strings.NewReader(doc)); err != nil {
			zap.L().Error("provenance schema load failed, falling back to basic validation",
				zap.String("schema", name), zap.Error(err))
			continue
		}
		compiled, err := c.Compile(url)
		if err != nil {
			zap.L().Error("provenance schema compile failed, falling back to basic validation",
				zap.String("schema", name), zap.Error(err))
			continue
		}
		compiledSchemas[name] = compiled
	}
}

// ValidateRecord checks record against the named schema type ("simple",
// "data", or "swip"). Required-field presence is always checked, with one
// error per missing field; when a compiled JSON Schema exists for the type,
// structural validation (field types, patterns, enums) runs as well.
//
// The verdict is informational: callers decide whether an invalid record is
// fatal.
func ValidateRecord(record map[string]any, schemaType string) (bool, []string) {
	required, ok := requiredFields[schemaType]
	if !ok {
		return false, []string{fmt.Sprintf("unknown schema type: %s", schemaType)}
	}

	var errs []string
	for _, field := range required {
		if _, present := record[field]; !present {
			errs = append(errs, fmt.Sprintf("missing required field: %s", field))
		}
	}
	if len(errs) > 0 {
		return false, errs
	}

	if schema := compiledSchemas[schemaType]; schema != nil {
		// The validator only understands decoded-JSON types, so normalize
		// through a marshal round trip before handing the record over.
		raw, err := json.Marshal(record)
		if err != nil {
			return false, []string{fmt.Sprintf("record not serializable: %v", err)}
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return false, []string{fmt.Sprintf("record not serializable: %v", err)}
		}
		if err := schema.Validate(doc); err != nil {
			return false, []string{err.Error()}
		}
	}
	return true, nil
}
