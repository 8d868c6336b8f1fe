package provenance

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func withFixedNow(t *testing.T, stamp string) {
	t.Helper()
	orig := nowUTC
	nowUTC = func() string { return stamp }
	t.Cleanup(func() { nowUTC = orig })
}

// TestNewSimpleRecord_SetsTimestamp verifies created_at is stamped in strict
// ISO-8601 UTC.
func TestNewSimpleRecord_SetsTimestamp(t *testing.T) {
	rec := NewSimpleRecord("Readings", map[string]any{"v": 1}, "station-1", SimpleOptions{})

	parsed, err := time.Parse(time.RFC3339, rec.CreatedAt)
	if err != nil {
		t.Fatalf("created_at %q is not RFC 3339: %v", rec.CreatedAt, err)
	}
	if parsed.Location() != time.UTC {
		t.Errorf("created_at %q not in UTC", rec.CreatedAt)
	}
	if !strings.HasSuffix(rec.CreatedAt, "Z") {
		t.Errorf("created_at %q missing Z suffix", rec.CreatedAt)
	}
}

// TestNewSimpleRecord_OmitsEmptyOptionals verifies that unset optional
// fields do not appear in the serialized record.
func TestNewSimpleRecord_OmitsEmptyOptionals(t *testing.T) {
	rec := NewSimpleRecord("Readings", "payload", "station-1", SimpleOptions{})

	raw, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, field := range []string{"description", "purpose", "tags", "source"} {
		if _, ok := m[field]; ok {
			t.Errorf("unset field %q present in serialized record", field)
		}
	}
	for _, field := range []string{"title", "creator", "created_at", "data"} {
		if _, ok := m[field]; !ok {
			t.Errorf("required field %q missing from serialized record", field)
		}
	}
}

// TestNewSimpleRecord_IncludesOptionals verifies optional fields survive
// when provided.
func TestNewSimpleRecord_IncludesOptionals(t *testing.T) {
	rec := NewSimpleRecord("Readings", "payload", "station-1", SimpleOptions{
		Description: "hourly samples",
		Purpose:     "monitoring",
		Source:      "sensor-7",
		Tags:        []string{"weather"},
	})
	if rec.Description != "hourly samples" || rec.Purpose != "monitoring" || rec.Source != "sensor-7" {
		t.Errorf("optional fields not carried: %+v", rec)
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != "weather" {
		t.Errorf("tags = %v, want [weather]", rec.Tags)
	}
}

// TestNewStandardRecord_Defaults verifies the default standard, creator type,
// and content hash wiring.
func TestNewStandardRecord_Defaults(t *testing.T) {
	withFixedNow(t, "2024-11-04T10:30:00Z")

	data := map[string]any{"experiment": "EXP-001"}
	rec, err := NewStandardRecord(data, "claude", StandardOptions{})
	if err != nil {
		t.Fatalf("NewStandardRecord failed: %v", err)
	}

	if rec.ProvenanceStandard != DefaultStandard {
		t.Errorf("standard = %q, want %q", rec.ProvenanceStandard, DefaultStandard)
	}
	if rec.Creator.AgentType != "ai_agent" {
		t.Errorf("agent_type = %q, want ai_agent", rec.Creator.AgentType)
	}
	if rec.Creator.AgentID != "claude" || rec.Creator.Name != "claude" {
		t.Errorf("creator identity = %+v", rec.Creator)
	}
	if rec.Timestamp != "2024-11-04T10:30:00Z" {
		t.Errorf("timestamp = %q", rec.Timestamp)
	}

	want, err := ContentHash(data)
	if err != nil {
		t.Fatalf("ContentHash failed: %v", err)
	}
	if rec.ContentHash != want {
		t.Errorf("content_hash = %s, want %s", rec.ContentHash, want)
	}
	if rec.Metadata != nil {
		t.Errorf("metadata should be nil without purpose or tags, got %+v", rec.Metadata)
	}
}

// TestNewStandardRecord_MetadataOnDemand verifies metadata appears only when
// purpose or tags are given.
func TestNewStandardRecord_MetadataOnDemand(t *testing.T) {
	rec, err := NewStandardRecord("payload", "analyst", StandardOptions{
		CreatorType: "human",
		Purpose:     "audit",
		Tags:        []string{"finance"},
	})
	if err != nil {
		t.Fatalf("NewStandardRecord failed: %v", err)
	}
	if rec.Creator.AgentType != "human" {
		t.Errorf("agent_type = %q, want human", rec.Creator.AgentType)
	}
	if rec.Metadata == nil {
		t.Fatal("metadata missing")
	}
	if rec.Metadata.Purpose != "audit" || len(rec.Metadata.Tags) != 1 {
		t.Errorf("metadata = %+v", rec.Metadata)
	}
}

// TestNewStandardRecord_StringDataHash verifies string payloads are hashed
// over raw bytes.
func TestNewStandardRecord_StringDataHash(t *testing.T) {
	rec, err := NewStandardRecord("raw text", "analyst", StandardOptions{})
	if err != nil {
		t.Fatalf("NewStandardRecord failed: %v", err)
	}
	if want := HashBytes([]byte("raw text")); rec.ContentHash != want {
		t.Errorf("content_hash = %s, want %s", rec.ContentHash, want)
	}
}
