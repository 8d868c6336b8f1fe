// Package provenance builds and validates provenance records for data
// uploaded to Swarm.
//
// Two record shapes are supported:
//
// Simple records are lightweight and human-oriented:
//
//	rec := provenance.NewSimpleRecord("Temperature Readings", data, "Weather Station AI",
//		provenance.SimpleOptions{Purpose: "climate monitoring"})
//
// Standard records follow the DaTA provenance standard, with a canonical
// content hash, structured creator identity, and optional lineage:
//
//	rec, err := provenance.NewStandardRecord(data, "claude", provenance.StandardOptions{
//		CreatorType: "ai_agent",
//		Purpose:     "statistical_analysis",
//	})
//
// # Content Hashing
//
// Hashes are prefixed with the algorithm name ("sha256:..."). String data is
// hashed over its raw UTF-8 bytes; structured data is serialized to RFC 8785
// canonical JSON first, so two semantically equal objects always hash the
// same regardless of field order.
//
// # Validation
//
// ValidateRecord checks a record against one of three schema types: "simple",
// "data" (the DaTA standard), or "swip" (the storage envelope, see the swip
// package). Required-field presence is always checked; simple and data
// records additionally go through compiled JSON Schema validation.
//
// # Guidance Content
//
// UploadGuidance and ExamplesFor serve static best-practices text and example
// records for clients deciding which shape to use.
package provenance
