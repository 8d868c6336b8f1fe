package provenance

// UploadGuidance is the best-practices text surfaced alongside upload
// confirmations. Static content, kept close to the schemas it refers to.
const UploadGuidance = `PROVENANCE BEST PRACTICES

For research data, journalism, or any data requiring verification, consider
creating a structured provenance record before uploading.

Simple structure:

  {
    "title": "Brief description of what this is",
    "creator": "Your name or AI agent ID",
    "purpose": "Why this data was created",
    "data": { ... your actual data ... },
    "created_at": "2024-11-04T10:30:00Z",
    "tags": ["research", "experiment", "analysis"]
  }

For research or scientific data, use the DaTA standard:

  {
    "provenance_standard": "DaTA v1.0.0",
    "content_hash": "sha256:abc123...",
    "timestamp": "2024-11-04T10:30:00Z",
    "creator": {"agent_type": "ai_agent", "agent_id": "claude", "name": "Claude"},
    "data": { ... your research data ... },
    "lineage": [{"source_reference": "original_dataset_ref", "transformation": "analysis"}],
    "metadata": {"purpose": "climate_analysis", "tags": ["climate", "temperature"]}
  }

Benefits: verifiable authenticity, clear audit trails, reproducible research,
legal compliance, attribution tracking.

Any JSON structure can be uploaded, but provenance-aware formats help
establish trust and traceability.`

// Example is a named provenance record template with a short note on when
// to use it.
type Example struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Record      map[string]any `json:"record"`
}

var simpleExample = Example{
	Name:        "simple",
	Description: "Minimal record for everyday data. Good default when no formal standard is required.",
	Record: map[string]any{
		"title":   "Daily Temperature Readings",
		"creator": "Weather Station AI",
		"purpose": "Climate monitoring for research",
		"data": map[string]any{
			"location": "San Francisco, CA",
			"readings": []map[string]any{
				{"time": "2024-11-04T09:00:00Z", "temp_c": 18.5},
				{"time": "2024-11-04T12:00:00Z", "temp_c": 22.1},
			},
		},
		"tags": []string{"weather", "temperature", "monitoring"},
	},
}

var researchExample = Example{
	Name:        "research",
	Description: "DaTA-standard record with lineage and metadata. Use for scientific or reproducible work.",
	Record: map[string]any{
		"provenance_standard": "DaTA v1.0.0",
		"content_hash":        "sha256:a1b2c3d4e5f6...",
		"timestamp":           "2024-11-04T10:30:00Z",
		"creator": map[string]any{
			"agent_type": "ai_agent",
			"agent_id":   "claude-3-sonnet",
			"name":       "Claude AI Assistant",
		},
		"data": map[string]any{
			"experiment_id": "EXP-2024-001",
			"hypothesis":    "Temperature affects plant growth rate",
			"results": []map[string]any{
				{"condition": "20C", "growth_rate": 2.3},
				{"condition": "25C", "growth_rate": 3.1},
			},
		},
		"lineage": []map[string]any{
			{
				"source_reference": "sensor_data_ref_123",
				"transformation":   "statistical_analysis",
				"timestamp":        "2024-11-04T09:00:00Z",
			},
		},
		"metadata": map[string]any{
			"purpose":          "botanical_research",
			"retention_period": "10_years",
			"access_level":     "public",
			"tags":             []string{"botany", "temperature", "growth"},
		},
	},
}

var journalismExample = Example{
	Name:        "journalism",
	Description: "DaTA-standard record tracking sources and editorial transformations for published material.",
	Record: map[string]any{
		"provenance_standard": "DaTA v1.0.0",
		"content_hash":        "sha256:f6e5d4c3b2a1...",
		"timestamp":           "2024-11-04T14:00:00Z",
		"creator": map[string]any{
			"agent_type": "human",
			"agent_id":   "reporter-42",
			"name":       "Field Reporter",
		},
		"data": map[string]any{
			"headline": "City Council Approves Budget",
			"body":     "The council voted 7-2 to approve...",
			"sources":  []string{"council_minutes_2024_11_04", "interview_mayor"},
		},
		"lineage": []map[string]any{
			{
				"source_reference": "council_minutes_2024_11_04",
				"transformation":   "editorial_summary",
				"timestamp":        "2024-11-04T13:30:00Z",
			},
		},
		"metadata": map[string]any{
			"purpose":      "public_interest_reporting",
			"access_level": "public",
			"tags":         []string{"journalism", "local_government"},
		},
	},
}

// ExamplesFor returns the example records for a use case ("research",
// "journalism", "general", or "all"). Unknown use cases fall back to the
// full set.
func ExamplesFor(useCase string) []Example {
	switch useCase {
	case "research":
		return []Example{researchExample}
	case "journalism":
		return []Example{journalismExample}
	case "general":
		return []Example{simpleExample}
	default:
		return []Example{simpleExample, researchExample, journalismExample}
	}
}
