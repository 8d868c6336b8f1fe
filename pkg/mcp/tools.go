package mcp

import (
	mcplib "github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	// purchase_stamp — buy a new postage stamp.
	s.mcpServer.AddTool(
		mcplib.NewTool("purchase_stamp",
			mcplib.WithDescription(`Purchase a new postage stamp for uploading data to the Swarm network.

Stamps pay for storage. Higher amounts buy longer storage time; higher depth
buys more capacity. A freshly purchased stamp can take a few minutes to
propagate before it becomes usable for uploads.`),
			mcplib.WithDestructiveHintAnnotation(false),
			mcplib.WithIdempotentHintAnnotation(false),
			mcplib.WithOpenWorldHintAnnotation(true),
			mcplib.WithNumber("amount",
				mcplib.Description("Amount in PLUR to fund the stamp with. Minimum 1,000,000."),
				mcplib.Min(minStampAmount),
			),
			mcplib.WithNumber("depth",
				mcplib.Description("Batch depth controlling stamp capacity (16-24)."),
				mcplib.Min(minStampDepth),
				mcplib.Max(maxStampDepth),
			),
			mcplib.WithString("label",
				mcplib.Description("Optional human-readable label for the stamp (max 100 characters)."),
			),
		),
		s.handlePurchaseStamp,
	)

	// get_stamp_status — inspect one stamp.
	s.mcpServer.AddTool(
		mcplib.NewTool("get_stamp_status",
			mcplib.WithDescription(`Get the current status of a postage stamp: TTL, capacity utilization, and
whether it is usable for uploads right now.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(true),
			mcplib.WithString("stamp_id",
				mcplib.Description("64-character hex batch ID of the stamp, with or without 0x prefix."),
				mcplib.Required(),
			),
		),
		s.handleGetStampStatus,
	)

	// list_stamps — full stamp inventory.
	s.mcpServer.AddTool(
		mcplib.NewTool("list_stamps",
			mcplib.WithDescription(`List all postage stamps known to the gateway, with their usability and
expiration info.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(true),
		),
		s.handleListStamps,
	)

	// extend_stamp — top up an existing stamp.
	s.mcpServer.AddTool(
		mcplib.NewTool("extend_stamp",
			mcplib.WithDescription(`Extend an existing postage stamp with additional funds to prolong its
storage time.`),
			mcplib.WithDestructiveHintAnnotation(false),
			mcplib.WithIdempotentHintAnnotation(false),
			mcplib.WithOpenWorldHintAnnotation(true),
			mcplib.WithString("stamp_id",
				mcplib.Description("64-character hex batch ID of the stamp to extend, with or without 0x prefix."),
				mcplib.Required(),
			),
			mcplib.WithNumber("amount",
				mcplib.Description("Additional amount in PLUR. Minimum 1,000,000."),
				mcplib.Min(minStampAmount),
				mcplib.Required(),
			),
		),
		s.handleExtendStamp,
	)

	// upload_data — push data to Swarm under a stamp.
	s.mcpServer.AddTool(
		mcplib.NewTool("upload_data",
			mcplib.WithDescription(`Upload data to the Swarm network. Supports payloads up to 4096 bytes.

For verifiable data, wrap it in a SWIP envelope first (see
create_swip_record). Example SWIP-compliant JSON:
{"content_hash": "sha256:abc123...", "provenance_standard": "DaTA v1.0.0",
 "encryption": "none", "data": "<base64>", "stamp_id": "fe2f..."}`),
			mcplib.WithDestructiveHintAnnotation(false),
			mcplib.WithIdempotentHintAnnotation(false),
			mcplib.WithOpenWorldHintAnnotation(true),
			mcplib.WithString("data",
				mcplib.Description("Data content to upload (max 4096 bytes UTF-8)."),
				mcplib.Required(),
			),
			mcplib.WithString("stamp_id",
				mcplib.Description("Postage stamp ID to pay for the upload, with or without 0x prefix."),
				mcplib.Required(),
			),
			mcplib.WithString("content_type",
				mcplib.Description("MIME type of the data."),
				mcplib.DefaultString("application/json"),
			),
		),
		s.handleUploadData,
	)

	// download_data — fetch data by Swarm reference.
	s.mcpServer.AddTool(
		mcplib.NewTool("download_data",
			mcplib.WithDescription(`Download data from the Swarm network by reference hash. Text and JSON
content is rendered inline; binary content is summarized by size.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(true),
			mcplib.WithString("reference",
				mcplib.Description("64-character hex Swarm reference of the data, with or without 0x prefix."),
				mcplib.Required(),
			),
		),
		s.handleDownloadData,
	)

	// create_provenance_record — build a record without uploading it.
	s.mcpServer.AddTool(
		mcplib.NewTool("create_provenance_record",
			mcplib.WithDescription(`Create a provenance record describing who produced a piece of data and why.

Two formats: "simple" (title + creator + data, good default) and
"data_standard" (DaTA v1.0.0 with content hash and structured creator,
for research or compliance use). The record is returned, not uploaded;
pass it to upload_data or create_swip_record next.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(false),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithString("title",
				mcplib.Description("Short description of what the data is."),
				mcplib.Required(),
			),
			mcplib.WithObject("data",
				mcplib.Description("The data being described. An object or a plain string."),
				mcplib.Required(),
			),
			mcplib.WithString("creator",
				mcplib.Description("Who produced the data: a name or an AI agent ID."),
				mcplib.Required(),
			),
			mcplib.WithString("purpose",
				mcplib.Description("Why this data was created."),
			),
			mcplib.WithArray("tags",
				mcplib.Description("Free-form tags for categorization."),
			),
			mcplib.WithString("format",
				mcplib.Description(`Record format: "simple" or "data_standard".`),
				mcplib.DefaultString("simple"),
			),
			mcplib.WithString("source",
				mcplib.Description("Where the data came from (simple format only)."),
			),
		),
		s.handleCreateProvenanceRecord,
	)

	// create_swip_record — wrap a record into a storage envelope.
	s.mcpServer.AddTool(
		mcplib.NewTool("create_swip_record",
			mcplib.WithDescription(`Wrap a provenance record into a SWIP envelope bound to a postage stamp.

The envelope carries the record as base64 plus a SHA-256 content hash, so
anyone downloading it later can verify integrity. The result is ready to
pass to upload_data.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithObject("provenance_data",
				mcplib.Description("The provenance record to wrap. Must be a non-empty object."),
				mcplib.Required(),
			),
			mcplib.WithString("stamp_id",
				mcplib.Description("Postage stamp ID to bind the envelope to."),
				mcplib.Required(),
			),
			mcplib.WithString("provenance_standard",
				mcplib.Description("Provenance standard identifier."),
				mcplib.DefaultString("DaTA v1.0.0"),
			),
			mcplib.WithString("encryption",
				mcplib.Description(`Payload encryption. Only "none" is currently supported.`),
				mcplib.DefaultString("none"),
			),
		),
		s.handleCreateSwipRecord,
	)

	// show_provenance_examples — static guidance, no gateway interaction.
	s.mcpServer.AddTool(
		mcplib.NewTool("show_provenance_examples",
			mcplib.WithDescription(`Show example provenance records and best-practices guidance for a given
use case. Purely informational; makes no network calls.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(false),
			mcplib.WithString("use_case",
				mcplib.Description(`Which examples to show: "research", "journalism", "general", or "all".`),
				mcplib.DefaultString("all"),
			),
		),
		s.handleShowProvenanceExamples,
	)

	// health_check — gateway liveness probe.
	s.mcpServer.AddTool(
		mcplib.NewTool("health_check",
			mcplib.WithDescription(`Check connectivity to the Swarm gateway and report its response time.`),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
			mcplib.WithOpenWorldHintAnnotation(true),
		),
		s.handleHealthCheck,
	)
}
