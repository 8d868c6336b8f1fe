// Package mcp exposes Swarm postage stamp management, data transfer, and
// provenance record tooling as MCP tools.
//
// The server registers ten tools on top of the mark3labs/mcp-go server:
// stamp lifecycle (purchase_stamp, get_stamp_status, list_stamps,
// extend_stamp), data transfer (upload_data, download_data), record
// construction (create_provenance_record, create_swip_record), plus static
// guidance (show_provenance_examples) and a gateway probe (health_check).
//
// # Error Model
//
// Handlers never return a Go error for a failed call. Every failure comes
// back as an error-flagged tool result so the dispatcher loop survives bad
// input and gateway outages alike. Three classes apply:
//
//   - input validation failures fail before any network call, with the
//     specific reason in the result text
//   - gateway failures carry the underlying HTTP error message
//   - anything unclassified is logged in full server-side and surfaced as
//     a short generic message
//
// # Transports
//
// ServeStdio speaks MCP over stdin/stdout for subprocess embedding;
// ServeHTTP serves the streamable HTTP transport for networked clients.
package mcp
