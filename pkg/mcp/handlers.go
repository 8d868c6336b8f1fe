package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/datafund/swarm-provenance-mcp/pkg/gateway"
	"github.com/datafund/swarm-provenance-mcp/pkg/hexid"
	"github.com/datafund/swarm-provenance-mcp/pkg/provenance"
	"github.com/datafund/swarm-provenance-mcp/pkg/swip"
)

// Stamp parameter bounds, checked before any gateway call.
const (
	minStampAmount = 1_000_000
	minStampDepth  = 16
	maxStampDepth  = 24
	maxLabelLen    = 100
)

// maxDisplayStringLen bounds string values rendered from downloaded JSON.
const maxDisplayStringLen = 50

// toolLogger returns a request-scoped logger carrying the tool name and a
// correlation id, so concurrent calls stay distinguishable in the log.
func toolLogger(tool string) *zap.Logger {
	return zap.L().With(
		zap.String("tool", tool),
		zap.String("request_id", uuid.NewString()),
	)
}

// errorResult builds an error-flagged tool result. Tool failures travel in
// the result, never as a Go error, so one bad call cannot tear down the
// session.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		IsError: true,
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: msg},
		},
	}
}

// inputError reports a validation failure: logged as a warning, surfaced
// with the specific reason.
func inputError(log *zap.Logger, msg string) *mcplib.CallToolResult {
	log.Warn("input validation failed", zap.String("reason", msg))
	return errorResult(msg)
}

// gatewayError reports a failed gateway call with the underlying message.
func gatewayError(log *zap.Logger, op string, err error) *mcplib.CallToolResult {
	log.Error("gateway call failed", zap.String("op", op), zap.Error(err))
	return errorResult(fmt.Sprintf("gateway error: %v", err))
}

// internalError logs full diagnostic detail server-side and surfaces only a
// short generic message.
func internalError(log *zap.Logger, err error) *mcplib.CallToolResult {
	log.Error("internal error", zap.Error(err))
	return errorResult("internal error, see server logs")
}

// jsonResult renders payload as an indented JSON text block.
func jsonResult(payload any) *mcplib.CallToolResult {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errorResult("internal error, see server logs")
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			mcplib.TextContent{Type: "text", Text: string(raw)},
		},
	}
}

func (s *Server) handlePurchaseStamp(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("purchase_stamp")

	amount := request.GetFloat("amount", float64(s.cfg.DefaultStampAmount))
	depth := request.GetInt("depth", s.cfg.DefaultStampDepth)
	label := request.GetString("label", "")

	if amount < minStampAmount {
		return inputError(log, fmt.Sprintf("amount must be at least %d, got %.0f", minStampAmount, amount)), nil
	}
	if depth < minStampDepth || depth > maxStampDepth {
		return inputError(log, fmt.Sprintf("depth must be between %d and %d, got %d", minStampDepth, maxStampDepth, depth)), nil
	}
	if len(label) > maxLabelLen {
		return inputError(log, fmt.Sprintf("label must be at most %d characters, got %d", maxLabelLen, len(label))), nil
	}

	resp, err := s.gw.PurchaseStamp(ctx, uint64(amount), depth, label)
	if err != nil {
		return gatewayError(log, "purchase_stamp", err), nil
	}
	if resp.BatchID == "" {
		log.Error("gateway returned empty batch id")
		return errorResult("gateway error: purchase succeeded but no batch id was returned"), nil
	}

	log.Info("stamp purchased", zap.String("batch_id", resp.BatchID))
	result := map[string]any{
		"batch_id": resp.BatchID,
		"message":  resp.Message,
		"amount":   uint64(amount),
		"depth":    depth,
	}
	if label != "" {
		result["label"] = label
	}
	return jsonResult(result), nil
}

func (s *Server) handleGetStampStatus(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("get_stamp_status")

	stampID, err := hexid.Normalize(request.GetString("stamp_id", ""))
	if err != nil {
		return inputError(log, fmt.Sprintf("invalid stamp_id: %v", err)), nil
	}

	info, err := s.gw.GetStampDetails(ctx, stampID)
	if err != nil {
		return gatewayError(log, "get_stamp_details", err), nil
	}

	return jsonResult(map[string]any{
		"batch_id":            info.BatchID,
		"usable":              info.Usable,
		"depth":               info.Depth,
		"amount":              info.Amount,
		"batch_ttl_seconds":   info.BatchTTL,
		"ttl_days":            float64(info.BatchTTL) / 86400,
		"expected_expiration": info.ExpectedExpiration,
		"utilization":         info.Utilization,
		"immutable":           info.ImmutableFlag,
		"label":               info.Label,
	}), nil
}

func (s *Server) handleListStamps(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("list_stamps")

	list, err := s.gw.ListStamps(ctx)
	if err != nil {
		return gatewayError(log, "list_stamps", err), nil
	}
	return jsonResult(map[string]any{
		"stamps":      list.Stamps,
		"total_count": list.TotalCount,
	}), nil
}

func (s *Server) handleExtendStamp(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("extend_stamp")

	stampID, err := hexid.Normalize(request.GetString("stamp_id", ""))
	if err != nil {
		return inputError(log, fmt.Sprintf("invalid stamp_id: %v", err)), nil
	}
	amount := request.GetFloat("amount", 0)
	if amount < minStampAmount {
		return inputError(log, fmt.Sprintf("amount must be at least %d, got %.0f", minStampAmount, amount)), nil
	}

	resp, err := s.gw.ExtendStamp(ctx, stampID, uint64(amount))
	if err != nil {
		return gatewayError(log, "extend_stamp", err), nil
	}

	log.Info("stamp extended", zap.String("batch_id", resp.BatchID))
	return jsonResult(map[string]any{
		"batch_id": resp.BatchID,
		"message":  resp.Message,
		"amount":   uint64(amount),
	}), nil
}

func (s *Server) handleUploadData(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("upload_data")

	data := request.GetString("data", "")
	contentType := request.GetString("content_type", "application/json")

	stampID, err := hexid.Normalize(request.GetString("stamp_id", ""))
	if err != nil {
		return inputError(log, fmt.Sprintf("invalid stamp_id: %v", err)), nil
	}
	payload := []byte(data)
	if len(payload) == 0 {
		return inputError(log, "data must not be empty"), nil
	}
	if len(payload) > gateway.MaxUploadSize {
		return inputError(log, fmt.Sprintf("data exceeds %d bytes (got %d)", gateway.MaxUploadSize, len(payload))), nil
	}

	// Pre-flight stamp probe. A usable stamp proceeds, an unusable one fails
	// fast, and an unknown state (404 or probe failure) proceeds optimistically
	// since freshly purchased stamps take a while to propagate.
	var note string
	info, probeErr := s.gw.GetStampDetails(ctx, stampID)
	switch {
	case probeErr == nil && !info.Usable:
		log.Warn("stamp reported unusable", zap.String("stamp_id", stampID))
		return errorResult("stamp is not usable yet; it may still be propagating or may be expired"), nil
	case probeErr != nil && gateway.IsNotFound(probeErr):
		note = "stamp not found by the gateway; it may be newly purchased and not yet propagated, upload attempted anyway"
		log.Info("stamp probe returned 404, proceeding", zap.String("stamp_id", stampID))
	case probeErr != nil:
		note = "stamp status could not be verified, upload attempted anyway"
		log.Warn("stamp probe failed, proceeding", zap.Error(probeErr))
	}

	resp, err := s.gw.UploadData(ctx, payload, stampID, contentType)
	if err != nil {
		return gatewayError(log, "upload_data", err), nil
	}

	log.Info("data uploaded",
		zap.String("reference", resp.Reference),
		zap.Int("size", len(payload)))

	result := map[string]any{
		"reference":    resp.Reference,
		"size_bytes":   len(payload),
		"stamp_id":     stampID,
		"content_type": contentType,
	}
	if note != "" {
		result["note"] = note
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{
			jsonResult(result).Content[0],
			mcplib.TextContent{Type: "text", Text: provenance.UploadGuidance},
		},
	}, nil
}

func (s *Server) handleDownloadData(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("download_data")

	reference, err := hexid.Normalize(request.GetString("reference", ""))
	if err != nil {
		return inputError(log, fmt.Sprintf("invalid reference: %v", err)), nil
	}

	payload, err := s.gw.DownloadData(ctx, reference)
	if err != nil {
		return gatewayError(log, "download_data", err), nil
	}

	log.Info("data downloaded",
		zap.String("reference", reference),
		zap.Int("size", len(payload)))

	result := map[string]any{
		"reference":  reference,
		"size_bytes": len(payload),
	}
	for k, v := range renderDownload(payload) {
		result[k] = v
	}
	return jsonResult(result), nil
}

// renderDownload classifies downloaded bytes for display: binary content is
// summarized by size only, text is passed through, and JSON is shown
// structurally with long string values truncated.
func renderDownload(payload []byte) map[string]any {
	if !utf8.Valid(payload) {
		return map[string]any{"classification": "binary"}
	}

	var parsed any
	if err := json.Unmarshal(payload, &parsed); err == nil {
		switch parsed.(type) {
		case map[string]any, []any:
			return map[string]any{
				"classification": "json",
				"content":        truncateStrings(parsed),
			}
		}
	}
	return map[string]any{
		"classification": "text",
		"content":        string(payload),
	}
}

// truncateStrings walks a decoded JSON value and shortens string values
// beyond maxDisplayStringLen characters, marking the cut with an ellipsis.
// The cut lands on a rune boundary so multibyte text never renders as
// replacement characters.
func truncateStrings(v any) any {
	switch t := v.(type) {
	case string:
		if utf8.RuneCountInString(t) > maxDisplayStringLen {
			runes := []rune(t)
			return string(runes[:maxDisplayStringLen]) + "..."
		}
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = truncateStrings(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = truncateStrings(val)
		}
		return out
	default:
		return v
	}
}

func (s *Server) handleCreateProvenanceRecord(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("create_provenance_record")

	title := request.GetString("title", "")
	creator := request.GetString("creator", "")
	if title == "" {
		return inputError(log, "title is required"), nil
	}
	if creator == "" {
		return inputError(log, "creator is required"), nil
	}

	args := request.GetArguments()
	data, ok := args["data"]
	if !ok || data == nil {
		return inputError(log, "data is required"), nil
	}

	purpose := request.GetString("purpose", "")
	format := request.GetString("format", "simple")
	tags := stringSlice(args["tags"])

	switch format {
	case "simple":
		rec := provenance.NewSimpleRecord(title, data, creator, provenance.SimpleOptions{
			Purpose: purpose,
			Tags:    tags,
			Source:  request.GetString("source", ""),
		})
		return jsonResult(map[string]any{
			"format": "simple",
			"record": rec,
		}), nil

	case "data_standard":
		rec, err := provenance.NewStandardRecord(data, creator, provenance.StandardOptions{
			CreatorType: inferCreatorType(creator),
			Purpose:     purpose,
			Tags:        tags,
		})
		if err != nil {
			return internalError(log, err), nil
		}
		return jsonResult(map[string]any{
			"format": "data_standard",
			"record": rec,
		}), nil

	default:
		return inputError(log, fmt.Sprintf(`format must be "simple" or "data_standard", got %q`, format)), nil
	}
}

// inferCreatorType guesses whether a creator string names an AI agent. A
// coarse heuristic, kept on purpose: callers who care pass data through the
// standard record path with an explicit creator structure.
func inferCreatorType(creator string) string {
	lower := strings.ToLower(creator)
	if strings.Contains(lower, "ai") || strings.Contains(lower, "claude") {
		return "ai_agent"
	}
	return "human"
}

// stringSlice coerces a decoded JSON array into []string, skipping
// non-string elements.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s *Server) handleCreateSwipRecord(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("create_swip_record")

	args := request.GetArguments()
	inner, ok := args["provenance_data"].(map[string]any)
	if !ok || len(inner) == 0 {
		return inputError(log, "provenance_data must be a non-empty object"), nil
	}
	stampID := request.GetString("stamp_id", "")
	if stampID == "" {
		return inputError(log, "stamp_id is required"), nil
	}

	// An envelope must never claim an encryption that was not applied.
	encryption := request.GetString("encryption", swip.DefaultEncryption)
	if encryption != swip.DefaultEncryption {
		return inputError(log, fmt.Sprintf(`encryption %q is not supported, only "none" is implemented`, encryption)), nil
	}

	env, err := swip.Wrap(inner, stampID, swip.Options{
		Standard:   request.GetString("provenance_standard", ""),
		Encryption: encryption,
	})
	if err != nil {
		return internalError(log, err), nil
	}

	// Informational only: an invalid verdict is reported, not a failure.
	valid, validationErrs := provenance.ValidateRecord(env.AsMap(), provenance.SchemaSwip)

	result := map[string]any{
		"envelope": env,
		"valid":    valid,
	}
	if len(validationErrs) > 0 {
		result["validation_errors"] = validationErrs
	}
	return jsonResult(result), nil
}

func (s *Server) handleShowProvenanceExamples(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	useCase := request.GetString("use_case", "all")
	return jsonResult(map[string]any{
		"use_case": useCase,
		"guidance": provenance.UploadGuidance,
		"examples": provenance.ExamplesFor(useCase),
	}), nil
}

func (s *Server) handleHealthCheck(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	log := toolLogger("health_check")

	status, err := s.gw.HealthCheck(ctx)
	if err != nil {
		return gatewayError(log, "health_check", err), nil
	}
	return jsonResult(status), nil
}
