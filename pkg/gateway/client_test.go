package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/datafund/swarm-provenance-mcp/pkg/config"
)

const testBatchID = "f1e2d3c4b5a6f1e2d3c4b5a6f1e2d3c4b5a6f1e2d3c4b5a6f1e2d3c4b5a6f1e2"

// newTestClient spins up a stub gateway and a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{GatewayURL: srv.URL}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config invalid: %v", err)
	}
	return New(cfg)
}

// TestPurchaseStamp verifies the request shape and response decoding of a
// stamp purchase.
func TestPurchaseStamp(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/stamps" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "/") {
			t.Errorf("User-Agent = %q, want name/version", ua)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["amount"] != float64(2000000000) || body["depth"] != float64(17) {
			t.Errorf("request body = %v", body)
		}
		if body["label"] != "experiment" {
			t.Errorf("label = %v", body["label"])
		}

		json.NewEncoder(w).Encode(BatchResponse{BatchID: testBatchID, Message: "created"})
	}))

	resp, err := client.PurchaseStamp(context.Background(), 2000000000, 17, "experiment")
	if err != nil {
		t.Fatalf("PurchaseStamp failed: %v", err)
	}
	if resp.BatchID != testBatchID {
		t.Errorf("batchID = %q", resp.BatchID)
	}
}

// TestPurchaseStamp_OmitsEmptyLabel verifies no label key is sent when the
// label is empty.
func TestPurchaseStamp_OmitsEmptyLabel(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if _, ok := body["label"]; ok {
			t.Error("empty label should be omitted")
		}
		json.NewEncoder(w).Encode(BatchResponse{BatchID: testBatchID})
	}))

	if _, err := client.PurchaseStamp(context.Background(), 2000000000, 17, ""); err != nil {
		t.Fatalf("PurchaseStamp failed: %v", err)
	}
}

// TestGetStampDetails verifies path construction and field decoding.
func TestGetStampDetails(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/stamps/"+testBatchID {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(StampInfo{
			BatchID:  testBatchID,
			Depth:    17,
			BatchTTL: 172800,
			Usable:   true,
		})
	}))

	info, err := client.GetStampDetails(context.Background(), testBatchID)
	if err != nil {
		t.Fatalf("GetStampDetails failed: %v", err)
	}
	if !info.Usable || info.BatchTTL != 172800 {
		t.Errorf("info = %+v", info)
	}
}

// TestGetStampDetails_NotFound verifies 404 classification.
func TestGetStampDetails_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "stamp not found", http.StatusNotFound)
	}))

	_, err := client.GetStampDetails(context.Background(), testBatchID)
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("IsNotFound = false for %v", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusNotFound {
		t.Errorf("error = %v", err)
	}
}

// TestListStamps verifies inventory decoding.
func TestListStamps(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v1/stamps" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(StampList{
			Stamps:     []StampInfo{{BatchID: testBatchID}},
			TotalCount: 1,
		})
	}))

	list, err := client.ListStamps(context.Background())
	if err != nil {
		t.Fatalf("ListStamps failed: %v", err)
	}
	if list.TotalCount != 1 || len(list.Stamps) != 1 {
		t.Errorf("list = %+v", list)
	}
}

// TestExtendStamp verifies the PATCH shape of a stamp extension.
func TestExtendStamp(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		if r.URL.Path != "/api/v1/stamps/"+testBatchID+"/extend" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["amount"] != float64(1000000) {
			t.Errorf("amount = %v", body["amount"])
		}
		json.NewEncoder(w).Encode(BatchResponse{BatchID: testBatchID, Message: "extended"})
	}))

	resp, err := client.ExtendStamp(context.Background(), testBatchID, 1000000)
	if err != nil {
		t.Fatalf("ExtendStamp failed: %v", err)
	}
	if resp.Message != "extended" {
		t.Errorf("message = %q", resp.Message)
	}
}

// TestUploadData verifies the multipart body, query parameters, and
// response decoding.
func TestUploadData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/data/" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("stamp_id"); got != testBatchID {
			t.Errorf("stamp_id = %q", got)
		}
		if got := r.URL.Query().Get("content_type"); got != "application/json" {
			t.Errorf("content_type = %q", got)
		}

		if err := r.ParseMultipartForm(MaxUploadSize * 2); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("file part missing: %v", err)
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		if string(content) != `{"k":"v"}` {
			t.Errorf("file content = %s", content)
		}

		json.NewEncoder(w).Encode(UploadResponse{Reference: strings.Repeat("cd", 32)})
	}))

	resp, err := client.UploadData(context.Background(), []byte(`{"k":"v"}`), testBatchID, "application/json")
	if err != nil {
		t.Fatalf("UploadData failed: %v", err)
	}
	if len(resp.Reference) != 64 {
		t.Errorf("reference = %q", resp.Reference)
	}
}

// TestUploadData_SizeLimits verifies local size enforcement happens before
// any network traffic.
func TestUploadData_SizeLimits(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the gateway")
	}))

	if _, err := client.UploadData(context.Background(), nil, testBatchID, "text/plain"); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("empty payload: err = %v", err)
	}

	big := strings.Repeat("x", MaxUploadSize+1)
	if _, err := client.UploadData(context.Background(), []byte(big), testBatchID, "text/plain"); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("oversized payload: err = %v", err)
	}

	// Exactly at the limit should pass local validation; the stub fails the
	// request, which proves it went out.
	atLimit := strings.Repeat("x", MaxUploadSize)
	_, err := client.UploadData(context.Background(), []byte(atLimit), testBatchID, "text/plain")
	if errors.Is(err, ErrPayloadTooLarge) {
		t.Error("payload at the limit rejected locally")
	}
}

// TestDownloadData verifies raw byte passthrough.
func TestDownloadData(t *testing.T) {
	ref := strings.Repeat("cd", 32)
	payload := []byte{0x00, 0x01, 0xff, 0xfe}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/data/"+ref {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write(payload)
	}))

	got, err := client.DownloadData(context.Background(), ref)
	if err != nil {
		t.Fatalf("DownloadData failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %v", got)
	}
}

// TestHealthCheck verifies the liveness probe result.
func TestHealthCheck(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte("ok"))
	}))

	status, err := client.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}
	if status.Status != "healthy" {
		t.Errorf("status = %q", status.Status)
	}
	if status.ResponseTimeMS < 0 {
		t.Errorf("response_time_ms = %d", status.ResponseTimeMS)
	}
	if status.GatewayResponse != "ok" {
		t.Errorf("gateway_response = %q, want body passthrough", status.GatewayResponse)
	}
}

// TestHealthCheck_ResponseInResult verifies the probe body survives into
// the serialized result.
func TestHealthCheck_ResponseInResult(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"service":"swarm-gateway","version":"1.2.0"}`))
	}))

	status, err := client.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("HealthCheck failed: %v", err)
	}

	raw, err := json.Marshal(status)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	body, _ := m["gateway_response"].(string)
	if !strings.Contains(body, "swarm-gateway") {
		t.Errorf("gateway_response = %q", body)
	}
}

// TestHealthCheck_GatewayDown verifies probe failure surfaces as an error.
func TestHealthCheck_GatewayDown(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))

	if _, err := client.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
