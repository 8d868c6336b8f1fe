// Package gatewaystub runs an in-memory Swarm gateway for tests: stamps
// live in a map, uploads are content-addressed by SHA-256, and propagation
// delay is simulated by poll counting.
package gatewaystub

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type stamp struct {
	batchID string
	amount  uint64
	depth   int
	label   string
	polls   int
}

// Stub is a fake gateway backed by httptest. Zero-value knobs mean stamps
// are found and usable immediately.
type Stub struct {
	// PollsUntilFound makes stamp detail requests 404 for the first n polls,
	// simulating a freshly purchased stamp that has not propagated yet.
	PollsUntilFound int
	// PollsUntilUsable makes stamp detail requests report usable=false until
	// n polls have happened (counted after the stamp is found).
	PollsUntilUsable int

	mu       sync.Mutex
	stamps   map[string]*stamp
	blobs    map[string][]byte
	counter  int
	requests int

	srv *httptest.Server
}

// New starts the stub and registers shutdown with the test.
func New(t *testing.T) *Stub {
	t.Helper()
	s := &Stub{
		stamps: make(map[string]*stamp),
		blobs:  make(map[string][]byte),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.route))
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the stub's base URL for client configuration.
func (s *Stub) URL() string {
	return s.srv.URL
}

// AddStamp seeds a stamp directly, bypassing purchase.
func (s *Stub) AddStamp(batchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stamps[batchID] = &stamp{batchID: batchID, amount: 2000000000, depth: 17}
}

// Blob returns stored upload content by reference.
func (s *Stub) Blob(reference string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[reference]
	return b, ok
}

// SetBlob seeds download content directly.
func (s *Stub) SetBlob(reference string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[reference] = content
}

// Requests reports how many requests reached the stub, letting tests prove
// a call was rejected before any network traffic.
func (s *Stub) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

func (s *Stub) route(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()

	switch {
	case r.URL.Path == "/":
		fmt.Fprint(w, "swarm gateway stub")
	case r.URL.Path == "/api/v1/stamps" && r.Method == http.MethodPost:
		s.purchase(w, r)
	case r.URL.Path == "/api/v1/stamps" && r.Method == http.MethodGet:
		s.list(w)
	case strings.HasPrefix(r.URL.Path, "/api/v1/stamps/") && strings.HasSuffix(r.URL.Path, "/extend"):
		s.extend(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/stamps/"):
		s.details(w, r)
	case r.URL.Path == "/api/v1/data/" && r.Method == http.MethodPost:
		s.upload(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/v1/data/"):
		s.download(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Stub) purchase(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount uint64 `json:"amount"`
		Depth  int    `json:"depth"`
		Label  string `json:"label"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.counter++
	sum := sha256.Sum256([]byte(fmt.Sprintf("stamp-%d", s.counter)))
	batchID := hex.EncodeToString(sum[:])
	s.stamps[batchID] = &stamp{
		batchID: batchID,
		amount:  body.Amount,
		depth:   body.Depth,
		label:   body.Label,
	}
	s.mu.Unlock()

	json.NewEncoder(w).Encode(map[string]any{
		"batchID": batchID,
		"message": "stamp created",
	})
}

func (s *Stub) details(w http.ResponseWriter, r *http.Request) {
	batchID := strings.TrimPrefix(r.URL.Path, "/api/v1/stamps/")

	s.mu.Lock()
	st, ok := s.stamps[batchID]
	if ok {
		st.polls++
	}
	var payload map[string]any
	if ok {
		found := st.polls > s.PollsUntilFound
		if !found {
			ok = false
		} else {
			payload = s.stampJSON(st)
		}
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "stamp not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(payload)
}

func (s *Stub) stampJSON(st *stamp) map[string]any {
	usable := st.polls > s.PollsUntilFound+s.PollsUntilUsable
	return map[string]any{
		"batchID":            st.batchID,
		"amount":             fmt.Sprintf("%d", st.amount),
		"depth":              st.depth,
		"bucketDepth":        16,
		"batchTTL":           172800,
		"expectedExpiration": "2026-09-01T00:00:00Z",
		"usable":             usable,
		"utilization":        0.0,
		"immutableFlag":      false,
		"label":              st.label,
	}
}

func (s *Stub) list(w http.ResponseWriter) {
	s.mu.Lock()
	stamps := make([]map[string]any, 0, len(s.stamps))
	for _, st := range s.stamps {
		stamps = append(stamps, s.stampJSON(st))
	}
	s.mu.Unlock()

	json.NewEncoder(w).Encode(map[string]any{
		"stamps":      stamps,
		"total_count": len(stamps),
	})
}

func (s *Stub) extend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	batchID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/v1/stamps/"), "/extend")

	var body struct {
		Amount uint64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	st, ok := s.stamps[batchID]
	if ok {
		st.amount += body.Amount
	}
	s.mu.Unlock()

	if !ok {
		http.Error(w, "stamp not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"batchID": batchID,
		"message": "stamp extended",
	})
}

func (s *Stub) upload(w http.ResponseWriter, r *http.Request) {
	stampID := r.URL.Query().Get("stamp_id")
	if stampID == "" {
		http.Error(w, "stamp_id required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, known := s.stamps[stampID]
	s.mu.Unlock()
	if !known {
		http.Error(w, "stamp not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		http.Error(w, "bad multipart body", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file part required", http.StatusBadRequest)
		return
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "read failed", http.StatusInternalServerError)
		return
	}

	sum := sha256.Sum256(content)
	reference := hex.EncodeToString(sum[:])

	s.mu.Lock()
	s.blobs[reference] = content
	s.mu.Unlock()

	json.NewEncoder(w).Encode(map[string]any{"reference": reference})
}

func (s *Stub) download(w http.ResponseWriter, r *http.Request) {
	reference := strings.TrimPrefix(r.URL.Path, "/api/v1/data/")

	s.mu.Lock()
	content, ok := s.blobs[reference]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Write(content)
}
