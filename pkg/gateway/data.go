package gateway

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// MaxUploadSize is the gateway's per-upload payload limit in bytes.
const MaxUploadSize = 4096

// UploadResponse carries the Swarm reference of freshly uploaded data.
type UploadResponse struct {
	Reference string `json:"reference"`
}

// UploadData uploads data to Swarm under the given stamp. Size limits are
// enforced locally so oversized payloads never reach the network: empty
// payloads return ErrEmptyPayload and payloads beyond MaxUploadSize return
// ErrPayloadTooLarge. The payload travels as a multipart "file" part with
// the stamp id and content type as query parameters.
func (c *Client) UploadData(ctx context.Context, data []byte, stampID, contentType string) (*UploadResponse, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPayload
	}
	if len(data) > MaxUploadSize {
		return nil, ErrPayloadTooLarge
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "data")
	if err != nil {
		return nil, fmt.Errorf("gateway: build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("gateway: build multipart body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("gateway: build multipart body: %w", err)
	}

	q := url.Values{}
	q.Set("stamp_id", stampID)
	q.Set("content_type", contentType)
	uploadURL := c.baseURL + "/api/v1/data/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	zap.L().Debug("uploading data",
		zap.Int("size", len(data)),
		zap.String("stamp_id", stampID))

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp UploadResponse
	if err := unmarshalJSON(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadData fetches raw bytes by Swarm reference. No decoding happens
// here; callers decide how to interpret the content.
func (c *Client) DownloadData(ctx context.Context, reference string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/data/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	return c.do(req)
}
