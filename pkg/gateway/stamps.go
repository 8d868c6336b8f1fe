package gateway

import (
	"context"
	"net/http"
)

// StampInfo is one postage stamp as the gateway reports it.
type StampInfo struct {
	BatchID            string  `json:"batchID"`
	Amount             string  `json:"amount"`
	Depth              int     `json:"depth"`
	BucketDepth        int     `json:"bucketDepth"`
	BlockNumber        int64   `json:"blockNumber"`
	BatchTTL           int64   `json:"batchTTL"`
	ExpectedExpiration string  `json:"expectedExpiration"`
	Usable             bool    `json:"usable"`
	Utilization        float64 `json:"utilization"`
	ImmutableFlag      bool    `json:"immutableFlag"`
	Label              string  `json:"label,omitempty"`
}

// BatchResponse is the gateway's answer to stamp purchase and extension.
type BatchResponse struct {
	BatchID string `json:"batchID"`
	Message string `json:"message"`
}

// StampList is the gateway's stamp inventory.
type StampList struct {
	Stamps     []StampInfo `json:"stamps"`
	TotalCount int         `json:"total_count"`
}

type purchaseRequest struct {
	Amount uint64 `json:"amount"`
	Depth  int    `json:"depth"`
	Label  string `json:"label,omitempty"`
}

type extendRequest struct {
	Amount uint64 `json:"amount"`
}

// PurchaseStamp buys a new postage stamp with the given amount and depth.
// Label is optional and omitted when empty.
func (c *Client) PurchaseStamp(ctx context.Context, amount uint64, depth int, label string) (*BatchResponse, error) {
	var resp BatchResponse
	err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/v1/stamps",
		purchaseRequest{Amount: amount, Depth: depth, Label: label}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStampDetails fetches the current state of one stamp by batch id.
func (c *Client) GetStampDetails(ctx context.Context, stampID string) (*StampInfo, error) {
	var resp StampInfo
	err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/api/v1/stamps/"+stampID, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListStamps fetches the full stamp inventory.
func (c *Client) ListStamps(ctx context.Context) (*StampList, error) {
	var resp StampList
	err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/api/v1/stamps", nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExtendStamp tops up an existing stamp with additional funds.
func (c *Client) ExtendStamp(ctx context.Context, stampID string, amount uint64) (*BatchResponse, error) {
	var resp BatchResponse
	err := c.doJSON(ctx, http.MethodPatch, c.baseURL+"/api/v1/stamps/"+stampID+"/extend",
		extendRequest{Amount: amount}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
