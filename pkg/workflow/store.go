// Package workflow composes the gateway and envelope primitives into
// higher-level flows. Store covers the common "publish a record" sequence:
// purchase a stamp, wait for it to become usable, wrap the record into a
// SWIP envelope, and upload it.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/datafund/swarm-provenance-mcp/pkg/config"
	"github.com/datafund/swarm-provenance-mcp/pkg/gateway"
	"github.com/datafund/swarm-provenance-mcp/pkg/swip"
)

// DefaultPollInterval spaces the stamp readiness polls.
const DefaultPollInterval = 3 * time.Second

// Gateway is the subset of gateway operations the store flow needs.
type Gateway interface {
	PurchaseStamp(ctx context.Context, amount uint64, depth int, label string) (*gateway.BatchResponse, error)
	GetStampDetails(ctx context.Context, stampID string) (*gateway.StampInfo, error)
	UploadData(ctx context.Context, data []byte, stampID, contentType string) (*gateway.UploadResponse, error)
}

// Store runs the publish flow. The zero PollInterval means
// DefaultPollInterval.
type Store struct {
	gw           Gateway
	cfg          *config.Config
	PollInterval time.Duration
}

// NewStore builds a store flow on top of gw with cfg's default stamp
// parameters.
func NewStore(cfg *config.Config, gw Gateway) *Store {
	return &Store{gw: gw, cfg: cfg}
}

// Result reports what a completed store flow produced.
type Result struct {
	BatchID   string
	Reference string
	Envelope  swip.Envelope
}

// Options overrides the stamp parameters of a single Run. Zero values fall
// back to the configured defaults.
type Options struct {
	Amount uint64
	Depth  int
	Label  string
}

// Run purchases a stamp, waits for it to become usable, wraps record into a
// SWIP envelope bound to the new stamp, and uploads the envelope. The
// context bounds the whole flow including the readiness wait; a stamp that
// never becomes usable surfaces as ctx.Err().
func (s *Store) Run(ctx context.Context, record map[string]any, opts Options) (*Result, error) {
	amount := opts.Amount
	if amount == 0 {
		amount = s.cfg.DefaultStampAmount
	}
	depth := opts.Depth
	if depth == 0 {
		depth = s.cfg.DefaultStampDepth
	}

	purchase, err := s.gw.PurchaseStamp(ctx, amount, depth, opts.Label)
	if err != nil {
		return nil, fmt.Errorf("store: purchase stamp: %w", err)
	}
	if purchase.BatchID == "" {
		return nil, fmt.Errorf("store: gateway returned empty batch id")
	}

	zap.L().Info("stamp purchased, waiting for propagation",
		zap.String("batch_id", purchase.BatchID))

	if err := s.waitUsable(ctx, purchase.BatchID); err != nil {
		return nil, err
	}

	env, err := swip.Wrap(record, purchase.BatchID, swip.Options{})
	if err != nil {
		return nil, fmt.Errorf("store: wrap record: %w", err)
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("store: encode envelope: %w", err)
	}

	upload, err := s.gw.UploadData(ctx, payload, env.StampID, "application/json")
	if err != nil {
		return nil, fmt.Errorf("store: upload envelope: %w", err)
	}

	zap.L().Info("envelope stored",
		zap.String("batch_id", purchase.BatchID),
		zap.String("reference", upload.Reference))

	return &Result{
		BatchID:   purchase.BatchID,
		Reference: upload.Reference,
		Envelope:  env,
	}, nil
}

// waitUsable polls stamp details until the gateway reports the stamp usable.
// 404s and probe failures count as "not ready yet"; only context expiry ends
// the wait.
func (s *Store) waitUsable(ctx context.Context, batchID string) error {
	interval := s.PollInterval
	if interval == 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		info, err := s.gw.GetStampDetails(ctx, batchID)
		switch {
		case err == nil && info.Usable:
			return nil
		case err != nil && !gateway.IsNotFound(err):
			zap.L().Debug("stamp probe failed, retrying",
				zap.String("batch_id", batchID), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("store: stamp %s never became usable: %w", batchID, ctx.Err())
		case <-ticker.C:
		}
	}
}
