// Package gateway is the HTTP client for the Swarm gateway API: postage
// stamp lifecycle (purchase, inspect, list, extend), data upload and
// download, and a liveness probe.
//
// # Usage
//
//	cfg, _ := config.FromEnv()
//	client := gateway.New(cfg)
//
//	resp, err := client.PurchaseStamp(ctx, 2000000000, 17, "my-label")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("batch:", resp.BatchID)
//
// All calls take a context and are bounded by the configured request
// timeout (health checks by the shorter health timeout). The client holds
// no mutable state and is safe for concurrent use.
//
// # Errors
//
// Non-2xx responses come back as *StatusError with the status code and
// response body. IsNotFound distinguishes 404s, which the upload flow
// treats as "stamp not yet propagated" rather than a hard failure. Payload
// size violations (ErrEmptyPayload, ErrPayloadTooLarge) are caught before
// any network traffic.
package gateway
