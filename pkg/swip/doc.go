// Package swip implements the SWIP envelope: the container format that
// packages a provenance record, its integrity hash, and its postage stamp
// binding for upload to Swarm.
//
// Wrap serializes the inner record to canonical JSON, hashes those bytes,
// and base64-encodes them into the envelope. Unwrap reverses the process
// and reports validity instead of returning errors; a tampered or
// undecodable envelope simply comes back invalid.
package swip
