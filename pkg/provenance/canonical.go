package provenance

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// HashPrefix is prepended to every content hash produced by this package.
const HashPrefix = "sha256:"

// CanonicalJSON serializes v to RFC 8785 canonical JSON: lexicographically
// sorted object keys, minimal number formatting, no HTML escaping. Two
// structurally equal values always produce identical bytes, which is what
// makes the content hashes below reproducible.
func CanonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical json: marshal failed: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonical json: transform failed: %w", err)
	}
	return canonical, nil
}

// HashBytes returns the "sha256:"-prefixed hex digest of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return HashPrefix + hex.EncodeToString(sum[:])
}

// ContentHash computes the content hash of data. Strings are hashed over
// their raw UTF-8 bytes without any JSON re-encoding; every other value is
// hashed over its canonical JSON serialization.
func ContentHash(data any) (string, error) {
	if s, ok := data.(string); ok {
		return HashBytes([]byte(s)), nil
	}
	canonical, err := CanonicalJSON(data)
	if err != nil {
		return "", err
	}
	return HashBytes(canonical), nil
}
