package utils

import (
	"crypto/sha1" //nolint:gosec // required by the Cloudinary signature scheme
	"encoding/hex"
	"hash"
	"sort"
	"strings"
	"sync"
)

// hasherPool is a package-level pool of reusable SHA-1 hash instances.
var hasherPool = sync.Pool{
	New: func() any {
		return sha1.New() //nolint:gosec
	},
}

// Hash computes a SHA-1 digest over the given byte slice
// using a hasher pulled from the hasher pool.
//
// Behavior:
//   - Retrieves a hash.Hash instance from sync.Pool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// SignParams computes a Cloudinary API request signature.
//
// Parameters with empty values are skipped; the rest are sorted by name,
// serialized as "k1=v1&k2=v2", suffixed with the API secret and hashed.
// The result is hex-encoded.
//
// Example usage:
//
//	sig := utils.SignParams(map[string]string{"public_id": "abc", "timestamp": "1700000000"}, secret)
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params[k])
	}
	sb.WriteString(secret)

	return hex.EncodeToString(Hash([]byte(sb.String())))
}
