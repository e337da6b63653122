package utils

import (
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"sync"
	"testing"
)

func sha1Hex(s string) string {
	sum := sha1.Sum([]byte(s)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

func TestHash_MatchesSHA1(t *testing.T) {
	data := []byte("public_id=abc&timestamp=1secret")
	want := sha1.Sum(data) //nolint:gosec

	got := Hash(data)

	if hex.EncodeToString(got) != hex.EncodeToString(want[:]) {
		t.Errorf("expected %x, got %x", want, got)
	}
}

func TestHash_Deterministic(t *testing.T) {
	a := Hash([]byte("data"))
	b := Hash([]byte("data"))

	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Error("expected identical digests for identical input")
	}
}

func TestHash_Concurrent(t *testing.T) {
	want := hex.EncodeToString(Hash([]byte("concurrent")))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := hex.EncodeToString(Hash([]byte("concurrent"))); got != want {
				t.Errorf("expected %s, got %s", want, got)
			}
		}()
	}
	wg.Wait()
}

func TestSignParams(t *testing.T) {
	tests := []struct {
		name   string
		params map[string]string
		secret string
		want   string
	}{
		{
			name:   "sorted by name",
			params: map[string]string{"timestamp": "1315060510", "public_id": "sample"},
			secret: "abcd",
			want:   sha1Hex("public_id=sample&timestamp=1315060510abcd"),
		},
		{
			name:   "empty values skipped",
			params: map[string]string{"public_id": "sample", "invalidate": "", "timestamp": "1"},
			secret: "s",
			want:   sha1Hex("public_id=sample&timestamp=1s"),
		},
		{
			name:   "no params",
			params: map[string]string{},
			secret: "s",
			want:   sha1Hex("s"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignParams(tt.params, tt.secret); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
