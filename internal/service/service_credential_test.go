package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-chat-accounts/internal/config"
	"github.com/MKhiriev/go-chat-accounts/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fast parameters keep the tests quick.
func newTestCredentialService() *argonCredentialService {
	return NewCredentialService(config.App{ArgonTime: 1, ArgonMemory: 1024, ArgonThreads: 1}, logger.Nop()).(*argonCredentialService)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestCredentialService_HashVerifyRoundTrip(t *testing.T) {
	svc := newTestCredentialService()
	ctx := context.Background()

	encoded, err := svc.Hash(ctx, "s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=1024,t=1,p=1$"), encoded)
	assert.NotContains(t, encoded, "s3cret")
	assert.True(t, svc.Verify(ctx, "s3cret", encoded))
}

func TestCredentialService_VerifyMismatch(t *testing.T) {
	svc := newTestCredentialService()
	ctx := context.Background()

	encoded, err := svc.Hash(ctx, "s3cret")
	require.NoError(t, err)

	assert.False(t, svc.Verify(ctx, "S3cret", encoded))
	assert.False(t, svc.Verify(ctx, "", encoded))
}

func TestCredentialService_SaltsDiffer(t *testing.T) {
	svc := newTestCredentialService()
	ctx := context.Background()

	first, err := svc.Hash(ctx, "same")
	require.NoError(t, err)
	second, err := svc.Hash(ctx, "same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Verify(ctx, "same", first))
	assert.True(t, svc.Verify(ctx, "same", second))
}

func TestCredentialService_VerifyUsesStoredParameters(t *testing.T) {
	ctx := context.Background()
	old := NewCredentialService(config.App{ArgonTime: 2, ArgonMemory: 2048, ArgonThreads: 2}, logger.Nop())

	encoded, err := old.Hash(ctx, "pw")
	require.NoError(t, err)

	assert.True(t, newTestCredentialService().Verify(ctx, "pw", encoded))
}

// Any work factor accepted by config validation must verify.
func TestCredentialService_HashVerifyAtTimeBound(t *testing.T) {
	ctx := context.Background()
	svc := NewCredentialService(config.App{ArgonTime: config.MaxArgonTime, ArgonMemory: 64, ArgonThreads: 1}, logger.Nop())

	encoded, err := svc.Hash(ctx, "pw123")
	require.NoError(t, err)

	assert.True(t, svc.Verify(ctx, "pw123", encoded), encoded)
}

func TestCredentialService_VerifyMalformed(t *testing.T) {
	svc := newTestCredentialService()
	ctx := context.Background()

	valid, err := svc.Hash(ctx, "pw")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "plain text", encoded: "pw"},
		{name: "wrong algorithm", encoded: strings.Replace(valid, "argon2id", "argon2i", 1)},
		{name: "wrong version", encoded: strings.Replace(valid, "v=19", "v=16", 1)},
		{name: "missing section", encoded: strings.Join(parts[:5], "$")},
		{name: "garbage params", encoded: strings.Replace(valid, "m=1024,t=1,p=1", "m=x,t=1,p=1", 1)},
		{name: "zero memory", encoded: strings.Replace(valid, "m=1024", "m=0", 1)},
		{name: "time above bound", encoded: strings.Replace(valid, "t=1,", "t=17,", 1)},
		{name: "huge memory", encoded: strings.Replace(valid, "m=1024", "m=4294967295", 1)},
		{name: "threads overflow", encoded: strings.Replace(valid, "p=1", "p=300", 1)},
		{name: "bad salt", encoded: strings.Join([]string{"", parts[1], parts[2], parts[3], "!!!", parts[5]}, "$")},
		{name: "bad key", encoded: strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], "!!!"}, "$")},
		{name: "empty key", encoded: strings.Join([]string{"", parts[1], parts[2], parts[3], parts[4], ""}, "$")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, svc.Verify(ctx, "pw", tt.encoded))
			})
		})
	}
}

func TestCredentialService_HashRandomFailure(t *testing.T) {
	svc := newTestCredentialService()
	svc.random = failingReader{}

	encoded, err := svc.Hash(context.Background(), "pw")

	assert.Empty(t, encoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
