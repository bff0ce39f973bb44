package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessTTL   = time.Hour
	testRefreshTTL  = 7 * 24 * time.Hour
	testResetTTL    = time.Hour
	testFrontendURL = "http://localhost:5173"
)

func TestTokenCodec_IssuePairRoundTrip(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"), testAccessTTL, testRefreshTTL)

	pair, err := codec.IssuePair("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	userID, err := codec.Validate(pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)

	userID, err = codec.Validate(pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "user-42", userID)
}

func TestTokenCodec_WrongType(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"), testAccessTTL, testRefreshTTL)

	pair, err := codec.IssuePair("user-42")
	require.NoError(t, err)

	_, err = codec.Validate(pair.AccessToken, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = codec.Validate(pair.RefreshToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenCodec_Expiry(t *testing.T) {
	tests := []struct {
		name      string
		issuedAgo time.Duration
		wantErr   error
	}{
		{name: "fresh token", issuedAgo: 0},
		{name: "one second before expiry", issuedAgo: testAccessTTL - time.Second},
		{name: "past expiry", issuedAgo: testAccessTTL + time.Second, wantErr: ErrTokenExpired},
		{name: "long past expiry", issuedAgo: 48 * time.Hour, wantErr: ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewTokenCodec([]byte("test-secret"), testAccessTTL, testRefreshTTL)
			codec.now = func() time.Time { return time.Now().Add(-tt.issuedAgo) }

			pair, err := codec.IssuePair("user-42")
			require.NoError(t, err)

			codec.now = time.Now
			_, err = codec.Validate(pair.AccessToken, TokenTypeAccess)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenCodec_BadSignature(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"), testAccessTTL, testRefreshTTL)
	other := NewTokenCodec([]byte("other-secret"), testAccessTTL, testRefreshTTL)

	pair, err := other.IssuePair("user-42")
	require.NoError(t, err)

	_, err = codec.Validate(pair.AccessToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenCodec_Garbage(t *testing.T) {
	codec := NewTokenCodec([]byte("test-secret"), testAccessTTL, testRefreshTTL)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := codec.Validate(token, TokenTypeAccess)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}
