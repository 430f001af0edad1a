package token

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/moneywise/finance-tracker/internal/domain/error"
)

const testTTL = 15 * time.Minute

var testSecret = base64.StdEncoding.EncodeToString([]byte("a-32-byte-signing-key-for-tests!"))

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time                  { return c.now }
func (c *stubClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *stubClock) WithTimeout(ctx context.Context, _ time.Duration) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

func TestJWTSigner_RoundTrip(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	signer, err := NewJWTSigner(testSecret, testTTL, clock)
	require.NoError(t, err)

	signed, err := signer.Generate(42, "john@example.com", "USER")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := signer.Subject(signed)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", subject)

	claims, err := signer.Validate(signed, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "john@example.com", claims.Subject)
}

func TestJWTSigner_RejectsSubjectMismatch(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	signer, err := NewJWTSigner(testSecret, testTTL, clock)
	require.NoError(t, err)

	signed, err := signer.Generate(42, "john@example.com", "USER")
	require.NoError(t, err)

	_, err = signer.Validate(signed, "eve@example.com")
	assert.ErrorIs(t, err, errs.ErrInvalidAccessToken)
}

func TestJWTSigner_RejectsExpiredToken(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}
	signer, err := NewJWTSigner(testSecret, testTTL, clock)
	require.NoError(t, err)

	signed, err := signer.Generate(42, "john@example.com", "USER")
	require.NoError(t, err)

	clock.now = clock.now.Add(testTTL + time.Minute)

	_, err = signer.Subject(signed)
	assert.ErrorIs(t, err, errs.ErrInvalidAccessToken)
}

func TestJWTSigner_RejectsForeignKey(t *testing.T) {
	clock := &stubClock{now: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)}

	signer, err := NewJWTSigner(testSecret, testTTL, clock)
	require.NoError(t, err)

	otherSecret := base64.StdEncoding.EncodeToString([]byte("another-32-byte-signing-key-here"))
	otherSigner, err := NewJWTSigner(otherSecret, testTTL, clock)
	require.NoError(t, err)

	signed, err := otherSigner.Generate(42, "john@example.com", "USER")
	require.NoError(t, err)

	_, err = signer.Subject(signed)
	assert.ErrorIs(t, err, errs.ErrInvalidAccessToken)
}

func TestNewJWTSigner_RejectsBadSecret(t *testing.T) {
	clock := &stubClock{now: time.Now()}

	_, err := NewJWTSigner("not-valid-base64!!!", testTTL, clock)
	assert.Error(t, err)

	_, err = NewJWTSigner("", testTTL, clock)
	assert.Error(t, err)
}
