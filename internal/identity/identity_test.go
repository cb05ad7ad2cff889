package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	v := NewVerifier("secret", "https://auth.example", "authenticated")
	want := &Session{UserID: uuid.New(), Email: "ada@example.com", SessionID: "sess-1"}

	token, err := v.Issue(want, time.Hour)
	require.NoError(t, err)

	got, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "sess-1", got.Key())
}

func TestVerifyRejects(t *testing.T) {
	v := NewVerifier("secret", "", "authenticated")
	session := &Session{UserID: uuid.New(), Email: "ada@example.com"}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewVerifier("other", "", "authenticated").Issue(session, time.Hour)
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewVerifier("secret", "", "authenticated")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.Issue(session, time.Hour)
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong audience", func(t *testing.T) {
		token, err := NewVerifier("secret", "", "anon").Issue(session, time.Hour)
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("subject not a uuid", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "service-role",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = v.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestSessionKeyFallsBackToUser(t *testing.T) {
	s := &Session{UserID: uuid.New()}
	assert.Equal(t, s.UserID.String(), s.Key())
}

func TestContext(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	s := &Session{UserID: uuid.New()}
	ctx := WithSession(context.Background(), s)
	assert.Same(t, s, FromContext(ctx))
}
