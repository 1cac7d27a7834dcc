// token_test.go - Tests for session token issuance and verification

package auth

import (
	"testing"
	"time"

	"go-ecommerce-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var secret = []byte("test-secret")

func TestIssueAndVerify(t *testing.T) {
	token, err := Issue(secret, 42, models.RoleAdmin)
	assert.NoError(t, err)

	claims, err := Verify(secret, token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := Issue(secret, 1, models.RoleUser)
	assert.NoError(t, err)

	_, err = Verify([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	claims := &Claims{
		UserID: 1,
		Role:   models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-TokenTTL)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	assert.NoError(t, err)

	_, err = Verify(secret, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedInput(t *testing.T) {
	for _, input := range []string{"", "garbage", "a.b.c", "Bearer something"} {
		_, err := Verify(secret, input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	// alg=none tokens must not slip past verification.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: models.RoleAdmin})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = Verify(secret, unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
