package security_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportrack/reportrack/pkg/security"
)

func Test_JWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	claims := security.NewTokenClaims("uid-1", "tester", "tester@example.com", time.Now().Add(time.Hour).Unix())

	token, err := security.GenerateJWT(claims, secret)
	require.NoError(t, err)

	parsed, err := security.VerifyJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", parsed.User)
	assert.Equal(t, "tester", parsed.Name)
	assert.Equal(t, "tester@example.com", parsed.Email)
}

func Test_JWTWrongSecret(t *testing.T) {
	claims := security.NewTokenClaims("uid-1", "tester", "tester@example.com", time.Now().Add(time.Hour).Unix())

	token, err := security.GenerateJWT(claims, []byte("secret-a"))
	require.NoError(t, err)

	_, err = security.VerifyJWT(token, []byte("secret-b"))
	assert.Error(t, err)
}

func Test_JWTExpired(t *testing.T) {
	claims := security.NewTokenClaims("uid-1", "tester", "tester@example.com", time.Now().Add(-time.Hour).Unix())

	token, err := security.GenerateJWT(claims, []byte("secret"))
	require.NoError(t, err)

	_, err = security.VerifyJWT(token, []byte("secret"))
	assert.Error(t, err)
}
