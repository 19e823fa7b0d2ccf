package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupConfigFromEnv(t *testing.T) {
	addr := "localhost:11111"
	os.Setenv("RT_API_SERVICE_ADDRESS", addr)
	os.Setenv("RT_AUTH_TOKEN_SECRET", "test-secret")
	os.Setenv("RT_AI_ENDPOINT", "https://gateway.example.com/v1")

	cfg := LoadBaseConfigFromENV()

	assert.Equal(t, cfg.Addr, addr)
	assert.Equal(t, cfg.Auth.TokenSecret, "test-secret")
	assert.Equal(t, cfg.AI.Endpoint, "https://gateway.example.com/v1")
}
