package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseToken(token + "broken")
	assert.Error(t, err)
}
