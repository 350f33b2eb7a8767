package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "aquaria/pkg/domain-errors"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, VerifyPassword("correct horse", hash))
	assert.True(t, dErrors.HasCode(VerifyPassword("wrong horse", hash), dErrors.CodeUnauthorized))
	assert.True(t, dErrors.HasCode(VerifyPassword("x", "not-a-hash"), dErrors.CodeInternal))
}

func TestHashPasswordRejects(t *testing.T) {
	_, err := HashPassword("")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = HashPassword(strings.Repeat("p", 73))
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestGenerate(t *testing.T) {
	a, err := Generate()
	require.NoError(t, err)
	b, err := Generate()
	require.NoError(t, err)
	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}
