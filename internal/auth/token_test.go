package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomToken(t *testing.T) {
	first, err := RandomToken(32)
	require.NoError(t, err)
	second, err := RandomToken(32)
	require.NoError(t, err)

	assert.Len(t, first, 64) // hex doubles the byte count
	assert.NotEqual(t, first, second)
}

func TestRandomOTP(t *testing.T) {
	code, err := RandomOTP(6)
	require.NoError(t, err)

	assert.Len(t, code, 6)
	assert.Regexp(t, `^[0-9]{6}$`, code)
}
