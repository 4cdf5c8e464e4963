package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenHashMatches(t *testing.T) {
	hash := HashToken("123456")
	assert.True(t, TokenHashMatches(hash, "123456"))
	assert.False(t, TokenHashMatches(hash, "123457"))
	assert.False(t, TokenHashMatches(hash, ""))
}

func TestHashTokenStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
	assert.Equal(t, "a@x.com", NormalizeEmail("a@x.com"))
}
