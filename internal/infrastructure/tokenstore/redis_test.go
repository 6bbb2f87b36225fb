package tokenstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashTokenFitsBcrypt(t *testing.T) {
	// A signed JWT is far past bcrypt's 72 byte limit; the sha256
	// prehash must bring it under.
	long := strings.Repeat("x", 500)

	digest := hashToken(long)
	assert.LessOrEqual(t, len(digest), 72)

	hash, err := bcrypt.GenerateFromPassword(digest, bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, hashToken(long)))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, hashToken(long+"y")))
}

func TestKeyLayout(t *testing.T) {
	assert.Equal(t, "refresh:u1:t1", key("u1", "t1"))
}
