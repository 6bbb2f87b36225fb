package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinClauses(t *testing.T) {
	assert.Equal(t, "a = 1 AND b = 2", JoinWithAnd([]string{"a = 1", "b = 2"}))
	assert.Equal(t, "a = 1 OR b = 2 OR c = 3", JoinWithOr([]string{"a = 1", "b = 2", "c = 3"}))
	assert.Equal(t, "a = 1", JoinWithAnd([]string{"a = 1"}))
	assert.Equal(t, "", JoinWithAnd(nil))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%golang%", LikePattern("golang"))
	// An empty query matches everything with non-null text fields.
	assert.Equal(t, "%%", LikePattern(""))
	// Wildcards in the term are passed through, not escaped.
	assert.Equal(t, "%100%%", LikePattern("100%"))
}
