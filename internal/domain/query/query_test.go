package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestMatch_IsZero(t *testing.T) {
	assert.True(t, Match{}.IsZero())
	assert.False(t, Match{StartsWith: strPtr("A")}.IsZero())
	assert.False(t, Match{EndsWith: strPtr("z")}.IsZero())
	assert.False(t, Match{Equals: strPtr("Dairy")}.IsZero())
}

func TestMatch_ConjunctionKeepsAllParts(t *testing.T) {
	m := Match{StartsWith: strPtr("A"), EndsWith: strPtr("z")}

	assert.Equal(t, "A", *m.StartsWith)
	assert.Equal(t, "z", *m.EndsWith)
	assert.Nil(t, m.Equals)
}
