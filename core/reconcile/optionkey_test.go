package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewOptionKey_OrderIndependent verifies that insertion order of the
// option map does not affect the key.
func TestNewOptionKey_OrderIndependent(t *testing.T) {
	a := NewOptionKey(map[string]string{"size": "L", "color": "Black"})
	b := NewOptionKey(map[string]string{"color": "Black", "size": "L"})

	assert.Equal(t, a, b)
	assert.Equal(t, OptionKey(`"color"="Black"|"size"="L"`), a)
}

// TestNewOptionKey_SeparatorsInValues verifies that option values containing
// the separator characters never collide with a structurally different
// option set.
func TestNewOptionKey_SeparatorsInValues(t *testing.T) {
	a := NewOptionKey(map[string]string{"color": "Red|size=M"})
	b := NewOptionKey(map[string]string{"color": "Red", "size": "M"})

	assert.NotEqual(t, a, b)

	c := NewOptionKey(map[string]string{"size": "M=L"})
	d := NewOptionKey(map[string]string{"size=M": "L"})

	assert.NotEqual(t, c, d)
}

// TestNewOptionKey_DistinctValues verifies different option values yield
// different keys.
func TestNewOptionKey_DistinctValues(t *testing.T) {
	a := NewOptionKey(map[string]string{"size": "L"})
	b := NewOptionKey(map[string]string{"size": "XL"})
	c := NewOptionKey(map[string]string{"color": "L"})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

// TestNewOptionKey_Empty verifies empty and nil maps produce the zero key.
func TestNewOptionKey_Empty(t *testing.T) {
	assert.True(t, NewOptionKey(nil).IsZero())
	assert.True(t, NewOptionKey(map[string]string{}).IsZero())
	assert.False(t, NewOptionKey(map[string]string{"size": "S"}).IsZero())
}
