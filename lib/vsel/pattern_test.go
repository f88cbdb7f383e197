package vsel_test

import (
	"testing"

	"github.com/jpicht/vsel/lib/vsel"
	"github.com/stretchr/testify/assert"
)

func TestFindRepeatingPattern(t *testing.T) {
	cases := []struct {
		in      string
		pattern string
		ok      bool
	}{
		{"abcabcabc", "abc", true},
		{"aa", "a", true},
		{"abababab", "ab", true},
		{"äöäö", "äö", true},
		{"abcde", "", false},
		{"abcab", "", false},
		{"a", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		p, ok := vsel.FindRepeatingPattern(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.pattern, p, c.in)
	}
}
