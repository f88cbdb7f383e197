package vsel_test

import (
	"testing"

	"github.com/jpicht/vsel/lib/vsel"
	"github.com/stretchr/testify/assert"
)

func TestSelectorMapping(t *testing.T) {
	for b := 0; b < 256; b++ {
		r, ok := vsel.ToSelector(b)
		assert.True(t, ok)
		if b < 16 {
			assert.Equal(t, rune(0xFE00+b), r)
		} else {
			assert.Equal(t, rune(0xE0100+b-16), r)
		}
		back, ok := vsel.FromSelector(r)
		assert.True(t, ok)
		assert.Equal(t, byte(b), back)
	}
}

func TestSelectorOutOfDomain(t *testing.T) {
	for _, b := range []int{-1, 256, 1000} {
		_, ok := vsel.ToSelector(b)
		assert.False(t, ok, "byte %d", b)
	}
	for _, r := range []rune{0x41, 0xFDFF, 0xFE10, 0xE00FF, 0xE01F0} {
		_, ok := vsel.FromSelector(r)
		assert.False(t, ok, "rune %U", r)
		assert.False(t, vsel.IsSelector(r))
	}
	assert.True(t, vsel.IsSelector(0xFE0F))
	assert.True(t, vsel.IsSelector(0xE01EF))
}
