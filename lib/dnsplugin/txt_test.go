package dnsplugin_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jpicht/vsel/lib/dnsplugin"
	"github.com/jpicht/vsel/lib/vsel"
	"github.com/stretchr/testify/assert"
)

func TestSplitTXT(t *testing.T) {
	encoded := vsel.Encode(strings.Repeat("payload ", 40), "carrier", vsel.Options{})
	parts := dnsplugin.SplitTXT(encoded)

	assert.Greater(t, len(parts), 1)
	for _, p := range parts {
		assert.LessOrEqual(t, len(p), 255)
		assert.True(t, utf8.ValidString(p))
	}
	assert.Equal(t, encoded, dnsplugin.JoinTXT(parts))
}

func TestSplitTXTEscapes(t *testing.T) {
	parts := dnsplugin.SplitTXT(`a "quoted" \ value`)
	assert.Equal(t, []string{`a \"quoted\" \\ value`}, parts)
	assert.Equal(t, `a "quoted" \ value`, dnsplugin.JoinTXT(parts))
}

func TestJoinTXTWireEscapes(t *testing.T) {
	// miekg/dns presents bytes outside printable ASCII as \DDD
	assert.Equal(t, "A\ufe00", dnsplugin.JoinTXT([]string{`A\239\184\128`}))
	assert.Equal(t, `x"y`, dnsplugin.JoinTXT([]string{`x\"`, `y`}))
	assert.Equal(t, "", dnsplugin.JoinTXT(nil))
}
