package dnsplugin

import (
	"testing"

	"github.com/coredns/caddy"
	"github.com/coredns/coredns/core/dnsserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	c := caddy.NewTestController("dns", `vsel vsel.example.org`)
	require.NoError(t, setup(c))
	assert.Len(t, dnsserver.GetConfig(c).Plugin, 1)
}

func TestParse(t *testing.T) {
	cases := []struct {
		input  string
		suffix string
		full   bool
		fail   bool
	}{
		{`vsel vsel.example.org`, "vsel.example.org.", false, false},
		{`vsel vsel.example.org. full`, "vsel.example.org.", true, false},
		{`vsel example.org FULL`, "example.org.", true, false},
		{`vsel`, "", false, true},
		{`vsel example.org sparse`, "", false, true},
		{`vsel example.org full extra`, "", false, true},
	}
	for _, c := range cases {
		e, err := parse(caddy.NewTestController("dns", c.input))
		if c.fail {
			assert.Error(t, err, c.input)
			continue
		}
		require.NoError(t, err, c.input)
		assert.Equal(t, c.suffix, e.suffix, c.input)
		assert.Equal(t, c.full, e.full, c.input)
	}
}
