// Command coredns is a CoreDNS build with the vsel plugin compiled in.
package main

import (
	"github.com/coredns/coredns/core/dnsserver"
	_ "github.com/coredns/coredns/core/plugin"
	"github.com/coredns/coredns/coremain"

	_ "github.com/jpicht/vsel/lib/dnsplugin"
)

func init() {
	// vsel answers its own zone before any resolver plugin sees it
	for i, d := range dnsserver.Directives {
		if d == "forward" {
			dnsserver.Directives = append(dnsserver.Directives[:i], append([]string{"vsel"}, dnsserver.Directives[i:]...)...)
			return
		}
	}
	dnsserver.Directives = append(dnsserver.Directives, "vsel")
}

func main() {
	coremain.Run()
}
