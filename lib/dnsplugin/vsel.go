// Package dnsplugin is a CoreDNS plugin that answers TXT queries below a
// zone with a carrier text hiding the secret spelled in the query name.
//
//	vsel vsel.example.org [full]
package dnsplugin

import (
	"context"
	"strings"

	"github.com/coredns/caddy"
	"github.com/coredns/coredns/core/dnsserver"
	"github.com/coredns/coredns/plugin"
	clog "github.com/coredns/coredns/plugin/pkg/log"
	"github.com/coredns/coredns/request"
	"github.com/jpicht/vsel/lib/vsel"
	"github.com/miekg/dns"
)

const pluginName = "vsel"

var log = clog.NewWithPlugin(pluginName)

// Vsel implements a coredns plugin that answers TXT queries with a
// carrier that has the secret from the query name hidden in it
type Vsel struct {
	Next   plugin.Handler
	suffix string
	full   bool
}

// New creates the plugin for the zone suffix
func New(suffix string, full bool, next plugin.Handler) Vsel {
	return Vsel{
		Next:   next,
		suffix: dns.Fqdn(suffix),
		full:   full,
	}
}

func (e Vsel) Name() string {
	return pluginName
}

func reply(w dns.ResponseWriter, r *dns.Msg, rcode int, answer ...dns.RR) (int, error) {
	m := new(dns.Msg)
	m.SetRcode(r, rcode)
	m.Authoritative = true
	m.Answer = answer

	if err := w.WriteMsg(m); err != nil {
		return dns.RcodeServerFailure, plugin.Error(pluginName, err)
	}
	return rcode, nil
}

// ServeDNS encodes the secret carried in the query name
func (e Vsel) ServeDNS(ctx context.Context, w dns.ResponseWriter, r *dns.Msg) (int, error) {
	state := request.Request{W: w, Req: r}
	if len(r.Question) == 0 {
		return plugin.NextOrFailure(e.Name(), e.Next, ctx, w, r)
	}

	// the raw question name keeps the case of the carrier
	qname := r.Question[0].Name
	carrier, secret, ok, err := ParseQueryName(qname, e.suffix)
	if !ok {
		return plugin.NextOrFailure(e.Name(), e.Next, ctx, w, r)
	}

	// the zone apex itself exists but carries nothing
	if err == ERR_NO_CARRIER {
		return reply(w, r, dns.RcodeSuccess)
	}

	if err != nil {
		log.Warningf("Invalid query %s: %s", state.Name(), err)
		return reply(w, r, dns.RcodeNameError)
	}

	if state.QType() != dns.TypeTXT {
		return reply(w, r, dns.RcodeSuccess)
	}

	encoded := vsel.Encode(secret, carrier, vsel.Options{FullTextPerChar: e.full})
	log.Debugf("Encoded %d bytes into %d runes", len(secret), len([]rune(carrier)))

	txt := &dns.TXT{
		Hdr: dns.RR_Header{Name: qname, Rrtype: dns.TypeTXT, Class: dns.ClassINET, Ttl: 0},
		Txt: SplitTXT(encoded),
	}
	return reply(w, r, dns.RcodeSuccess, txt)
}

func init() { plugin.Register(pluginName, setup) }

func setup(c *caddy.Controller) error {
	e, err := parse(c)
	if err != nil {
		return plugin.Error(pluginName, err)
	}

	dnsserver.GetConfig(c).AddPlugin(func(next plugin.Handler) plugin.Handler {
		e.Next = next
		return e
	})

	return nil
}

// parse reads `vsel <domain suffix> [full]`
func parse(c *caddy.Controller) (Vsel, error) {
	e := Vsel{}

	for c.Next() {
		if !c.NextArg() {
			return e, c.ArgErr()
		}
		e.suffix = dns.Fqdn(c.Val())

		if c.NextArg() {
			if !strings.EqualFold(c.Val(), "full") {
				return e, c.Errf("unknown mode '%s'", c.Val())
			}
			e.full = true
		}
		if c.NextArg() {
			return e, c.ArgErr()
		}
	}

	return e, nil
}
