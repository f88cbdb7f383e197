package dnsplugin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/miekg/dns"
)

var ERR_QUERY_FAILED = errors.New("Query failed")

// Client asks a vsel responder to encode secrets
type Client struct {
	Resolver string
	Suffix   string
	Timeout  time.Duration
}

// Query sends the TXT query for carrier and secret and returns the
// encoded text from the answer
func (c Client) Query(ctx context.Context, carrier, secret string) (string, error) {
	name, err := QueryName(carrier, secret, c.Suffix)
	if err != nil {
		return "", err
	}

	m := new(dns.Msg)
	m.SetQuestion(name, dns.TypeTXT)
	m.SetEdns0(dns.DefaultMsgSize, false)

	cl := &dns.Client{Net: "udp", Timeout: c.Timeout}
	in, _, err := cl.ExchangeContext(ctx, m, c.Resolver)
	if err == nil && in.Truncated {
		cl.Net = "tcp"
		in, _, err = cl.ExchangeContext(ctx, m, c.Resolver)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s", ERR_QUERY_FAILED, err)
	}
	if in.Rcode != dns.RcodeSuccess {
		return "", fmt.Errorf("%w: %s", ERR_QUERY_FAILED, dns.RcodeToString[in.Rcode])
	}

	for _, rr := range in.Answer {
		if txt, ok := rr.(*dns.TXT); ok {
			return JoinTXT(txt.Txt), nil
		}
	}
	return "", fmt.Errorf("%w: no TXT answer", ERR_QUERY_FAILED)
}
