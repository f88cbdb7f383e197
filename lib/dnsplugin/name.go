package dnsplugin

import (
	"encoding/base32"
	"errors"
	"fmt"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

const (
	// DefaultCarrierLabel stands for an empty carrier
	DefaultCarrierLabel = "_"

	maxLabelLength = 63
)

var (
	ERR_NO_CARRIER     = errors.New("Carrier label missing")
	ERR_LABEL_TOO_LONG = errors.New("Carrier label too long")
	ERR_NAME_INVALID   = errors.New("Query name invalid")
	ERR_SECRET_INVALID = errors.New("Secret labels invalid")

	// SecretEncoding encodes the secret into case insensitive labels
	SecretEncoding = base32.HexEncoding.WithPadding(base32.NoPadding)
)

// QueryName builds <carrier>.<secret labels>.<suffix>
func QueryName(carrier, secret, suffix string) (string, error) {
	label := DefaultCarrierLabel
	if carrier != "" {
		ascii, err := idna.ToASCII(carrier)
		if err != nil {
			return "", err
		}
		if len(ascii) > maxLabelLength {
			return "", ERR_LABEL_TOO_LONG
		}
		label = escapeLabel(ascii)
	}

	parts := []string{label}
	encoded := strings.ToLower(SecretEncoding.EncodeToString([]byte(secret)))
	for len(encoded) > 0 {
		end := maxLabelLength
		if end > len(encoded) {
			end = len(encoded)
		}
		parts = append(parts, encoded[:end])
		encoded = encoded[end:]
	}
	parts = append(parts, dns.Fqdn(suffix))

	name := strings.Join(parts, ".")
	if _, ok := dns.IsDomainName(name); !ok {
		return "", ERR_NAME_INVALID
	}
	return name, nil
}

// ParseQueryName splits a query name built by QueryName. ok is false if
// qname is not below suffix.
func ParseQueryName(qname, suffix string) (carrier, secret string, ok bool, err error) {
	suffix = dns.Fqdn(suffix)
	qname = dns.Fqdn(qname)
	if !dns.IsSubDomain(suffix, qname) {
		return "", "", false, nil
	}

	labels := dns.SplitDomainName(qname)
	labels = labels[:len(labels)-dns.CountLabel(suffix)]
	if len(labels) == 0 {
		return "", "", true, ERR_NO_CARRIER
	}

	if labels[0] != DefaultCarrierLabel {
		carrier, err = idna.ToUnicode(unescape(labels[0]))
		if err != nil {
			return "", "", true, fmt.Errorf("%w: %s", ERR_NAME_INVALID, err)
		}
	}

	data, err := SecretEncoding.DecodeString(strings.ToUpper(strings.Join(labels[1:], "")))
	if err != nil {
		return "", "", true, fmt.Errorf("%w: %s", ERR_SECRET_INVALID, err)
	}
	return carrier, string(data), true, nil
}

// escapeLabel turns a raw label into presentation format
func escapeLabel(s string) string {
	b := strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case strings.IndexByte(`. \"();@'$`, c) >= 0:
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < ' ' || c > '~':
			fmt.Fprintf(&b, "\\%03d", c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
