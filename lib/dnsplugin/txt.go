package dnsplugin

import (
	"strings"
	"unicode/utf8"
)

const maxTXTString = 255

// SplitTXT cuts s into TXT character-strings of at most 255 bytes without
// splitting a code point, escaped for miekg/dns
func SplitTXT(s string) []string {
	var parts []string
	for len(s) > 0 {
		end := len(s)
		if end > maxTXTString {
			end = maxTXTString
			for end > 0 && !utf8.RuneStart(s[end]) {
				end--
			}
			if end == 0 {
				end = maxTXTString
			}
		}
		parts = append(parts, escapeTXT(s[:end]))
		s = s[end:]
	}
	return parts
}

// JoinTXT reassembles the strings of a TXT record as received on the wire
func JoinTXT(parts []string) string {
	b := strings.Builder{}
	for _, p := range parts {
		b.WriteString(unescape(p))
	}
	return b.String()
}

func escapeTXT(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// unescape resolves the \DDD and \X escapes of the presentation format
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b = append(b, c)
			continue
		}
		if i+3 < len(s) && isDigit(s[i+1]) && isDigit(s[i+2]) && isDigit(s[i+3]) {
			v := int(s[i+1]-'0')*100 + int(s[i+2]-'0')*10 + int(s[i+3]-'0')
			if v <= 255 {
				b = append(b, byte(v))
				i += 3
				continue
			}
		}
		b = append(b, s[i+1])
		i++
	}
	return string(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
