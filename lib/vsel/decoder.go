package vsel

import (
	"strings"
	"unicode/utf8"
)

// Extract returns the bytes carried by every variation selector in s, in
// document order. All other code points are ignored.
func Extract(s string) []byte {
	var data []byte
	for _, r := range s {
		if c, ok := FromSelector(r); ok {
			data = append(data, c)
		}
	}
	return data
}

// Strip removes all variation selectors, leaving the visible carrier
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSelector(r) {
			return -1
		}
		return r
	}, s)
}

// Decode recovers the text hidden in s. Invalid UTF-8 in the payload is
// replaced by U+FFFD, one per offending byte. A payload that is an exact
// repetition of a shorter string collapses to one copy, which undoes
// full-text-per-char encoding but also truncates secrets such as "abab".
func Decode(s string) string {
	text := decodeUTF8(Extract(s))
	if p, ok := FindRepeatingPattern(text); ok {
		return p
	}
	return text
}

func decodeUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	b := strings.Builder{}
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}
