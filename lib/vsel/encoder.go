package vsel

import (
	"sort"
	"strings"
)

// DefaultCarrier replaces an empty carrier
const DefaultCarrier = "A"

// Options selects the encoding strategy
type Options struct {
	// FullTextPerChar appends the whole payload after every carrier code
	// point instead of dispersing single bytes.
	FullTextPerChar bool
	// Rand picks the carrier positions in dispersed mode. A fresh
	// NewRandomPermuter is used when nil.
	Rand Permuter
}

// Encode hides secret inside carrier
func Encode(secret, carrier string, opts Options) string {
	if carrier == "" {
		carrier = DefaultCarrier
	}
	data := []byte(secret)
	if len(data) == 0 {
		return carrier
	}

	if opts.FullTextPerChar {
		return encodeFull(data, carrier)
	}

	chars := []rune(carrier)
	if len(data) > len(chars) {
		return encodeSequential(data, chars)
	}

	rnd := opts.Rand
	if rnd == nil {
		rnd = NewRandomPermuter()
	}
	return encodeDispersed(data, chars, rnd)
}

// encodeFull anchors a complete copy of the payload to each carrier
// code point
func encodeFull(data []byte, carrier string) string {
	payload := selectors(data)
	b := strings.Builder{}
	for _, r := range carrier {
		b.WriteRune(r)
		b.WriteString(payload)
	}
	return b.String()
}

// encodeSequential handles payloads longer than the carrier: one byte per
// carrier code point, the rest appended at the end
func encodeSequential(data []byte, chars []rune) string {
	b := strings.Builder{}
	for i, r := range chars {
		b.WriteRune(r)
		writeSelector(&b, data[i])
	}
	b.WriteString(selectors(data[len(chars):]))
	return b.String()
}

// encodeDispersed attaches the payload bytes, in order, to len(data)
// randomly chosen carrier positions
func encodeDispersed(data []byte, chars []rune, rnd Permuter) string {
	positions := rnd.Perm(len(chars))[:len(data)]
	sort.Ints(positions)

	b := strings.Builder{}
	next := 0
	for i, r := range chars {
		b.WriteRune(r)
		if next < len(positions) && positions[next] == i {
			writeSelector(&b, data[next])
			next++
		}
	}
	return b.String()
}

func selectors(data []byte) string {
	b := strings.Builder{}
	for _, c := range data {
		writeSelector(&b, c)
	}
	return b.String()
}

func writeSelector(b *strings.Builder, c byte) {
	if r, ok := ToSelector(int(c)); ok {
		b.WriteRune(r)
	}
}
