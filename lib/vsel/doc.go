// Package vsel hides a text payload in a carrier string by appending
// invisible Unicode variation selectors, one per payload byte.
//
// Bytes 0-15 map to U+FE00..U+FE0F and bytes 16-255 to U+E0100..U+E01EF.
// Decoding collects every selector in the input regardless of which code
// point precedes it.
package vsel
