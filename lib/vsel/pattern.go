package vsel

import "strings"

// FindRepeatingPattern returns the shortest prefix of s that, repeated at
// least twice, yields exactly s. Lengths are counted in code points.
func FindRepeatingPattern(s string) (string, bool) {
	runes := []rune(s)
	n := len(runes)
	for p := 1; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}
		prefix := string(runes[:p])
		if strings.Repeat(prefix, n/p) == s {
			return prefix, true
		}
	}
	return "", false
}
