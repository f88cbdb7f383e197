package vsel

const (
	// BaseStart is the first code point of the Variation Selectors block
	BaseStart = 0xFE00
	// SupplementStart is the first code point of the Variation Selectors
	// Supplement block
	SupplementStart = 0xE0100

	baseCount       = 16
	supplementCount = 240
)

// ToSelector maps a byte value to its variation selector. Values outside
// [0, 256) have no mapping.
func ToSelector(b int) (rune, bool) {
	switch {
	case b >= 0 && b < baseCount:
		return rune(BaseStart + b), true
	case b >= baseCount && b < baseCount+supplementCount:
		return rune(SupplementStart + b - baseCount), true
	}
	return 0, false
}

// FromSelector is the inverse of ToSelector
func FromSelector(r rune) (byte, bool) {
	switch {
	case r >= BaseStart && r < BaseStart+baseCount:
		return byte(r - BaseStart), true
	case r >= SupplementStart && r < SupplementStart+supplementCount:
		return byte(r - SupplementStart + baseCount), true
	}
	return 0, false
}

// IsSelector reports whether r carries a hidden byte
func IsSelector(r rune) bool {
	_, ok := FromSelector(r)
	return ok
}
