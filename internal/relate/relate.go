// Package relate is for finding which pairs of peptides overlap
// or contain one another.
package relate

import (
	"fmt"
	"strings"
)

// Mode is the kind of relation groups are built from.
type Mode string

const (
	// Overlap relates peptides by suffix/prefix overlap or containment
	Overlap Mode = "overlap"

	// Subset relates peptides only by containment
	Subset Mode = "subset"
)

// ParseMode returns the Mode with the given name.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(strings.ToLower(name)); m {
	case Overlap, Subset:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q, expected %q or %q", name, Overlap, Subset)
	}
}

// OverlapLength returns the length of the longest suffix of a that's
// also a prefix of b.
//
//	a: AAAAA
//	b:   AAABBB
//	       ^-^ 3
func OverlapLength(a, b string) int {
	x := len(a)
	if len(b) < x {
		x = len(b)
	}

	for ; x > 0; x-- {
		if a[len(a)-x:] == b[:x] {
			return x
		}
	}
	return 0
}

// Contains returns whether a is a substring of b.
func Contains(a, b string) bool {
	return strings.Contains(b, a)
}

// Overlaps returns whether either peptide contains the other or their
// ends overlap by at least minOverlap characters, in either direction.
func Overlaps(a, b string, minOverlap int) bool {
	if Contains(a, b) || Contains(b, a) {
		return true
	}
	return OverlapLength(a, b) >= minOverlap || OverlapLength(b, a) >= minOverlap
}
