// Package align is for positioning a group's members against one another,
// classifying the shape of the result, checking that overlapping columns
// agree, and finding the kernel every member covers.
//
// Members are placed by their offset from a reference sequence: the index
// in the reference where the member starts, negative if it starts before
// the reference does. No scoring or gaps are involved.
package align

import (
	"fmt"
	"strings"

	"github.com/jjtimmons/pepclust/internal/cluster"
	"github.com/jjtimmons/pepclust/internal/peptide"
	"github.com/jjtimmons/pepclust/internal/relate"
)

// Shape describes which ends of a group's members line up.
type Shape int

const (
	// Single is a group whose members all start and end together
	Single Shape = iota

	// NAligned members all start together
	NAligned

	// CAligned members all end together
	CAligned

	// Mixed members neither start nor end together
	Mixed
)

func (s Shape) String() string {
	switch s {
	case Single:
		return "Single"
	case NAligned:
		return "N-aligned"
	case CAligned:
		return "C-aligned"
	case Mixed:
		return "Mixed-aligned"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Reference is how a group's reference sequence is chosen.
type Reference string

const (
	// Seed uses the peptide that seeded the group
	Seed Reference = "seed"

	// Shortest uses the group's shortest member, earliest on ties
	Shortest Reference = "shortest"
)

// Options configure alignment.
type Options struct {
	// Filler pads members out to the alignment's width
	Filler byte

	// Reference selects the reference sequence
	Reference Reference
}

// DefaultOptions pad with '.' against the seed.
var DefaultOptions = Options{Filler: '.', Reference: Seed}

// Row is a single member's place in an alignment.
type Row struct {
	// Peptide is the member
	Peptide *peptide.Peptide

	// Offset is where the member starts relative to the reference's start
	Offset int

	// Aligned is the member's sequence padded with filler
	Aligned string
}

// Span is the interval [Start, End) a row occupies in reference coordinates.
func (r Row) Span() (start, end int) {
	return r.Offset, r.Offset + len(r.Peptide.Seq)
}

// Alignment is a group's members padded to a common frame.
type Alignment struct {
	// Group is the ID of the aligned group
	Group int

	// Reference is the sequence offsets are relative to
	Reference string

	// Rows in group member order
	Rows []Row

	// Width of every aligned string
	Width int

	// Shape of the alignment's ends
	Shape Shape

	// Filler is the padding character
	Filler byte
}

// Offset returns where seq starts relative to the start of ref.
//
// If either contains the other, it's the position of one within the other.
// Otherwise the longer of the two end overlaps decides which side seq
// hangs off: a longer overlap of ref's end with seq's start puts seq to the
// right, and the reverse puts it to the left. If there's no overlap, or both
// sides overlap equally, there's no single position and ErrNoOverlap is returned.
func Offset(ref, seq string) (int, error) {
	if i := strings.Index(ref, seq); i >= 0 {
		return i, nil
	}
	if i := strings.Index(seq, ref); i >= 0 {
		return -i, nil
	}

	left := relate.OverlapLength(ref, seq)
	right := relate.OverlapLength(seq, ref)
	switch {
	case left > 0 && left > right:
		return len(ref) - left, nil
	case right > 0 && right > left:
		return -(len(seq) - right), nil
	}

	return 0, fmt.Errorf("%w between %s and reference %s (overlaps %d and %d)", ErrNoOverlap, seq, ref, left, right)
}

// Align pads each of the group's members so they line up with one another.
func Align(g *cluster.Group, opts Options) (*Alignment, error) {
	if opts.Filler == 0 {
		opts.Filler = DefaultOptions.Filler
	}

	ref := reference(g, opts.Reference)
	a := &Alignment{
		Group:     g.ID,
		Reference: ref.Seq,
		Filler:    opts.Filler,
	}

	minOffset := 0
	for i, m := range g.Members {
		offset, err := Offset(ref.Seq, m.Seq)
		if err != nil {
			return nil, &Error{Group: g.ID, Reference: ref.Seq, Sequences: sequences(g), Err: err}
		}
		if i == 0 || offset < minOffset {
			minOffset = offset
		}
		a.Rows = append(a.Rows, Row{Peptide: m, Offset: offset})
	}

	left := -minOffset
	for _, r := range a.Rows {
		if w := left + r.Offset + len(r.Peptide.Seq); w > a.Width {
			a.Width = w
		}
	}

	fill := string(opts.Filler)
	nAligned, cAligned := true, true
	for i := range a.Rows {
		r := &a.Rows[i]
		pre := left + r.Offset
		post := a.Width - pre - len(r.Peptide.Seq)
		r.Aligned = strings.Repeat(fill, pre) + r.Peptide.Seq + strings.Repeat(fill, post)

		if pre > 0 {
			nAligned = false
		}
		if post > 0 {
			cAligned = false
		}
	}

	if err := a.checkWidth(); err != nil {
		return nil, err
	}

	switch {
	case nAligned && cAligned:
		a.Shape = Single
	case nAligned:
		a.Shape = NAligned
	case cAligned:
		a.Shape = CAligned
	default:
		a.Shape = Mixed
	}

	return a, nil
}

// checkWidth returns an *Error wrapping ErrInconsistentLength if any row's
// aligned string isn't Width long.
func (a *Alignment) checkWidth() error {
	for _, r := range a.Rows {
		if len(r.Aligned) == a.Width {
			continue
		}

		padded := make([]string, 0, len(a.Rows))
		for _, row := range a.Rows {
			padded = append(padded, row.Aligned)
		}
		return &Error{Group: a.Group, Reference: a.Reference, Sequences: padded, Err: ErrInconsistentLength}
	}
	return nil
}

// reference picks the peptide that offsets are measured against.
func reference(g *cluster.Group, how Reference) *peptide.Peptide {
	if how != Shortest || len(g.Members) == 0 {
		return g.Reference
	}

	shortest := g.Members[0]
	for _, m := range g.Members[1:] {
		if len(m.Seq) < len(shortest.Seq) {
			shortest = m
		}
	}
	return shortest
}

func sequences(g *cluster.Group) []string {
	seqs := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		seqs = append(seqs, m.Seq)
	}
	return seqs
}
