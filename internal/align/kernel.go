package align

// Misaligned returns whether any column of the alignment holds more than
// one distinct residue. Only the cells a member's span covers are compared,
// so padding never takes part whatever the filler is. It doesn't change the
// alignment.
func (a *Alignment) Misaligned() bool {
	if len(a.Rows) == 0 {
		return false
	}

	left := a.Rows[0].Offset
	for _, r := range a.Rows[1:] {
		if r.Offset < left {
			left = r.Offset
		}
	}

	for col := 0; col < a.Width; col++ {
		var seen byte
		have := false
		for _, r := range a.Rows {
			i := col - (r.Offset - left)
			if i < 0 || i >= len(r.Peptide.Seq) {
				continue
			}

			switch c := r.Peptide.Seq[i]; {
			case !have:
				seen, have = c, true
			case c != seen:
				return true
			}
		}
	}
	return false
}

// Window returns the [start, end) range, in reference coordinates, that every
// member's span covers. It starts from the leftmost member offset, skips
// forward to the first position all members cover, then extends while they
// all still do. ok is false if no position is covered by every member.
func (a *Alignment) Window() (start, end int, ok bool) {
	if len(a.Rows) == 0 {
		return 0, 0, false
	}

	lo, hi := a.Rows[0].Span()
	for _, r := range a.Rows[1:] {
		s, e := r.Span()
		if s < lo {
			lo = s
		}
		if e > hi {
			hi = e
		}
	}

	covered := func(i int) bool {
		for _, r := range a.Rows {
			if s, e := r.Span(); i < s || i >= e {
				return false
			}
		}
		return true
	}

	start = lo
	for start < hi && !covered(start) {
		start++
	}
	if start == hi {
		return 0, 0, false
	}

	end = start
	for end < hi && covered(end) {
		end++
	}
	return start, end, true
}

// Kernel returns the part of the reference sequence covered by every member.
// Coverage is all that's checked, the members aren't compared character by
// character within it (see Misaligned for that). It's empty if there's no
// position every member covers.
func (a *Alignment) Kernel() string {
	start, end, ok := a.Window()
	if !ok {
		return ""
	}

	// the reference is itself covered, so clamping only guards against a
	// reference that isn't a member
	if start < 0 {
		start = 0
	}
	if end > len(a.Reference) {
		end = len(a.Reference)
	}
	if start >= end {
		return ""
	}
	return a.Reference[start:end]
}
