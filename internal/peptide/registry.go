package peptide

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a single sort key used to order the registry.
type Key string

const (
	// Length orders shorter sequences first
	Length Key = "length"

	// Lexical orders sequences alphabetically
	Lexical Key = "sequence"
)

// Order is a list of sort keys, most significant first.
type Order []Key

// DefaultOrder sorts by length and breaks ties alphabetically.
var DefaultOrder = Order{Length, Lexical}

// ParseOrder turns a list of key names into an Order. An empty list
// is the DefaultOrder.
func ParseOrder(names []string) (Order, error) {
	if len(names) == 0 {
		return DefaultOrder, nil
	}

	order := make(Order, 0, len(names))
	for _, n := range names {
		switch k := Key(strings.ToLower(strings.TrimSpace(n))); k {
		case Length, Lexical:
			order = append(order, k)
		default:
			return nil, fmt.Errorf("unknown sort key %q, expected %q or %q", n, Length, Lexical)
		}
	}
	return order, nil
}

// Less reports whether a sorts before b.
func (o Order) Less(a, b string) bool {
	for _, k := range o {
		switch k {
		case Length:
			if len(a) != len(b) {
				return len(a) < len(b)
			}
		case Lexical:
			if a != b {
				return a < b
			}
		}
	}
	return false
}

// Registry is the ordered set of peptides being clustered.
type Registry struct {
	// Peptides in processing order. Peptides[i].Index == i
	Peptides []*Peptide

	// Columns is the union of attribute names across all records, in the
	// order they were first seen
	Columns []string
}

// NewRegistry creates peptides from records, sorts them and assigns
// each its index. Sorting is stable so records with equal keys keep
// their input order. If unique is set, only the first record of each
// distinct sequence is kept.
func NewRegistry(records []Record, order Order, unique bool) *Registry {
	if len(order) == 0 {
		order = DefaultOrder
	}

	reg := &Registry{}
	seenCols := make(map[string]bool)
	seenSeqs := make(map[string]bool)
	for _, r := range records {
		if unique && seenSeqs[r.Seq] {
			continue
		}
		seenSeqs[r.Seq] = true

		for _, k := range r.Attrs.Keys() {
			if !seenCols[k] {
				seenCols[k] = true
				reg.Columns = append(reg.Columns, k)
			}
		}

		reg.Peptides = append(reg.Peptides, &Peptide{
			Seq:   r.Seq,
			Attrs: r.Attrs,
		})
	}

	sort.SliceStable(reg.Peptides, func(i, j int) bool {
		return order.Less(reg.Peptides[i].Seq, reg.Peptides[j].Seq)
	})
	for i, p := range reg.Peptides {
		p.Index = i
	}

	return reg
}

// Len is the number of peptides in the registry.
func (r *Registry) Len() int {
	return len(r.Peptides)
}

// Orphans returns peptides that haven't joined any group.
func (r *Registry) Orphans() []*Peptide {
	var orphans []*Peptide
	for _, p := range r.Peptides {
		if len(p.Groups) == 0 {
			orphans = append(orphans, p)
		}
	}
	return orphans
}
