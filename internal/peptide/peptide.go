// Package peptide is for the peptides being clustered: their sequences,
// the attributes carried through from the input table, and the order
// in which the rest of the pipeline visits them.
package peptide

// Attributes is an ordered mapping from column name to value. Keys are kept
// in the order they were first set so the output tables have a stable schema.
// The zero value is ready to use.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Set stores a value, appending the key if it hasn't been seen.
func (a *Attributes) Set(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if _, seen := a.values[key]; !seen {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Get returns the value for key and whether it was set.
func (a *Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the attribute names in insertion order.
func (a *Attributes) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Len is the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Record is a single row handed to the registry by an input reader.
type Record struct {
	// Seq is the peptide's sequence
	Seq string

	// Attrs are the other fields on the row
	Attrs Attributes
}

// Peptide is a single unit of clustering.
type Peptide struct {
	// Seq is the peptide's sequence
	Seq string

	// Index is the peptide's position in the registry after sorting
	Index int

	// Overlaps are the indexes of peptides that overlap or contain/are
	// contained by this one
	Overlaps []int

	// Supersets are the indexes of peptides that contain this one
	Supersets []int

	// Subsets are the indexes of peptides contained by this one
	Subsets []int

	// Groups are the IDs of the groups this peptide has joined, in join order
	Groups []int

	// Attrs are carried from the input to the output untouched
	Attrs Attributes
}

// InGroup returns whether the peptide has already joined the group.
func (p *Peptide) InGroup(id int) bool {
	for _, g := range p.Groups {
		if g == id {
			return true
		}
	}
	return false
}

// OtherGroups returns the groups this peptide belongs to besides id.
func (p *Peptide) OtherGroups(id int) []int {
	var others []int
	for _, g := range p.Groups {
		if g != id {
			others = append(others, g)
		}
	}
	return others
}
