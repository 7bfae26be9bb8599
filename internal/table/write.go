package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// Member is a single peptide's row in the cluster table.
type Member struct {
	// Seq is the peptide's sequence
	Seq string

	// OtherGroups are the IDs of the other groups the peptide is in
	OtherGroups []int

	// Attrs are the peptide's carried-through columns
	Attrs map[string]string

	// Aligned is the peptide's padded sequence within this group
	Aligned string
}

// Group is a single group's results, ready to write.
type Group struct {
	// ID of the group
	ID int

	// Shape is the alignment shape's name
	Shape string

	// Misaligned is whether any alignment column disagrees
	Misaligned bool

	// Reference is the sequence the group was aligned against
	Reference string

	// Kernel is the part of the reference every member covers
	Kernel string

	// Members in join order
	Members []Member

	// Err is set if the group couldn't be aligned
	Err error
}

// DelimiterFor returns the delimiter to write a table with, based on the
// file's extension.
func DelimiterFor(path string) (rune, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ',', nil
	case ".tsv", ".txt":
		return '\t', nil
	}
	return 0, fmt.Errorf("failed to recognize the extension of %s, expected .csv, .tsv or .txt", path)
}

// WriteClusters writes a row per group member and a closing row per group.
// Member rows have the group's ID, the member's other groups, the shape,
// whether it's consistent, the sequence, each of columns, a blank spacer
// and then the aligned sequence one character per column. Groups that
// couldn't be aligned are left out.
func WriteClusters(w io.Writer, delim rune, columns []string, groups []Group) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	header := append([]string{"group", "other_groups", "align", "consistent", "sequence"}, columns...)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, g := range groups {
		if g.Err != nil {
			continue
		}

		id := strconv.Itoa(g.ID)
		consistent := titleBool(!g.Misaligned)
		for _, m := range g.Members {
			others := make([]string, 0, len(m.OtherGroups))
			for _, o := range m.OtherGroups {
				others = append(others, strconv.Itoa(o))
			}

			row := []string{id, strings.Join(others, ";"), g.Shape, consistent, m.Seq}
			for _, c := range columns {
				row = append(row, m.Attrs[c])
			}
			row = append(row, " ")
			for _, c := range m.Aligned {
				row = append(row, string(c))
			}

			if err := cw.Write(row); err != nil {
				return err
			}
		}

		if err := cw.Write([]string{id, "", g.Shape, consistent}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteKernels writes a row per group. In overlap mode that's the ID, size
// and kernel. In subset mode it's the ID, size, shape and reference sequence.
func WriteKernels(w io.Writer, delim rune, subset bool, groups []Group) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	header := []string{"group", "size_group", "sequence"}
	if subset {
		header = []string{"group", "size_group", "alignment", "sequence"}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, g := range groups {
		if g.Err != nil {
			continue
		}

		row := []string{strconv.Itoa(g.ID), strconv.Itoa(len(g.Members))}
		if subset {
			row = append(row, g.Shape, g.Reference)
		} else {
			row = append(row, g.Kernel)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// titleBool spells b as "True" or "False", as existing cluster tables do.
func titleBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
