package table

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Report is a YAML summary of a clustering run.
type Report struct {
	// Run uniquely identifies the run
	Run string `yaml:"run"`

	// Input is the file the peptides were read from
	Input string `yaml:"input,omitempty"`

	// Mode is "overlap" or "subset"
	Mode string `yaml:"mode"`

	// MinOverlap is the overlap threshold in overlap mode
	MinOverlap int `yaml:"min_overlap,omitempty"`

	// Peptides is the number of peptides clustered
	Peptides int `yaml:"peptides"`

	// Groups are the groups found, failed or not
	Groups []ReportGroup `yaml:"groups"`
}

// ReportGroup is a group's entry in the report.
type ReportGroup struct {
	ID         int      `yaml:"id"`
	Reference  string   `yaml:"reference"`
	Members    []string `yaml:"members"`
	Alignment  string   `yaml:"alignment,omitempty"`
	Misaligned bool     `yaml:"misaligned"`
	Kernel     string   `yaml:"kernel,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

// NewReport makes a report with a fresh run ID.
func NewReport(input, mode string, minOverlap, peptides int, groups []Group) *Report {
	r := &Report{
		Run:        uuid.NewString(),
		Input:      input,
		Mode:       mode,
		MinOverlap: minOverlap,
		Peptides:   peptides,
	}

	for _, g := range groups {
		rg := ReportGroup{
			ID:         g.ID,
			Reference:  g.Reference,
			Alignment:  g.Shape,
			Misaligned: g.Misaligned,
			Kernel:     g.Kernel,
		}
		for _, m := range g.Members {
			rg.Members = append(rg.Members, m.Seq)
		}
		if g.Err != nil {
			rg.Error = g.Err.Error()
		}
		r.Groups = append(r.Groups, rg)
	}

	return r
}

// WriteReport writes the report as YAML.
func WriteReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	return enc.Close()
}
