// Package pepclust clusters peptides into groups of overlapping or nested
// sequences, aligns each group and writes out the results.
package pepclust

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jjtimmons/pepclust/config"
	"github.com/jjtimmons/pepclust/internal/align"
	"github.com/jjtimmons/pepclust/internal/cluster"
	"github.com/jjtimmons/pepclust/internal/peptide"
	"github.com/jjtimmons/pepclust/internal/relate"
	"github.com/jjtimmons/pepclust/internal/table"
	"github.com/spf13/cobra"
)

// Outcome is a group and what came of aligning it.
type Outcome struct {
	// Group is the clustered group
	Group *cluster.Group

	// Alignment is nil if the group failed to align
	Alignment *align.Alignment

	// Misaligned is whether any column of the alignment disagrees
	Misaligned bool

	// Kernel is the part of the reference every member covers
	Kernel string

	// Err is why the group failed to align
	Err error
}

// Result is the outcome of clustering a set of peptides.
type Result struct {
	// Registry holds the peptides in processing order
	Registry *peptide.Registry

	// Mode is the relation the groups were built with
	Mode relate.Mode

	// Groups in discovery order
	Groups []*Outcome

	// Warnings are input rows that were skipped
	Warnings []table.Warning
}

// Failed returns the groups that couldn't be aligned.
func (r *Result) Failed() []*Outcome {
	var failed []*Outcome
	for _, o := range r.Groups {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// ClusterCmd takes a cobra command (with its flags) and runs Cluster.
func ClusterCmd(cmd *cobra.Command, args []string) {
	flags, conf, err := parseCmdFlags(cmd, args)
	if err != nil {
		cmd.Help()
		stderr.Fatalln(err)
	}

	if _, err := Cluster(flags, conf); err != nil {
		stderr.Fatalln(err)
	}
}

// Cluster reads peptides from the input file, clusters and aligns them, and
// writes the cluster table, kernel table and YAML report.
func Cluster(flags *Flags, conf *config.Config) (*Result, error) {
	start := time.Now()

	if conf.Verbose {
		fmt.Printf("Reading peptides from %s..\n", flags.in)
	}
	records, warnings, err := table.Read(flags.in, conf.SequenceField)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		stderr.Printf("skipping row in %s: %v", flags.in, w)
	}

	res, err := Run(records, conf)
	if err != nil {
		return nil, err
	}
	res.Warnings = warnings

	if err := write(flags, conf, res); err != nil {
		return res, err
	}

	if conf.Verbose {
		fmt.Printf("%d peptides, %d groups, %d failed\n%s\n", res.Registry.Len(), len(res.Groups), len(res.Failed()), time.Since(start))
	}
	return res, nil
}

// Run clusters the records and aligns each group.
//
// A group that fails to align doesn't affect the others: it's logged, kept
// in the result with its error and left out of the tables. With
// conf.Strict the first failure ends the run instead.
func Run(records []peptide.Record, conf *config.Config) (*Result, error) {
	mode, err := relate.ParseMode(conf.Mode)
	if err != nil {
		return nil, err
	}

	reg := peptide.NewRegistry(records, conf.SortOrder(), conf.Unique)
	if err := checkFiller(reg, conf.Filler); err != nil {
		return nil, err
	}
	res := &Result{Registry: reg, Mode: mode}

	opts := relate.Options{
		Mode:       mode,
		MinOverlap: conf.MinOverlap,
		Workers:    conf.Workers,
	}
	if conf.Verbose {
		opts.Progress = func(done int) { fmt.Printf("Processed %d sequences...\n", done) }
		fmt.Println("Generating groups...")
	}
	relate.Detect(reg.Peptides, opts)

	groups, err := cluster.Build(reg, mode, conf.MinOverlap)
	if err != nil {
		return nil, err
	}

	alignOpts := conf.AlignOptions()
	for _, g := range groups {
		o := &Outcome{Group: g}
		res.Groups = append(res.Groups, o)

		if o.Alignment, o.Err = align.Align(g, alignOpts); o.Err != nil {
			if conf.Strict {
				return res, fmt.Errorf("failed to align: %w", o.Err)
			}
			stderr.Printf("skipping group: %v", o.Err)
			continue
		}

		o.Misaligned = o.Alignment.Misaligned()
		o.Kernel = o.Alignment.Kernel()
	}

	return res, nil
}

// checkFiller errors if the padding character is also a residue of any
// peptide, since padded and real cells would be indistinguishable in the tables.
func checkFiller(reg *peptide.Registry, filler string) error {
	for _, p := range reg.Peptides {
		if strings.Contains(p.Seq, filler) {
			return fmt.Errorf("filler %q occurs in peptide %s, pick another with --filler", filler, p.Seq)
		}
	}
	return nil
}

// tableGroups converts the outcomes into rows for the table writers.
func tableGroups(res *Result) []table.Group {
	groups := make([]table.Group, 0, len(res.Groups))
	for _, o := range res.Groups {
		tg := table.Group{
			ID:         o.Group.ID,
			Misaligned: o.Misaligned,
			Reference:  o.Group.Reference.Seq,
			Kernel:     o.Kernel,
			Err:        o.Err,
		}
		if o.Alignment != nil {
			tg.Shape = o.Alignment.Shape.String()
			tg.Reference = o.Alignment.Reference
		}

		for i, m := range o.Group.Members {
			tm := table.Member{
				Seq:         m.Seq,
				OtherGroups: m.OtherGroups(o.Group.ID),
				Attrs:       make(map[string]string, m.Attrs.Len()),
			}
			for _, k := range m.Attrs.Keys() {
				tm.Attrs[k], _ = m.Attrs.Get(k)
			}
			if o.Alignment != nil {
				tm.Aligned = o.Alignment.Rows[i].Aligned
			}
			tg.Members = append(tg.Members, tm)
		}

		groups = append(groups, tg)
	}
	return groups
}

// write saves the cluster table, kernel table and report.
func write(flags *Flags, conf *config.Config, res *Result) error {
	groups := tableGroups(res)

	writeTable := func(path string, fn func(f *os.File, delim rune) error) error {
		delim, err := table.DelimiterFor(path)
		if err != nil {
			return err
		}

		if conf.Verbose {
			fmt.Printf("Writing groups %s\n", path)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		if err := fn(f, delim); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return f.Close()
	}

	err := writeTable(flags.clusterPath(), func(f *os.File, delim rune) error {
		return table.WriteClusters(f, delim, res.Registry.Columns, groups)
	})
	if err != nil {
		return err
	}

	err = writeTable(flags.kernelPath(), func(f *os.File, delim rune) error {
		return table.WriteKernels(f, delim, res.Mode == relate.Subset, groups)
	})
	if err != nil {
		return err
	}

	f, err := os.Create(flags.reportPath())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", flags.reportPath(), err)
	}
	defer f.Close()

	minOverlap := conf.MinOverlap
	if res.Mode == relate.Subset {
		minOverlap = 0
	}
	report := table.NewReport(flags.in, string(res.Mode), minOverlap, res.Registry.Len(), groups)
	if err := table.WriteReport(f, report); err != nil {
		return err
	}
	return f.Close()
}
