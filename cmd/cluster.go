package cmd

import (
	"github.com/jjtimmons/pepclust/internal/pepclust"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	inHelp = `input peptide table (.csv or .tsv with a header row) or .txt file of
whitespace separated sequences. Defaults to the first table in the current directory.`

	outHelp = `base path of the output files. Writes <out>.cluster.csv, <out>.kernel.csv
and <out>.groups.yaml. Defaults to the input path without its extension.`

	orderHelp = `sort keys for the order peptides are processed in, most significant first.
Groups depend on this order.`
)

// clusterCmd is the parent of the two ways of grouping peptides
var clusterCmd = &cobra.Command{
	Use:                        "cluster",
	Short:                      "Cluster peptides by overlap or containment",
	SuggestionsMinimumDistance: 3,
	Long: `Sort peptides into groups, align the members of each group, flag groups whose
aligned columns disagree, and write a cluster table, kernel table and YAML report.`,
	Aliases: []string{"group"},
}

// overlapCmd groups peptides that all overlap one another
var overlapCmd = &cobra.Command{
	Use:                        "overlap [input]",
	Short:                      "Group peptides that overlap every other member",
	Run:                        pepclust.ClusterCmd,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.MaximumNArgs(1),
	Long: `Group peptides whose ends overlap by at least --min-overlap residues, or that
contain one another. A peptide joins a group only if it overlaps every peptide
already in it, so a peptide may be in more than one group.

The kernel table has the stretch of each group's reference sequence covered by
every member.`,
	Example: "  pepclust cluster overlap peptides.csv --min-overlap 6",
}

// subsetCmd groups peptides that contain a shorter seed peptide
var subsetCmd = &cobra.Command{
	Use:                        "subset [input]",
	Short:                      "Group peptides that contain a shorter peptide",
	Run:                        pepclust.ClusterCmd,
	SuggestionsMinimumDistance: 2,
	Args:                       cobra.MaximumNArgs(1),
	Long: `Group peptides around a seed, with every peptide that contains the seed's
sequence joining its group.

The kernel table has each group's alignment shape and seed sequence.`,
	Aliases: []string{"subsets", "nested"},
	Example: "  pepclust cluster subset peptides.txt",
}

// set flags
func init() {
	clusterCmd.PersistentFlags().StringP("in", "i", "", inHelp)
	clusterCmd.PersistentFlags().StringP("out", "o", "", outHelp)
	clusterCmd.PersistentFlags().IntP("min-overlap", "m", 6, "minimum overlap between the ends of two peptides")
	clusterCmd.PersistentFlags().StringP("sequence-field", "f", "Sequence", "name of the input column with the peptide sequences")
	clusterCmd.PersistentFlags().StringP("filler", "l", ".", "character aligned sequences are padded with")
	clusterCmd.PersistentFlags().StringP("reference", "r", "seed", "sequence to align against: 'seed' or 'shortest'")
	clusterCmd.PersistentFlags().StringSlice("order", []string{"length", "sequence"}, orderHelp)
	clusterCmd.PersistentFlags().BoolP("unique", "u", false, "collapse peptides with identical sequences")
	clusterCmd.PersistentFlags().IntP("workers", "w", 0, "goroutines used to find overlaps (default # of CPUs)")
	clusterCmd.PersistentFlags().Bool("strict", false, "stop at the first group that can't be aligned")

	for _, name := range []string{"min-overlap", "sequence-field", "filler", "reference", "order", "unique", "workers", "strict"} {
		viper.BindPFlag(name, clusterCmd.PersistentFlags().Lookup(name))
	}

	clusterCmd.AddCommand(overlapCmd)
	clusterCmd.AddCommand(subsetCmd)

	// settings is an optional parameter for a settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file (YAML)")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log progress to stdout")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))

	RootCmd.AddCommand(clusterCmd)
}
