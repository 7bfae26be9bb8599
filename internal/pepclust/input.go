package pepclust

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/pepclust/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra Flags like "in" and "out".
type Flags struct {
	// the name of the file to read peptides from
	in string

	// the base path of the output files. <out>.cluster.csv, etc
	out string
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out string) *Flags {
	p := inputParser{}
	if out == "" {
		out = p.guessOutput(in)
	}
	return &Flags{in: in, out: out}
}

// parseCmdFlags gathers the in path and out path from a cobra cmd object.
// The mode comes from the name of the command, "overlap" or "subset".
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config, error) {
	var err error
	fs := &Flags{}
	p := inputParser{}

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else if fs.in, err = p.guessInput("."); err != nil {
			return nil, nil, err
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(fs.in)
	} else {
		fs.out = p.guessOutput(fs.out)
	}

	c := config.New()
	c.Mode = strings.ToLower(cmd.Name())
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	return fs, c, nil
}

// guessInput returns the first peptide table in dir. Is used if the user
// hasn't specified an input file.
func (p *inputParser) guessInput(dir string) (in string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := e.Name()
		if strings.Contains(name, ".cluster.") || strings.Contains(name, ".kernel.") {
			continue // our own output
		}

		switch strings.ToLower(filepath.Ext(name)) {
		case ".csv", ".tsv", ".txt":
			return filepath.Join(dir, name), nil
		}
	}

	abs, _ := filepath.Abs(dir)
	return "", fmt.Errorf("failed: no input argument set and no peptide table found in %s", abs)
}

// guessOutput gets the base output path from an input path (if no output
// path is specified). It uses the same name as the input path, without
// its extension.
func (p *inputParser) guessOutput(in string) (out string) {
	ext := filepath.Ext(in)
	switch strings.ToLower(ext) {
	case ".csv", ".tsv", ".txt", ".yaml":
		return in[0 : len(in)-len(ext)]
	}
	return in
}

// clusterPath is the cluster table's path. Tab separated input gets tab
// separated output.
func (f *Flags) clusterPath() string {
	return f.out + ".cluster" + f.tableExt()
}

// kernelPath is the kernel table's path.
func (f *Flags) kernelPath() string {
	return f.out + ".kernel" + f.tableExt()
}

// reportPath is the YAML report's path.
func (f *Flags) reportPath() string {
	return f.out + ".groups.yaml"
}

func (f *Flags) tableExt() string {
	if strings.EqualFold(filepath.Ext(f.in), ".tsv") {
		return ".tsv"
	}
	return ".csv"
}
