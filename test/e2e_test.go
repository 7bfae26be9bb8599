package test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jjtimmons/pepclust/config"
	"github.com/jjtimmons/pepclust/internal/pepclust"
)

func conf(mode string) *config.Config {
	return &config.Config{
		MinOverlap:    6,
		Mode:          mode,
		SequenceField: "Sequence",
		Filler:        ".",
		Reference:     "seed",
		Order:         []string{"length", "sequence"},
		Workers:       4,
	}
}

func read(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func Test_Cluster(t *testing.T) {
	type testFlags struct {
		in          string
		mode        string
		wantGroups  int
		wantKernels string
	}

	tests := []testFlags{
		{
			filepath.Join("input", "peptides.csv"),
			"overlap",
			3,
			"group,size_group,sequence\n0,1,SIINFEKL\n1,3,AVHAAHAEINE\n2,4,CELAAAMK\n",
		},
		{
			filepath.Join("input", "peptides.txt"),
			"overlap",
			3,
			"group,size_group,sequence\n0,1,SIINFEKL\n1,3,AVHAAHAEINE\n2,4,CELAAAMK\n",
		},
		{
			filepath.Join("input", "peptides.csv"),
			"subset",
			6,
			"group,size_group,alignment,sequence\n" +
				"0,1,Single,SIINFEKL\n" +
				"1,3,Mixed-aligned,AVHAAHAEINE\n" +
				"2,1,Single,KVFGRCELAAAMK\n" +
				"3,1,Single,VFGRCELAAAMKR\n" +
				"4,1,Single,CELAAAMKRHGLDN\n" +
				"5,1,Single,GRCELAAAMKRHGL\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.mode+" "+filepath.Base(tt.in), func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "peptides")
			flags := pepclust.NewFlags(tt.in, out)

			res, err := pepclust.Cluster(flags, conf(tt.mode))
			if err != nil {
				t.Fatal(err)
			}

			if len(res.Groups) != tt.wantGroups {
				t.Errorf("Cluster() found %d groups, want %d", len(res.Groups), tt.wantGroups)
			}
			if orphans := res.Registry.Orphans(); len(orphans) > 0 {
				t.Errorf("Cluster() left %d peptides without a group", len(orphans))
			}
			if failed := res.Failed(); len(failed) > 0 {
				t.Errorf("Cluster() failed to align %d groups: %v", len(failed), failed[0].Err)
			}

			if kernels := read(t, out+".kernel.csv"); kernels != tt.wantKernels {
				t.Errorf("kernel table = %q, want %q", kernels, tt.wantKernels)
			}

			// AVHAAHAEINE's group is aligned the same way in both modes
			clusters := read(t, out+".cluster.csv")
			if !strings.Contains(clusters, `,QAVHAAHAEINEAGREV,`) || !strings.Contains(clusters, `" ",.,.,Q,A,V,H,A,A,H,A,E,I,N,E,A,G,R,E,V`) {
				t.Errorf("cluster table is missing the aligned QAVHAAHAEINEAGREV row:\n%s", clusters)
			}

			if _, err := os.Stat(out + ".groups.yaml"); err != nil {
				t.Errorf("no report written: %v", err)
			}
		})
	}
}
