package relate

import (
	"runtime"
	"sync"

	"github.com/jjtimmons/pepclust/internal/peptide"
)

// Options configure relation detection.
type Options struct {
	// Mode is the relation to detect
	Mode Mode

	// MinOverlap is the minimum suffix/prefix overlap in Overlap mode
	MinOverlap int

	// Workers is the number of goroutines the pairs are spread over
	Workers int

	// Progress, if set, is called with the number of rows merged so far
	// every 50 rows
	Progress func(done int)
}

// Detect fills each peptide's partner lists. In Overlap mode that's Overlaps,
// in Subset mode it's Supersets and Subsets. Every partner list is in
// ascending index order, regardless of how many workers are used.
//
// Rows of the pair matrix are computed concurrently since they only read
// sequences. They're merged into the peptides on a single goroutine.
func Detect(peptides []*peptide.Peptide, opts Options) {
	n := len(peptides)
	if n == 0 {
		return
	}

	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}

	// rows[i] are the partners j of peptide i that it's related to
	// (j > i in Overlap mode, j != i in Subset mode)
	rows := make([][]int, n)
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				rows[i] = row(peptides, i, opts)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, js := range rows {
		if opts.Progress != nil && i%50 == 0 {
			opts.Progress(i)
		}

		for _, j := range js {
			switch opts.Mode {
			case Subset:
				peptides[i].Supersets = append(peptides[i].Supersets, j)
				peptides[j].Subsets = append(peptides[j].Subsets, i)
			default:
				peptides[i].Overlaps = append(peptides[i].Overlaps, j)
				peptides[j].Overlaps = append(peptides[j].Overlaps, i)
			}
		}
	}
}

// row tests peptide i against the peptides it's responsible for.
func row(peptides []*peptide.Peptide, i int, opts Options) (partners []int) {
	seq := peptides[i].Seq

	if opts.Mode == Subset {
		for j, other := range peptides {
			if j != i && Contains(seq, other.Seq) {
				partners = append(partners, j)
			}
		}
		return
	}

	for j := i + 1; j < len(peptides); j++ {
		if Overlaps(seq, peptides[j].Seq, opts.MinOverlap) {
			partners = append(partners, j)
		}
	}
	return
}
