// Package table reads peptide records from delimited or plain text files
// and writes cluster results back out as delimited tables and a YAML report.
package table

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/pepclust/internal/peptide"
)

// ErrMissingField is the cause of a Warning for a row without a sequence.
var ErrMissingField = errors.New("missing required field")

// Warning is a row that was skipped while reading.
type Warning struct {
	// Line is the 1-based line of the skipped row
	Line int

	// Err is why it was skipped
	Err error
}

func (w Warning) Error() string {
	return fmt.Sprintf("line %d: %v", w.Line, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}

// Read reads records from the file at path. ".txt" files are read as
// whitespace separated sequences, anything else as a delimited table with
// a header row and the sequence in column field.
func Read(path, field string) ([]peptide.Record, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".txt") {
		records, err := ReadText(f)
		return records, nil, err
	}
	return ReadDelimited(f, field)
}

// ReadText reads whitespace separated sequences. The records have no attributes.
func ReadText(r io.Reader) ([]peptide.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var records []peptide.Record
	for scanner.Scan() {
		records = append(records, peptide.Record{Seq: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sequences: %w", err)
	}
	return records, nil
}

// ReadDelimited reads a table whose delimiter is guessed from the header row.
// Every column but field becomes an attribute. Rows with no value in field
// are skipped and returned as warnings.
func ReadDelimited(r io.Reader, field string) ([]peptide.Record, []Warning, error) {
	br := bufio.NewReader(r)
	first, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(first) == 0 {
		return nil, nil, nil
	}

	cr := csv.NewReader(br)
	cr.Comma = GuessDelimiter(string(first))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var (
		records  []peptide.Record
		warnings []Warning
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := cr.FieldPos(0)

		var rec peptide.Record
		found := false
		for i, name := range header {
			if i >= len(row) {
				break
			}
			if name == field {
				rec.Seq = strings.TrimSpace(row[i])
				found = rec.Seq != ""
				continue
			}
			rec.Attrs.Set(name, row[i])
		}

		if !found {
			warnings = append(warnings, Warning{
				Line: line,
				Err:  fmt.Errorf("%w %q", ErrMissingField, field),
			})
			continue
		}
		records = append(records, rec)
	}

	return records, warnings, nil
}

// GuessDelimiter picks tab or comma from the first line of a table, preferring
// tab. A line with neither is a single column table and gets a comma.
func GuessDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}

	if strings.Contains(line, "\t") {
		return '\t'
	}
	return ','
}
