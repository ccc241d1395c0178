// Package input turns puzzle text into grid rows: it splits on line
// breaks, trims trailing whitespace from every line and drops blank lines
// before the first and after the last row.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// maxLineSize bounds a single row; bufio's 64 KiB default is too small
// for generated grids.
const maxLineSize = 16 << 20

// ReadRows reads rows from r.
func ReadRows(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var rows []string
	for sc.Scan() {
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if line == "" && len(rows) == 0 {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading rows: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// ReadFile reads rows from the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()
	return ReadRows(f)
}
