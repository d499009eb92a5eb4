package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	errNoHeader        = errors.New("csv file has no header row")
	errNoDataRows      = errors.New("csv file has no data rows")
	errDuplicateHeader = errors.New("duplicate column name in header")
)

// column is one named series of samples, in header order.
type column struct {
	name    string
	samples []float64
}

// readCSVColumns loads a CSV file whose first row names the measured series
// and whose remaining rows hold one numeric sample per series. Every row must
// have as many cells as the header.
func readCSVColumns(path string) ([]column, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]column, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", errDuplicateHeader, name)
		}
		seen[name] = true
		cols[i].name = name
	}

	for row := 2; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", row, cols[i].name, err)
			}
			cols[i].samples = append(cols[i].samples, v)
		}
	}

	if len(cols[0].samples) == 0 {
		return nil, errNoDataRows
	}
	return cols, nil
}
