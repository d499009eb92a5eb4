package main

import (
	"fmt"
	"os"
	"strings"
)

// renderSummaryTable renders the summaries as a GitHub-flavored pipe table.
// The first column carries the series name under the "init file" heading, the
// rest hold one statistic each, rounded to one decimal and suffixed with "ms".
func renderSummaryTable(summaries []columnSummary) string {
	var b strings.Builder
	row := func(cells []string) {
		b.WriteString("| ")
		b.WriteString(strings.Join(cells, " | "))
		b.WriteString(" |\n")
	}

	header := append([]string{"init file"}, statNames...)
	row(header)

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	row(sep)

	for _, summary := range summaries {
		cells := make([]string, 0, len(header))
		cells = append(cells, summary.name)
		for _, v := range summary.stats.values() {
			cells = append(cells, fmt.Sprintf("%.1fms", v))
		}
		row(cells)
	}
	return b.String()
}

// writeSummaryFile renders the summary table and overwrites path with it.
func writeSummaryFile(path string, summaries []columnSummary) error {
	if err := os.WriteFile(path, []byte(renderSummaryTable(summaries)), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
