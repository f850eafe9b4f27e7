package csvtext

import "strings"

// DefaultPreviewRows is header plus five data rows.
const DefaultPreviewRows = 6

// Stats holds row and column counts for a document.
type Stats struct {
	Rows    int // non-blank lines
	Columns int // field count of the first non-blank line
}

// ComputeStats returns row and column counts, or nil for blank input.
// When the first non-blank line cannot be tokenized the column count falls
// back to its raw comma count plus one.
func ComputeStats(text string) *Stats {
	var s Stats
	for _, line := range SplitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if s.Rows == 0 {
			fields, unterminated := TokenizeLine(line)
			if unterminated {
				s.Columns = strings.Count(line, ",") + 1
			} else {
				s.Columns = len(fields)
			}
		}
		s.Rows++
	}
	if s.Rows == 0 {
		return nil
	}
	return &s
}

// ComputePreview tokenizes up to the first maxRows non-blank lines into a
// grid of raw field values for read-only display. maxRows <= 0 falls back
// to DefaultPreviewRows. A line that cannot be tokenized degrades to a
// naive comma split for that line only.
func ComputePreview(text string, maxRows int) [][]string {
	if maxRows <= 0 {
		maxRows = DefaultPreviewRows
	}
	var grid [][]string
	for _, line := range SplitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, unterminated := TokenizeLine(line)
		if unterminated {
			grid = append(grid, strings.Split(line, ","))
		} else {
			row := make([]string, len(fields))
			for i, f := range fields {
				row[i] = f.Value
			}
			grid = append(grid, row)
		}
		if len(grid) == maxRows {
			break
		}
	}
	return grid
}
