package csvtext

import "strings"

// detectSampleLines bounds how many non-blank lines LooksLikeCSV inspects.
const detectSampleLines = 10

// commaCountTolerance is how far a line's raw comma count may drift from
// the first valid line before the document is considered inconsistent.
const commaCountTolerance = 2

// LooksLikeCSV reports whether text is plausibly comma-separated. Empty or
// whitespace-only text counts as valid. Otherwise up to the first 10
// non-blank lines are sampled: a line counts as CSV-like when it contains
// at least one comma and tokenizes without an unterminated quote. The
// verdict is true when a comma appeared at all, more than half the sampled
// lines were CSV-like, and raw comma counts stayed within tolerance of the
// first CSV-like line. This is a heuristic gate only.
func LooksLikeCSV(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}

	var sample []string
	for _, line := range SplitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sample = append(sample, line)
		if len(sample) == detectSampleLines {
			break
		}
	}

	var (
		validLines  int
		totalCommas int
		expected    = -1
	)
	consistent := true
	for _, line := range sample {
		commas := strings.Count(line, ",")
		totalCommas += commas
		_, unterminated := TokenizeLine(line)

		if commas > 0 && !unterminated {
			validLines++
			if expected < 0 {
				expected = commas
				continue
			}
		}
		if expected >= 0 {
			switch {
			case commas == 0:
				consistent = false
			case commas-expected > commaCountTolerance,
				expected-commas > commaCountTolerance:
				consistent = false
			}
		}
	}

	return totalCommas > 0 && validLines*2 > len(sample) && consistent
}
