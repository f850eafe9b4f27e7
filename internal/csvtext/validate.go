package csvtext

import (
	"fmt"
	"strings"
)

// IssueKind classifies a validation issue.
type IssueKind string

const (
	// NotCsvFormat marks a line of a document that failed the format gate.
	// It supersedes all per-line checks.
	NotCsvFormat IssueKind = "not_csv_format"
	// ColumnMismatch marks a line whose field count differs from the
	// expected column count. A repair heuristic is always available.
	ColumnMismatch IssueKind = "column_mismatch"
	// UnmatchedQuotes marks a line with an odd number of quote characters.
	// The line is passed through verbatim.
	UnmatchedQuotes IssueKind = "unmatched_quotes"
	// InvalidFormat is the catch-all for a line that could not be
	// tokenized for any other reason.
	InvalidFormat IssueKind = "invalid_format"
)

// ValidationIssue describes one problem found in the document. It is never
// mutated after creation.
type ValidationIssue struct {
	Line     int // 1-based
	Content  string
	Kind     IssueKind
	Expected int // column counts, set for ColumnMismatch only
	Actual   int
	Message  string
}

// ValidationResult is the outcome of one full validation pass. Each pass
// produces a fresh result that supersedes the previous one wholesale.
// ExpectedColumns is 0 until the first non-blank line fixes it;
// HeaderLine is that line's 1-based number, 0 for a blank document.
type ValidationResult struct {
	RepairedText    string
	Issues          []ValidationIssue
	ExpectedColumns int
	HeaderLine      int
	IsNotCSV        bool
}

// ValidateDocument walks every line of text and collects issues alongside
// a best-effort repaired document. It never returns an error: all problems
// become issues in the result. When the format gate rejects the document,
// every non-blank line yields one NotCsvFormat issue and the text is kept
// unchanged. Otherwise the first non-blank line fixes the expected column
// count, lines with unmatched quotes pass through verbatim, and lines with
// a column mismatch are flagged and replaced by a repaired line in
// RepairedText. Repair never suppresses the diagnosis.
func ValidateDocument(text string) ValidationResult {
	if !LooksLikeCSV(text) {
		res := ValidationResult{RepairedText: text, IsNotCSV: true}
		for i, line := range SplitLines(text) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			res.Issues = append(res.Issues, ValidationIssue{
				Line:    i + 1,
				Content: line,
				Kind:    NotCsvFormat,
				Message: "text does not look like CSV",
			})
		}
		return res
	}

	var res ValidationResult
	lines := SplitLines(text)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		if strings.TrimSpace(line) == "" {
			continue
		}

		// 最初の非空行が列数の基準になる
		if res.ExpectedColumns == 0 {
			fields, _ := TokenizeLine(line)
			res.ExpectedColumns = len(fields)
			res.HeaderLine = i + 1
			continue
		}

		issue := ValidateSingleLine(line, i+1, res.ExpectedColumns)
		if issue == nil {
			continue
		}
		res.Issues = append(res.Issues, *issue)
		if issue.Kind == ColumnMismatch {
			fields, _ := TokenizeLine(line)
			out[i] = repairLine(fields, res.ExpectedColumns)
		}
	}
	res.RepairedText = strings.Join(out, "\r\n")
	return res
}

// ValidateSingleLine checks one line against a known expected column count
// and returns the issue found, or nil. It is the stateless entry point for
// callers that re-check a single edited line between full passes. Blank
// lines never produce an issue; expectedColumns 0 disables the column
// check.
func ValidateSingleLine(line string, lineNumber, expectedColumns int) *ValidationIssue {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	fields, unterminated := TokenizeLine(line)
	if unterminated {
		if strings.Count(line, `"`)%2 == 1 {
			return &ValidationIssue{
				Line:    lineNumber,
				Content: line,
				Kind:    UnmatchedQuotes,
				Message: "unmatched quote character",
			}
		}
		return &ValidationIssue{
			Line:    lineNumber,
			Content: line,
			Kind:    InvalidFormat,
			Message: "line could not be parsed as CSV",
		}
	}
	if expectedColumns > 0 && len(fields) != expectedColumns {
		return &ValidationIssue{
			Line:     lineNumber,
			Content:  line,
			Kind:     ColumnMismatch,
			Expected: expectedColumns,
			Actual:   len(fields),
			Message:  fmt.Sprintf("expected %d columns, found %d", expectedColumns, len(fields)),
		}
	}
	return nil
}

// repairLine rebuilds a line to the expected column count. Overflow fields
// are joined into the last column with ", " on the assumption that an
// unescaped delimiter split what should have been one field; this is a
// lossy best-effort guess, not data-preserving. Missing fields are padded
// with empty strings. Every field is re-escaped without force-quoting.
func repairLine(fields []Field, expected int) string {
	values := make([]string, 0, expected)
	if len(fields) > expected {
		for _, f := range fields[:expected-1] {
			values = append(values, f.Value)
		}
		overflow := make([]string, 0, len(fields)-expected+1)
		for _, f := range fields[expected-1:] {
			overflow = append(overflow, f.Value)
		}
		values = append(values, strings.Join(overflow, ", "))
	} else {
		for _, f := range fields {
			values = append(values, f.Value)
		}
		for len(values) < expected {
			values = append(values, "")
		}
	}
	for i, v := range values {
		values[i] = EscapeField(v, false)
	}
	return strings.Join(values, ",")
}
