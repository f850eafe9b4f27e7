// Package cleanup provides the toggleable text transforms applied before
// export. Every transform is a pure string-to-string function and is
// idempotent; lines a transform cannot parse are passed through unchanged.
package cleanup

import (
	"strings"

	"github.com/yourorg/csvclean/internal/csvtext"
	"golang.org/x/text/unicode/norm"
)

// Options selects which transforms Clean applies.
type Options struct {
	NFKC        bool
	SmartQuotes bool
	TrimFields  bool
	RemoveEmpty bool
	RemoveDupes bool
	Delimiters  bool
}

var smartReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, // curly double quotes
	"‘", "'", "’", "'", // curly single quotes
	"…", "...", // ellipsis
	"–", "-", "—", "-", // en/em dash
)

// Clean applies the enabled transforms in fixed order: smart quotes,
// field trim, empty-row removal, duplicate removal, delimiter
// normalization. Trimming runs before dedup so whitespace-only variants
// collapse to one row.
func Clean(text string, opt Options) string {
	// 0. NFKC（オプション）
	if opt.NFKC {
		text = norm.NFKC.String(text)
	}
	// 1. スマートクォート
	if opt.SmartQuotes {
		text = FixSmartQuotes(text)
	}
	// 2. フィールドの trim
	if opt.TrimFields {
		text = TrimFields(text)
	}
	// 3. 空行
	if opt.RemoveEmpty {
		text = RemoveEmptyRows(text)
	}
	// 4. 重複行
	if opt.RemoveDupes {
		text = RemoveDuplicateRows(text)
	}
	// 5. 区切り文字
	if opt.Delimiters {
		text = csvtext.NormalizeDelimiters(text)
	}
	return text
}

// FixSmartQuotes replaces curly double and single quotes with their
// straight equivalents, the ellipsis glyph with three periods, and en/em
// dashes with hyphens.
func FixSmartQuotes(text string) string {
	return smartReplacer.Replace(text)
}

// TrimFields trims the whitespace around every field of every non-blank
// line and rejoins the fields with commas. A field that was quoted in the
// source stays quoted. Lines with an unmatched quote are kept unchanged.
func TrimFields(text string) string {
	lines := csvtext.SplitLines(text)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, unterminated := csvtext.TokenizeLine(line)
		if unterminated {
			continue
		}
		parts := make([]string, len(fields))
		for j, f := range fields {
			parts[j] = csvtext.EscapeField(strings.TrimSpace(f.Value), f.WasQuoted)
		}
		lines[i] = strings.Join(parts, ",")
	}
	return strings.Join(lines, "\n")
}

// RemoveEmptyRows drops lines whose trimmed content is empty.
func RemoveEmptyRows(text string) string {
	lines := csvtext.SplitLines(text)
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// RemoveDuplicateRows keeps the first occurrence of each line, comparing
// trimmed content but emitting the original line text. Blank lines are
// never deduplicated against each other.
func RemoveDuplicateRows(text string) string {
	lines := csvtext.SplitLines(text)
	seen := make(map[string]struct{}, len(lines))
	kept := lines[:0]
	for _, line := range lines {
		key := strings.TrimSpace(line)
		if key == "" {
			// 空行はすべて残す
			kept = append(kept, line)
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
