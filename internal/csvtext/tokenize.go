// Package csvtext implements the line-oriented CSV core: tokenizing,
// escaping, delimiter normalization, format detection and structural
// validation with best-effort repair. All functions are pure; nothing in
// this package keeps state between calls.
package csvtext

import "strings"

// Field is one comma-delimited value within a line. WasQuoted records
// whether the source text quoted the field, independent of whether quoting
// was required, so re-serialization can preserve the original style.
type Field struct {
	Value     string
	WasQuoted bool
}

// TokenizeLine splits one line into fields with a single left-to-right
// scan. A doubled quote inside a quoted region becomes one literal quote.
// The final field is always emitted, so even an empty line yields one
// empty field. TokenizeLine never fails; an unmatched quote simply leaves
// the scan inside a quoted region at end of line, reported via
// unterminated. Quote state does not carry across lines.
func TokenizeLine(line string) (fields []Field, unterminated bool) {
	var (
		buf      strings.Builder
		quoted   bool
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// "" → リテラルの "
				buf.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
				quoted = true
			}
		case c == ',' && !inQuotes:
			fields = append(fields, Field{Value: buf.String(), WasQuoted: quoted})
			buf.Reset()
			quoted = false
		default:
			buf.WriteByte(c)
		}
	}
	fields = append(fields, Field{Value: buf.String(), WasQuoted: quoted})
	return fields, inQuotes
}

// SplitLines splits text on \r?\n line breaks. A lone \r is treated as
// field content, not a line break.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
