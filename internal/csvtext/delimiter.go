package csvtext

import "strings"

// NormalizeDelimiters rewrites unquoted tab and semicolon characters to
// commas, line by line, and rejoins with \r\n. Quoted content is copied
// verbatim, including tabs, semicolons and commas. Quote state resets at
// every line boundary.
func NormalizeDelimiters(text string) string {
	lines := SplitLines(text)
	for i, line := range lines {
		lines[i] = normalizeLineDelimiters(line)
	}
	return strings.Join(lines, "\r\n")
}

func normalizeLineDelimiters(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				// エスケープされた "" は状態を変えずにそのままコピー
				b.WriteString(`""`)
				i++
				continue
			}
			inQuotes = !inQuotes
			b.WriteByte(c)
		case !inQuotes && (c == '\t' || c == ';'):
			b.WriteByte(',')
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
