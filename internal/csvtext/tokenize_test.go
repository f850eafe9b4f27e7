package csvtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Value
	}
	return out
}

func TestTokenizeLinePlain(t *testing.T) {
	// クォートなしの行は strings.Split と等価
	for _, line := range []string{"a,b,c", "1,2", "x", "a,,c", ",", ""} {
		fields, unterminated := TokenizeLine(line)
		require.False(t, unterminated, "line %q", line)
		assert.Equal(t, strings.Split(line, ","), values(fields), "line %q", line)
		for _, f := range fields {
			assert.False(t, f.WasQuoted)
		}
	}
}

func TestTokenizeLineEmpty(t *testing.T) {
	fields, unterminated := TokenizeLine("")
	require.False(t, unterminated)
	require.Len(t, fields, 1)
	assert.Equal(t, "", fields[0].Value)
}

func TestTokenizeLineEscapedQuote(t *testing.T) {
	fields, unterminated := TokenizeLine(`a,"b""c",d`)
	require.False(t, unterminated)
	require.Len(t, fields, 3)
	assert.Equal(t, []string{"a", `b"c`, "d"}, values(fields))
	assert.False(t, fields[0].WasQuoted)
	assert.True(t, fields[1].WasQuoted)
	assert.False(t, fields[2].WasQuoted)
}

func TestTokenizeLineQuotedComma(t *testing.T) {
	fields, unterminated := TokenizeLine(`a,"b,c",d`)
	require.False(t, unterminated)
	assert.Equal(t, []string{"a", "b,c", "d"}, values(fields))
}

func TestTokenizeLineQuoteMidField(t *testing.T) {
	// クォートはフィールド先頭以外でも wasQuoted になる
	fields, unterminated := TokenizeLine(`ab"cd"ef,g`)
	require.False(t, unterminated)
	assert.Equal(t, []string{"abcdef", "g"}, values(fields))
	assert.True(t, fields[0].WasQuoted)
}

func TestTokenizeLineUnterminated(t *testing.T) {
	fields, unterminated := TokenizeLine(`a,"b,c`)
	assert.True(t, unterminated)
	// カンマはクォート内扱いで分割されない
	assert.Equal(t, []string{"a", "b,c"}, values(fields))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitLines("a\r\nb\nc"))
	assert.Equal(t, []string{""}, SplitLines(""))
	// 単独の \r は行区切りではない
	assert.Equal(t, []string{"a\rb"}, SplitLines("a\rb"))
}
