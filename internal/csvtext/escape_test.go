package csvtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeFieldIdentity(t *testing.T) {
	for _, v := range []string{"", "abc", "no special chars", "123"} {
		assert.Equal(t, v, EscapeField(v, false))
	}
}

func TestEscapeFieldSpecials(t *testing.T) {
	assert.Equal(t, `"a,b"`, EscapeField("a,b", false))
	assert.Equal(t, `"a""b"`, EscapeField(`a"b`, false))
	assert.Equal(t, "\"a\nb\"", EscapeField("a\nb", false))
	assert.Equal(t, `"x"`, EscapeField("x", true))
	assert.Equal(t, `""`, EscapeField("", true))
}

func TestEscapeFieldRoundTrip(t *testing.T) {
	for _, v := range []string{`a"b`, "a,b", `he said ""`, "plain"} {
		fields, unterminated := TokenizeLine(EscapeField(v, false))
		require.False(t, unterminated)
		require.Len(t, fields, 1)
		assert.Equal(t, v, fields[0].Value)
	}
}
