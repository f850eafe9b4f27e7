package csvtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDelimitersUnquoted(t *testing.T) {
	assert.Equal(t, "a,b,c", NormalizeDelimiters("a\tb;c"))
	assert.Equal(t, "a,b\r\nc,d", NormalizeDelimiters("a\tb\nc;d"))
}

func TestNormalizeDelimitersQuotedPreserved(t *testing.T) {
	assert.Equal(t, "a,\"b\tc\",d", NormalizeDelimiters("a,\"b\tc\",d"))
	assert.Equal(t, `a,"b;c",d`, NormalizeDelimiters(`a,"b;c",d`))
}

func TestNormalizeDelimitersEscapedQuote(t *testing.T) {
	// "" はクォート状態を変えない
	assert.Equal(t, "\"x\"\"y\",z", NormalizeDelimiters("\"x\"\"y\"\tz"))
}

func TestNormalizeDelimitersLineBoundaryResets(t *testing.T) {
	// 前の行の閉じ忘れクォートは次の行に持ち越さない
	assert.Equal(t, "\"a\tb\r\nc,d", NormalizeDelimiters("\"a\tb\nc\td"))
}
