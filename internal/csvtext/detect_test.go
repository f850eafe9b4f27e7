package csvtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeCSVBlank(t *testing.T) {
	assert.True(t, LooksLikeCSV(""))
	assert.True(t, LooksLikeCSV("  \n\t\n"))
}

func TestLooksLikeCSVPlainProse(t *testing.T) {
	assert.False(t, LooksLikeCSV("hello world\nfoo bar"))
}

func TestLooksLikeCSVSimple(t *testing.T) {
	assert.True(t, LooksLikeCSV("a,b,c\n1,2,3\n4,5,6"))
	assert.True(t, LooksLikeCSV("name,age\njohn,30"))
}

func TestLooksLikeCSVCommalessLineAfterHeader(t *testing.T) {
	assert.False(t, LooksLikeCSV("a,b\nno commas here\nneither here"))
}

func TestLooksLikeCSVInconsistentCounts(t *testing.T) {
	assert.False(t, LooksLikeCSV("a,b\n1,2,3,4,5,6"))
	// ±2 までは許容
	assert.True(t, LooksLikeCSV("a,b\n1,2,3,4"))
}

func TestLooksLikeCSVSamplesFirstTenLines(t *testing.T) {
	text := "a,b\n1,2\n3,4\n5,6\n7,8\n9,10\n11,12\n13,14\n15,16\n17,18\n"
	// 11 行目以降は見ない
	text += "garbage without commas\nmore garbage"
	assert.True(t, LooksLikeCSV(text))
}
