package lyrics

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkShortLyricsSingleChunk(t *testing.T) {
	in := "I am so happy\nand joyful today\n\nla la la"

	chunks := Chunk(in, 80)

	require.Len(t, chunks, 1)
	assert.Equal(t, strings.Join(strings.Split(in, "\n"), " "), chunks[0])
}

func TestChunkRespectsWordBudget(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf("line %d has five words", i))
	}
	in := strings.Join(lines, "\n")

	chunks := Chunk(in, 12)

	require.Greater(t, len(chunks), 1)
	total := 0
	for _, c := range chunks {
		n := WordCount(c)
		assert.LessOrEqual(t, n, 12, "chunk %q", c)
		total += n
	}
	assert.Equal(t, WordCount(in), total, "no words lost")
}

func TestChunkOversizedLineStandsAlone(t *testing.T) {
	long := strings.Repeat("word ", 10)
	in := "short line\n" + long + "\nanother short line"

	chunks := Chunk(in, 5)

	require.Len(t, chunks, 3)
	assert.Equal(t, "short line", chunks[0])
	assert.Equal(t, 10, WordCount(chunks[1]))
	assert.Equal(t, "another short line", chunks[2])
}

func TestChunkStartsNewChunkWithOverflowingLine(t *testing.T) {
	chunks := Chunk("a b c\nd e\nf g h", 5)

	assert.Equal(t, []string{"a b c d e", "f g h"}, chunks)
}

func TestChunkEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "whitespace", in: "   \n\t "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Chunk(tt.in, 80)
			require.Len(t, chunks, 1)
			assert.Equal(t, "", strings.TrimSpace(chunks[0]))
		})
	}
}

func TestChunkNonPositiveBudgetUsesDefault(t *testing.T) {
	in := strings.TrimSpace(strings.Repeat("one two three four\n", 30)) // 120 words

	assert.Equal(t, Chunk(in, DefaultMaxWords), Chunk(in, 0))
	assert.Len(t, Chunk(in, -1), 2)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("  \t "))
	assert.Equal(t, 3, WordCount(" a\tb  c "))
}
