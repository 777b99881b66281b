package lyrics

import "strings"

// DefaultMaxWords is the default word budget of a chunk.
const DefaultMaxWords = 80

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// Chunk splits lyrics on line boundaries into chunks of at most maxWords
// words. Lines are accumulated until the next one would exceed the budget,
// then a new chunk starts with that line; a single line longer than the
// budget becomes its own chunk. Lines inside a chunk are joined with a single
// space. When no chunk is produced the original text is returned as the only
// chunk, so the result is never empty. A non-positive maxWords uses
// DefaultMaxWords.
func Chunk(lyrics string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	lines := strings.Split(strings.TrimSpace(lyrics), "\n")

	var (
		chunks     []string
		current    []string
		currentLen int
	)
	for _, line := range lines {
		n := WordCount(line)
		if currentLen+n > maxWords {
			if len(current) > 0 {
				chunks = append(chunks, strings.Join(current, " "))
			}
			current, currentLen = []string{line}, n
			continue
		}
		current = append(current, line)
		currentLen += n
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	if len(chunks) == 0 {
		return []string{lyrics}
	}
	return chunks
}
