package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/library"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{0.3, 0.4, 0.5}, []float32{0.3, 0.4, 0.5}, 1},
		{"scaled", []float32{1, 2}, []float32{2, 4}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
		{"empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-6)
		})
	}
}

// unitAt returns a 2-d unit vector whose cosine with [1, 0] is s.
func unitAt(s float64) []float32 {
	return []float32{float32(s), float32(math.Sqrt(1 - s*s))}
}

func TestRank(t *testing.T) {
	songs := []library.SongRecord{
		{Artist: "C", Title: "low", Embedding: unitAt(0.1)},
		{Artist: "A", Title: "high", Embedding: unitAt(0.9), Emotions: []classifier.EmotionScore{{Label: "joy", Score: 0.7}}},
		{Artist: "X", Title: "no vector"},
		{Artist: "B", Title: "mid", Embedding: unitAt(0.5)},
	}

	got := Rank([]float32{1, 0}, songs, 2)

	require.Len(t, got, 2)
	assert.Equal(t, library.SimilarSong{
		Artist: "A", Title: "high",
		Emotions:   []classifier.EmotionScore{{Label: "joy", Score: 0.7}},
		Similarity: 0.9,
	}, got[0])
	assert.Equal(t, "mid", got[1].Title)
	assert.Equal(t, 0.5, got[1].Similarity)
	assert.NotNil(t, got[1].Emotions)
	assert.Empty(t, got[1].Emotions)
}

func TestRankDefaultsAndEdgeCases(t *testing.T) {
	var songs []library.SongRecord
	for i := 0; i < 8; i++ {
		songs = append(songs, library.SongRecord{Title: string(rune('a' + i)), Embedding: []float32{1, 0}})
	}

	got := Rank([]float32{1, 0}, songs, 0)
	require.Len(t, got, DefaultTopK)
	// Ties keep library order.
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, "e", got[4].Title)

	assert.Empty(t, Rank([]float32{1, 0}, nil, 3))
	assert.Len(t, Rank([]float32{1, 0}, songs[:2], 10), 2)
}

func TestRankRoundsExactTiesToEven(t *testing.T) {
	// 9/32 = 0.28125 exactly.
	songs := []library.SongRecord{{Artist: "A", Title: "tie", Embedding: []float32{9, 30, 5, 3, 3}}}

	got := Rank([]float32{1, 0, 0, 0, 0}, songs, 1)

	require.Len(t, got, 1)
	assert.Equal(t, 0.2812, got[0].Similarity)
}
