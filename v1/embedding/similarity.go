package embedding

import (
	"math"
	"sort"

	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/library"
)

// CosineSimilarity returns dot(a, b) / (|a| * |b|). It is 0 when the lengths
// differ or either vector has zero norm.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Rank scores every song that has an embedding against query and returns
// the topK most similar, best first. Equal similarities keep library order.
// A non-positive topK uses DefaultTopK.
func Rank(query []float32, songs []library.SongRecord, topK int) []library.SimilarSong {
	if topK <= 0 {
		topK = DefaultTopK
	}

	results := make([]library.SimilarSong, 0, len(songs))
	for _, song := range songs {
		if !song.HasEmbedding() {
			continue
		}
		emotions := song.Emotions
		if emotions == nil {
			emotions = []classifier.EmotionScore{}
		}
		results = append(results, library.SimilarSong{
			Artist:     song.Artist,
			Title:      song.Title,
			Emotions:   emotions,
			Similarity: classifier.Round4(CosineSimilarity(query, song.Embedding)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}
