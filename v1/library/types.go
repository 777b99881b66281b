package library

import "github.com/pulsesearch/lyricml/v1/classifier"

// SongRecord is one analyzed song of the library.
type SongRecord struct {
	Artist    string                    `json:"artist"`
	Title     string                    `json:"title"`
	Emotions  []classifier.EmotionScore `json:"emotions,omitempty"`
	Embedding []float32                 `json:"embedding,omitempty"`
}

// HasEmbedding reports whether the record can be ranked.
func (r SongRecord) HasEmbedding() bool {
	return len(r.Embedding) > 0
}

// SimilarSong is a ranked similarity search hit.
type SimilarSong struct {
	Artist     string                    `json:"artist"`
	Title      string                    `json:"title"`
	Emotions   []classifier.EmotionScore `json:"emotions"`
	Similarity float64                   `json:"similarity"`
}
