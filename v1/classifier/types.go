package classifier

import "context"

// EmotionScore is one label with its probability.
type EmotionScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Predictor scores text chunks. Predict returns, for every chunk, the score
// of every label the model knows.
//
//go:generate mockgen -source=types.go -destination=mock_predictor.go -package=classifier
type Predictor interface {
	Predict(ctx context.Context, chunks []string) ([][]EmotionScore, error)
	Name() string
}
