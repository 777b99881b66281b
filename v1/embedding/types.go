package embedding

import "context"

// Encoder computes the raw embedding of one text.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	Dimension() int
	ModelID() string
}

// Cache stores vectors by model and text. Get reports a miss with ok=false
// and a nil error.
type Cache interface {
	Get(ctx context.Context, model, text string) (vec []float32, ok bool, err error)
	Set(ctx context.Context, model, text string, vec []float32) error
}
