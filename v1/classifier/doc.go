// Package classifier scores song lyrics against the go_emotions label set.
//
// Lyrics are split into chunks (see lyrics.Chunk), every chunk is scored by a
// Predictor and the per-chunk distributions are averaged into one ranked list:
//
//	c := classifier.New(cfg, hub, logger)
//	scores, err := c.Classify(ctx, text, classifier.DefaultMinScore)
//
// Two predictors exist. The ONNX predictor runs an exported sequence
// classification model in-process; it prefers a fine-tuned export found in
// Config.FineTunedDir (or in object storage) and otherwise downloads the
// public fallback model. The remote predictor calls a Hugging Face style
// text-classification endpoint.
//
// The predictor is built on first use. Concurrent first calls share one
// load, and a failed load is retried by the next call.
package classifier
