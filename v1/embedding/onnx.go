package embedding

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pulsesearch/lyricml/v1/inference"
)

const hiddenStateOutput = "last_hidden_state"

var onnxFiles = []string{"onnx/model.onnx", "tokenizer.json"}

// onnxEncoder mean-pools the token embeddings of a sentence-transformers export.
type onnxEncoder struct {
	model     string
	session   *inference.Session
	dimension int
}

func newONNXEncoder(model, dir string, maxLength, dimension int) (*onnxEncoder, error) {
	sess, err := inference.NewSession(inference.SessionConfig{
		ModelPath:     filepath.Join(dir, filepath.FromSlash(onnxFiles[0])),
		TokenizerPath: filepath.Join(dir, filepath.FromSlash(onnxFiles[1])),
		OutputName:    hiddenStateOutput,
		MaxLength:     maxLength,
	})
	if err != nil {
		return nil, err
	}
	return &onnxEncoder{model: model, session: sess, dimension: dimension}, nil
}

func (e *onnxEncoder) Dimension() int  { return e.dimension }
func (e *onnxEncoder) ModelID() string { return e.model }

func (e *onnxEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	enc, err := e.session.Tokenize(text)
	if err != nil {
		return nil, err
	}
	hidden, shape, err := e.session.Run(enc)
	if err != nil {
		return nil, err
	}
	if len(shape) != 3 || shape[0] != 1 {
		return nil, fmt.Errorf("unexpected %s shape %v", hiddenStateOutput, shape)
	}
	seqLen, dim := int(shape[1]), int(shape[2])
	return inference.MeanPool(hidden, seqLen, dim, enc.Mask), nil
}

func (e *onnxEncoder) Close() error {
	return e.session.Close()
}
