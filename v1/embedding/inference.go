package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// InferenceEncoder calls an OpenAI-compatible /embeddings endpoint.
type InferenceEncoder struct {
	baseURL    string
	token      string
	model      string
	dimension  int
	httpClient *http.Client
}

// NewInferenceEncoder validates cfg and returns a remote encoder that expects
// vectors of the given dimension.
func NewInferenceEncoder(cfg RemoteConfig, dimension int) (*InferenceEncoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &InferenceEncoder{
		baseURL:    strings.TrimRight(cfg.Endpoint, "/"),
		token:      cfg.Token,
		model:      cfg.Model,
		dimension:  dimension,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (p *InferenceEncoder) Dimension() int  { return p.dimension }
func (p *InferenceEncoder) ModelID() string { return p.model }

// Encode returns the embedding of text.
func (p *InferenceEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	reqBody := map[string]any{
		"model": p.model,
		"input": []string{text},
	}

	url := fmt.Sprintf("%s/embeddings", p.baseURL)

	var parsed struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("inference: embeddings empty data")
	}
	return parsed.Data[0].Embedding, nil
}
