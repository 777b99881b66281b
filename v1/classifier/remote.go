package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// remotePredictor calls a Hugging Face style text-classification endpoint.
type remotePredictor struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func newRemotePredictor(cfg RemoteConfig) (*remotePredictor, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("classifier: remote endpoint is required")
	}
	return &remotePredictor{
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (p *remotePredictor) Name() string { return p.endpoint }

func (p *remotePredictor) Predict(ctx context.Context, chunks []string) ([][]EmotionScore, error) {
	if len(chunks) == 0 {
		return nil, nil
	}
	body := map[string]any{
		"inputs": chunks,
		"parameters": map[string]any{
			"top_k":      nil,
			"truncation": true,
		},
	}

	var raw json.RawMessage
	if err := p.postJSON(ctx, body, &raw); err != nil {
		return nil, err
	}

	var nested [][]EmotionScore
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) != len(chunks) {
			return nil, fmt.Errorf("classifier: endpoint returned %d results for %d chunks", len(nested), len(chunks))
		}
		return nested, nil
	}
	// Single inputs are answered with a flat list by some servers.
	var flat []EmotionScore
	if err := json.Unmarshal(raw, &flat); err != nil || len(chunks) != 1 {
		return nil, fmt.Errorf("classifier: unexpected response shape")
	}
	return [][]EmotionScore{flat}, nil
}

func (p *remotePredictor) postJSON(ctx context.Context, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("http %d for %s", resp.StatusCode, p.endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
