package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pulsesearch/lyricml/v1/inference"
)

const (
	problemSingleLabel = "single_label_classification"
	logitsOutput       = "logits"
)

// modelLayout locates the files of one export relative to its root.
type modelLayout struct {
	Model     string
	Tokenizer string
	Config    string
}

func (l modelLayout) files() []string {
	return []string{l.Model, l.Tokenizer, l.Config}
}

var (
	fineTunedLayout = modelLayout{Model: "model.onnx", Tokenizer: "tokenizer.json", Config: "config.json"}
	fallbackLayout  = modelLayout{Model: "onnx/model.onnx", Tokenizer: "onnx/tokenizer.json", Config: "onnx/config.json"}
)

// modelConfig is the part of a Hugging Face config.json the predictor reads.
type modelConfig struct {
	ID2Label    map[string]string `json:"id2label"`
	ProblemType string            `json:"problem_type"`
}

// labels returns the label names ordered by class index.
func (c modelConfig) labels() ([]string, error) {
	if len(c.ID2Label) == 0 {
		return nil, fmt.Errorf("config has no id2label mapping")
	}
	type entry struct {
		id    int
		label string
	}
	entries := make([]entry, 0, len(c.ID2Label))
	for k, v := range c.ID2Label {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("invalid label id %q: %w", k, err)
		}
		entries = append(entries, entry{id: id, label: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })

	labels := make([]string, len(entries))
	for i, e := range entries {
		if e.id != i {
			return nil, fmt.Errorf("label ids are not contiguous at %d", i)
		}
		labels[i] = e.label
	}
	return labels, nil
}

func readModelConfig(path string) (modelConfig, error) {
	var cfg modelConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

type onnxPredictor struct {
	name       string
	session    *inference.Session
	labels     []string
	multiLabel bool
}

func newONNXPredictor(name, dir string, layout modelLayout, maxLength int) (*onnxPredictor, error) {
	cfg, err := readModelConfig(filepath.Join(dir, filepath.FromSlash(layout.Config)))
	if err != nil {
		return nil, err
	}
	labels, err := cfg.labels()
	if err != nil {
		return nil, err
	}

	sess, err := inference.NewSession(inference.SessionConfig{
		ModelPath:     filepath.Join(dir, filepath.FromSlash(layout.Model)),
		TokenizerPath: filepath.Join(dir, filepath.FromSlash(layout.Tokenizer)),
		OutputName:    logitsOutput,
		MaxLength:     maxLength,
	})
	if err != nil {
		return nil, err
	}

	return &onnxPredictor{
		name:       name,
		session:    sess,
		labels:     labels,
		multiLabel: cfg.ProblemType != problemSingleLabel,
	}, nil
}

func (p *onnxPredictor) Name() string { return p.name }

func (p *onnxPredictor) Predict(ctx context.Context, chunks []string) ([][]EmotionScore, error) {
	out := make([][]EmotionScore, 0, len(chunks))
	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		enc, err := p.session.Tokenize(chunk)
		if err != nil {
			return nil, err
		}
		logits, _, err := p.session.Run(enc)
		if err != nil {
			return nil, err
		}
		if len(logits) != len(p.labels) {
			return nil, fmt.Errorf("model returned %d logits for %d labels", len(logits), len(p.labels))
		}
		out = append(out, p.scores(logits))
	}
	return out, nil
}

func (p *onnxPredictor) scores(logits []float32) []EmotionScore {
	scores := make([]EmotionScore, len(logits))
	if p.multiLabel {
		for i, x := range logits {
			scores[i] = EmotionScore{Label: p.labels[i], Score: inference.Sigmoid(x)}
		}
		return scores
	}
	for i, prob := range inference.Softmax(logits) {
		scores[i] = EmotionScore{Label: p.labels[i], Score: prob}
	}
	return scores
}

func (p *onnxPredictor) Close() error {
	return p.session.Close()
}
