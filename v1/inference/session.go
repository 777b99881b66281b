package inference

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"
)

const (
	inputIDs      = "input_ids"
	attentionMask = "attention_mask"
	tokenTypeIDs  = "token_type_ids"
)

// Encoded is one tokenized text, ready to be turned into [1 x n] tensors.
type Encoded struct {
	IDs     []int64
	Mask    []int64
	TypeIDs []int64
}

// Len returns the number of tokens.
func (e Encoded) Len() int { return len(e.IDs) }

// Session pairs a tokenizer with an ONNX graph. It is safe for concurrent use.
type Session struct {
	session   *ort.DynamicAdvancedSession
	tokenizer *tokenizer.Tokenizer
	inputs    []string
	output    string
	maxLength int
}

// NewSession loads the tokenizer and the graph described by cfg. The graph
// must accept input_ids and attention_mask; token_type_ids is fed when the
// graph declares it. InitRuntime must have been called.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.ModelPath == "" || cfg.TokenizerPath == "" {
		return nil, errors.New("model and tokenizer paths are required")
	}
	if cfg.OutputName == "" {
		return nil, errors.New("output name is required")
	}

	inputInfo, _, err := ort.GetInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", cfg.ModelPath, err)
	}
	var inputs []string
	for _, info := range inputInfo {
		switch info.Name {
		case inputIDs, attentionMask, tokenTypeIDs:
			inputs = append(inputs, info.Name)
		}
	}
	if !slices.Contains(inputs, inputIDs) || !slices.Contains(inputs, attentionMask) {
		return nil, fmt.Errorf("model %s must declare %s and %s inputs", cfg.ModelPath, inputIDs, attentionMask)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("create session options: %w", err)
	}
	defer opts.Destroy()

	threads := cfg.IntraOpThreads
	if threads == 0 {
		threads = defaultIntraOpThreads()
	}
	if threads > 0 {
		if err := opts.SetIntraOpNumThreads(threads); err != nil {
			return nil, fmt.Errorf("set intra-op threads: %w", err)
		}
	}

	sess, err := ort.NewDynamicAdvancedSession(cfg.ModelPath, inputs, []string{cfg.OutputName}, opts)
	if err != nil {
		return nil, fmt.Errorf("create session for %s: %w", cfg.ModelPath, err)
	}

	tk, err := pretrained.FromFile(cfg.TokenizerPath)
	if err != nil {
		_ = sess.Destroy()
		return nil, fmt.Errorf("load tokenizer %s: %w", cfg.TokenizerPath, err)
	}

	return &Session{
		session:   sess,
		tokenizer: tk,
		inputs:    inputs,
		output:    cfg.OutputName,
		maxLength: cfg.MaxLength,
	}, nil
}

// Tokenize encodes text with special tokens and truncates it to the
// session's max length, keeping the closing special token.
func (s *Session) Tokenize(text string) (Encoded, error) {
	enc, err := s.tokenizer.EncodeSingle(text, true)
	if err != nil {
		return Encoded{}, fmt.Errorf("tokenize: %w", err)
	}
	out := Encoded{
		IDs:     toInt64(enc.GetIds()),
		Mask:    toInt64(enc.GetAttentionMask()),
		TypeIDs: toInt64(enc.GetTypeIds()),
	}
	if len(out.TypeIDs) != len(out.IDs) {
		out.TypeIDs = make([]int64, len(out.IDs))
	}
	return Truncate(out, s.maxLength), nil
}

// Truncate shortens e to maxLength tokens, keeping the last token (the
// closing special token) in place. A non-positive maxLength is a no-op.
func Truncate(e Encoded, maxLength int) Encoded {
	n := e.Len()
	if maxLength <= 0 || n <= maxLength {
		return e
	}
	cut := func(v []int64) []int64 {
		out := make([]int64, 0, maxLength)
		out = append(out, v[:maxLength-1]...)
		return append(out, v[n-1])
	}
	return Encoded{IDs: cut(e.IDs), Mask: cut(e.Mask), TypeIDs: cut(e.TypeIDs)}
}

// Run feeds one encoded text to the graph and returns the flattened output
// tensor and its shape.
func (s *Session) Run(e Encoded) ([]float32, []int64, error) {
	if e.Len() == 0 {
		return nil, nil, errors.New("empty input")
	}
	shape := ort.NewShape(1, int64(e.Len()))

	inputs := make([]ort.Value, 0, len(s.inputs))
	defer func() {
		for _, v := range inputs {
			_ = v.Destroy()
		}
	}()
	for _, name := range s.inputs {
		var data []int64
		switch name {
		case inputIDs:
			data = e.IDs
		case attentionMask:
			data = e.Mask
		case tokenTypeIDs:
			data = e.TypeIDs
		}
		t, err := ort.NewTensor(shape, data)
		if err != nil {
			return nil, nil, fmt.Errorf("build %s tensor: %w", name, err)
		}
		inputs = append(inputs, t)
	}

	outputs := []ort.Value{nil}
	if err := s.session.Run(inputs, outputs); err != nil {
		return nil, nil, fmt.Errorf("run session: %w", err)
	}
	defer func() {
		if outputs[0] != nil {
			_ = outputs[0].Destroy()
		}
	}()

	tensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, nil, fmt.Errorf("output %s is %T, want float32 tensor", s.output, outputs[0])
	}
	data := slices.Clone(tensor.GetData())
	return data, slices.Clone([]int64(tensor.GetShape())), nil
}

// Close releases the ONNX session.
func (s *Session) Close() error {
	if s == nil || s.session == nil {
		return nil
	}
	err := s.session.Destroy()
	s.session = nil
	return err
}

func toInt64(v []int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = int64(x)
	}
	return out
}
