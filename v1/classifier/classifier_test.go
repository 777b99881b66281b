package classifier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pulsesearch/lyricml/v1/inference"
	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/observability"
)

func TestClassifyChunksAndAggregates(t *testing.T) {
	ctrl := gomock.NewController(t)
	predictor := NewMockPredictor(ctrl)

	text := "word word word\nword word word"
	predictor.EXPECT().Name().Return("mock").AnyTimes()
	predictor.EXPECT().
		Predict(gomock.Any(), []string{"word word word", "word word word"}).
		Return([][]EmotionScore{
			{{"joy", 0.9}, {"sadness", 0.05}},
			{{"joy", 0.7}, {"sadness", 0.05}},
		}, nil)

	var observed []observability.OperationContext
	c := NewWithPredictor(Config{MaxWords: 4}, predictor).
		WithObserver(observability.ObserverFunc(func(op observability.OperationContext) {
			observed = append(observed, op)
		}))

	scores, err := c.Classify(context.Background(), text, DefaultMinScore)

	require.NoError(t, err)
	assert.Equal(t, []EmotionScore{{"joy", 0.8}}, scores)
	require.Len(t, observed, 1)
	assert.Equal(t, "classify", observed[0].Operation)
	assert.NoError(t, observed[0].Error)
}

func TestClassifyPropagatesPredictorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	predictor := NewMockPredictor(ctrl)
	predictor.EXPECT().Name().Return("mock").AnyTimes()
	predictor.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	c := NewWithPredictor(Config{}, predictor)

	_, err := c.Classify(context.Background(), "la la la", DefaultMinScore)

	assert.ErrorContains(t, err, "boom")
}

func TestClassifyNormalizesBeforeChunking(t *testing.T) {
	ctrl := gomock.NewController(t)
	predictor := NewMockPredictor(ctrl)
	predictor.EXPECT().Name().Return("mock").AnyTimes()
	predictor.EXPECT().
		Predict(gomock.Any(), []string{"word word", "word word"}).
		Return([][]EmotionScore{{{"joy", 0.5}}, {{"joy", 0.5}}}, nil)

	c := NewWithPredictor(Config{MaxWords: 2}, predictor)

	scores, err := c.Classify(context.Background(), "\uff57\uff4f\uff52\uff44\x00 word\r\nword word\r\n", DefaultMinScore)

	require.NoError(t, err)
	assert.Equal(t, []EmotionScore{{"joy", 0.5}}, scores)
}

type stubResolver struct {
	mu    sync.Mutex
	calls []modelhub.ModelSpec
	dirs  map[string]string
}

func (s *stubResolver) Resolve(_ context.Context, spec modelhub.ModelSpec) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, spec)
	if dir, ok := s.dirs[spec.Name]; ok {
		return dir, nil
	}
	return "", modelhub.ErrModelNotFound
}

func TestLoadFallsBackWhenFineTunedModelMissing(t *testing.T) {
	fallbackDir := t.TempDir()
	resolver := &stubResolver{dirs: map[string]string{"roberta-base-go_emotions-onnx": fallbackDir}}
	c := New(Config{FineTunedDir: "/nonexistent/go_emotions_model"}, resolver, nil)

	// The fallback directory has no config.json, so loading fails after resolution.
	_, err := c.Classify(context.Background(), "hello", DefaultMinScore)
	require.Error(t, err)

	require.Len(t, resolver.calls, 2)
	assert.Equal(t, "/nonexistent/go_emotions_model", resolver.calls[0].Dir)
	assert.Empty(t, resolver.calls[0].Repo)
	assert.Equal(t, DefaultFallbackModel, resolver.calls[1].Repo)
	assert.Equal(t, []string{"onnx/model.onnx", "onnx/tokenizer.json", "onnx/config.json"}, resolver.calls[1].Files)
	assert.False(t, c.Ready())
}

func TestLoadIsRetriedAfterFailure(t *testing.T) {
	resolver := &stubResolver{}
	c := New(Config{}, resolver, nil)

	require.Error(t, c.Warmup(context.Background()))
	require.Error(t, c.Warmup(context.Background()))

	// Two attempts, each trying the fine-tuned and the fallback model.
	assert.Len(t, resolver.calls, 4)
}

func TestUnknownBackend(t *testing.T) {
	c := New(Config{Backend: "tensorflow"}, &stubResolver{}, nil)

	err := c.Warmup(context.Background())

	assert.ErrorContains(t, err, "unknown backend")
}

func TestModelConfigLabels(t *testing.T) {
	cfg := modelConfig{ID2Label: map[string]string{"1": "amusement", "0": "admiration", "2": "anger"}}

	labels, err := cfg.labels()

	require.NoError(t, err)
	assert.Equal(t, []string{"admiration", "amusement", "anger"}, labels)

	_, err = modelConfig{ID2Label: map[string]string{"0": "a", "2": "c"}}.labels()
	assert.Error(t, err)
}

func TestScoresUseProblemType(t *testing.T) {
	multi := &onnxPredictor{labels: []string{"a", "b"}, multiLabel: true}
	single := &onnxPredictor{labels: []string{"a", "b"}}

	m := multi.scores([]float32{0, 0})
	s := single.scores([]float32{0, 0})

	assert.InDelta(t, 0.5, m[0].Score, 1e-9)
	assert.InDelta(t, 0.5, m[1].Score, 1e-9)
	assert.InDelta(t, 1.0, s[0].Score+s[1].Score, 1e-9)
}

// TestClassifyJoyfulLyrics runs a real exported model. It needs
// LYRICML_TEST_CLASSIFIER_DIR (a fine-tuned export with model.onnx,
// tokenizer.json and config.json) and ONNXRUNTIME_SHARED_LIBRARY_PATH.
func TestClassifyJoyfulLyrics(t *testing.T) {
	dir := os.Getenv("LYRICML_TEST_CLASSIFIER_DIR")
	lib := os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")
	if dir == "" || lib == "" {
		t.Skip("LYRICML_TEST_CLASSIFIER_DIR and ONNXRUNTIME_SHARED_LIBRARY_PATH not set")
	}
	require.NoError(t, inference.InitRuntime(inference.RuntimeConfig{SharedLibraryPath: lib}))

	hub := modelhub.New(modelhub.Config{CacheDir: t.TempDir(), Offline: true}, nil, nil)
	c := New(Config{FineTunedDir: filepath.Clean(dir)}, hub, nil)
	defer c.Close()

	scores, err := c.Classify(context.Background(), "I am so happy today, everything is wonderful", DefaultMinScore)

	require.NoError(t, err)
	require.NotEmpty(t, scores)
	labels := make([]string, 0, len(scores))
	for _, s := range scores {
		labels = append(labels, s.Label)
	}
	assert.Contains(t, labels, "joy")
}

// TestFallbackModelRanksJoyFirst resolves the public fallback model through
// the hub. It needs LYRICML_TEST_MODEL_CACHE (a cache directory that holds or
// may receive roberta-base-go_emotions-onnx) and
// ONNXRUNTIME_SHARED_LIBRARY_PATH.
func TestFallbackModelRanksJoyFirst(t *testing.T) {
	cache := os.Getenv("LYRICML_TEST_MODEL_CACHE")
	lib := os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")
	if cache == "" || lib == "" {
		t.Skip("LYRICML_TEST_MODEL_CACHE and ONNXRUNTIME_SHARED_LIBRARY_PATH not set")
	}
	require.NoError(t, inference.InitRuntime(inference.RuntimeConfig{SharedLibraryPath: lib}))

	hub := modelhub.New(modelhub.Config{CacheDir: cache}, nil, nil)
	c := New(Config{FineTunedDir: filepath.Join(t.TempDir(), "go_emotions_model")}, hub, nil)
	defer c.Close()

	scores, err := c.Classify(context.Background(), "I am so happy and joyful today", DefaultMinScore)

	require.NoError(t, err)
	require.NotEmpty(t, scores)
	assert.Equal(t, "joy", scores[0].Label)
	assert.GreaterOrEqual(t, scores[0].Score, 0.10)
}
