package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/analysis"
	"github.com/pulsesearch/lyricml/v1/api"
	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/config"
	"github.com/pulsesearch/lyricml/v1/embedding"
	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/tracer"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, version+"\n", out.String())
}

func TestReadLyrics(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		got, err := readLyrics(strings.NewReader("hello\nworld"), "")
		require.NoError(t, err)
		assert.Equal(t, "hello\nworld", got)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "song.txt")
		require.NoError(t, os.WriteFile(path, []byte("la la la"), 0o600))
		got, err := readLyrics(nil, path)
		require.NoError(t, err)
		assert.Equal(t, "la la la", got)
	})

	t.Run("blank input", func(t *testing.T) {
		_, err := readLyrics(strings.NewReader(" \n\t"), "-")
		assert.ErrorIs(t, err, analysis.ErrEmptyLyrics)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readLyrics(nil, filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

func TestAnalyzeRejectsBlankStdinBeforeLoadingModels(t *testing.T) {
	root := newRootCommand()
	root.SetIn(strings.NewReader("   "))
	root.SetArgs([]string{"analyze", "--artist", "a", "--title", "t"})

	err := root.Execute()
	assert.ErrorIs(t, err, analysis.ErrEmptyLyrics)
}

func TestServerModulesGraph(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)

	// Validates the dependency graph without starting anything.
	err = fx.ValidateApp(
		serverModules(cfg),
		fx.Invoke(func(*api.Server, *analysis.Service) {}),
	)
	assert.NoError(t, err)
}

func TestCoreModulesProvideEveryPackageLogger(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)

	err = fx.ValidateApp(
		coreModules(cfg),
		fx.Invoke(func(
			_ *analysis.Service,
			_ tracer.Logger,
			_ analysis.Logger,
			_ classifier.Logger,
			_ embedding.Logger,
			_ modelhub.Logger,
		) {
		}),
	)
	assert.NoError(t, err)
}
