package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/analysis"
)

func newAnalyzeCommand(load loadFunc) *cobra.Command {
	var file, artist, title string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify and embed one song and print the result as JSON",
		Long:  "Reads lyrics from --file, or from stdin when no file is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lyrics, err := readLyrics(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return withService(cmd.Context(), load, func(ctx context.Context, svc *analysis.Service) error {
				res, err := svc.Analyze(ctx, analysis.Request{Artist: artist, Title: title, Lyrics: lyrics})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the lyrics (default stdin)")
	cmd.Flags().StringVar(&artist, "artist", "", "artist name")
	cmd.Flags().StringVar(&title, "title", "", "song title")
	return cmd
}

func newSimilarCommand(load loadFunc) *cobra.Command {
	var (
		file string
		topK int
	)

	cmd := &cobra.Command{
		Use:   "similar",
		Short: "Rank the configured song library by similarity to the lyrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lyrics, err := readLyrics(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			return withService(cmd.Context(), load, func(ctx context.Context, svc *analysis.Service) error {
				results, err := svc.Similar(ctx, lyrics, topK)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), results)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file holding the lyrics (default stdin)")
	cmd.Flags().IntVarP(&topK, "top-k", "k", 5, "number of songs to return")
	return cmd
}

// withService starts the core modules without the HTTP server, runs fn and
// stops the application.
func withService(ctx context.Context, load loadFunc, fn func(context.Context, *analysis.Service) error) error {
	cfg, err := load()
	if err != nil {
		return err
	}
	cfg.Analysis.WarmupOnStart = false

	var svc *analysis.Service
	app := fx.New(coreModules(cfg), fx.Populate(&svc), fx.StartTimeout(startTimeout))
	if err := app.Err(); err != nil {
		return err
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	runErr := fn(ctx, svc)

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	return errors.Join(runErr, app.Stop(stopCtx))
}

func readLyrics(stdin io.Reader, file string) (string, error) {
	var (
		b   []byte
		err error
	)
	if file == "" || file == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read lyrics: %w", err)
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", analysis.ErrEmptyLyrics
	}
	return string(b), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

