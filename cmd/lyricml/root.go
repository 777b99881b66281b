package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/config"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

const startTimeout = 2 * time.Minute

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "lyricml",
		Short:         "Emotion analysis and similarity search for song lyrics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	load := func() (*config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(
		newServeCommand(load),
		newAnalyzeCommand(load),
		newSimilarCommand(load),
		newVersionCommand(),
	)
	return root
}

type loadFunc func() (*config.Config, error)

func newServeCommand(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}

			app := fx.New(serverModules(cfg), fx.StartTimeout(startTimeout))
			if err := app.Err(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
			defer cancel()
			if err := app.Start(startCtx); err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}

			var exit fx.ShutdownSignal
			select {
			case <-ctx.Done():
			case exit = <-app.Wait():
			}

			stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
			defer cancelStop()
			if err := app.Stop(stopCtx); err != nil {
				return err
			}
			if exit.ExitCode != 0 {
				return fmt.Errorf("stopped with exit code %d", exit.ExitCode)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
