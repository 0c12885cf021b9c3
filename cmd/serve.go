package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/dhakseshr/tds-project1/internal/api"
	"github.com/dhakseshr/tds-project1/internal/api/handler/v1handler"
	"github.com/dhakseshr/tds-project1/internal/config"
	"github.com/dhakseshr/tds-project1/internal/generator"
	"github.com/dhakseshr/tds-project1/internal/pipeline"
	"github.com/dhakseshr/tds-project1/internal/publisher"
	"github.com/dhakseshr/tds-project1/pkg/codegen/gemini"
	"github.com/dhakseshr/tds-project1/pkg/githost/github"
	"github.com/dhakseshr/tds-project1/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupPipeline wires the LLM client, the hosting client and the pipeline
// stages from configuration.
func setupPipeline(ctx context.Context, cfg *config.Config) pipeline.Pipeline {
	llm, err := gemini.New(ctx, cfg.Generator.GeminiAPIKey, cfg.Generator.Model)
	if err != nil {
		logger.Fatal(ctx, "could not create gemini client", zap.Error(err))
	}

	host := github.New(http.DefaultClient, cfg.Publisher.GitHubToken)

	return pipeline.New(
		generator.New(llm, generator.NewOptions(cfg)),
		publisher.New(host, publisher.NewOptions(cfg)),
	)
}

func setupServer(ctx context.Context, cfg *config.Config, p pipeline.Pipeline) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Pipeline: p},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			p := setupPipeline(ctx, cfg)
			stopWebserver := setupServer(ctx, cfg, p)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
