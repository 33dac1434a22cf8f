package main

import (
	"context"
	"fmt"
	"reserved/internal/config"
	"reserved/internal/reserved"
	"reserved/pkg/logger"
	"reserved/pkg/metrics"
	"reserved/pkg/storage/file"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// generateCommand constructs the 'generate' subcommand that reads the ranked
// input once and writes the reserved domain list.
func generateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Writes the reserved domain list from the ranked input",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := logger.WithRun(context.Background(), cmd.Name())
			start := time.Now()

			rec, registry, err := metrics.NewPrometheus()
			if err != nil {
				logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
			}

			pipeline := loadPipeline(ctx, cfg, rec)

			logger.Info(ctx, "reading ranked input", zap.String("path", cfg.Input.Path), zap.Int("limit", cfg.Limit))
			src, err := file.Open(cfg.Input.Path)
			if err != nil {
				fail(ctx, "could not open input", err)
			}
			defer func() { _ = src.Close() }()

			agg, err := pipeline.Collect(ctx, src)
			if err != nil {
				fail(ctx, "could not collect domains", err)
			}

			sink, err := file.Create(cfg.Output.Path)
			if err != nil {
				fail(ctx, "could not create output", err)
			}
			if _, err := reserved.Emit(ctx, agg, sink); err != nil {
				_ = sink.Abort()
				fail(ctx, "could not write output", err)
			}
			if err := sink.Close(); err != nil {
				fail(ctx, "could not write output", err)
			}

			sum := sink.Sum()
			logger.Info(ctx, "reserved domain list written",
				zap.String("path", cfg.Output.Path),
				zap.String("sha256", sum),
				zap.Duration("elapsed", time.Since(start)))
			if cfg.Output.ExpectedSHA256 != "" && sum != cfg.Output.ExpectedSHA256 {
				logger.Warn(ctx, "output checksum differs from the expected one",
					zap.String("expected", cfg.Output.ExpectedSHA256), zap.String("actual", sum))
			}

			rec.RunFinished(ctx, time.Since(start))
			if cfg.Metrics.TextfilePath != "" {
				if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath, registry); err != nil {
					logger.Warn(ctx, "could not export metrics", zap.Error(err))
				}
			}
			if err := rec.Shutdown(ctx); err != nil {
				logger.Warn(ctx, "could not stop metrics recorder", zap.Error(err))
			}

			fmt.Println(confirmation(cfg.Output.Path, cfg.Output.ExpectedSHA256)) //nolint: forbidigo
		},
	}

	return cmd
}

// confirmation is the message announcing the written file and the checksum
// it should have. The checksum is not verified here.
func confirmation(path, expected string) string {
	if expected == "" {
		return path + " has been written"
	}

	return fmt.Sprintf("%s has been written and should have sha256 hash %s", path, expected)
}
