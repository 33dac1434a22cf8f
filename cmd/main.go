// Package main provides the CLI entrypoint for the reserved domain list
// generator. It wires subcommands (generate, audit, rules), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"reserved/internal/config"
	"reserved/internal/reserved"
	"reserved/internal/rules"
	"reserved/pkg/logger"
	"reserved/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadPipeline reads the configured rule tables and builds a pipeline
// observing rows through rec.
func loadPipeline(ctx context.Context, cfg *config.Config, rec reserved.Recorder) *reserved.Pipeline {
	r, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		logger.Fatal(ctx, "could not load rules", zap.Error(err), zap.String("path", cfg.Rules.Path))
	}

	return reserved.New(r, reserved.Options{
		Limit:    cfg.Limit,
		Recorder: rec,
	})
}

// fail logs a fatal run error together with its kind and exits non-zero.
func fail(ctx context.Context, msg string, err error) {
	logger.Fatal(ctx, msg, zap.Error(err), zap.String("kind", serrors.KindOf(err).Error()))
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "reserved",
		Short:        "Builds the list of domains reserved for use as examples",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.Setup(cfg.Environment); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		generateCommand(cfg),
		auditCommand(cfg),
		rulesCommand(cfg),
	)

	err = rootCmd.Execute()
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so the standard flag
// package can read it before cobra runs.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
	}

	return nil
}
