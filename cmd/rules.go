package main

import (
	"context"
	"os"
	"reserved/internal/config"
	"reserved/internal/rules"
	"reserved/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rulesCommand constructs the 'rules' subcommand that prints the effective
// rule tables as YAML.
func rulesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Prints the effective exclusion rule tables",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			r, err := rules.Load(cfg.Rules.Path)
			if err != nil {
				logger.Fatal(ctx, "could not load rules", zap.Error(err))
			}
			if err := r.Encode(os.Stdout); err != nil {
				logger.Fatal(ctx, "could not print rules", zap.Error(err))
			}
		},
	}

	return cmd
}
