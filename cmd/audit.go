package main

import (
	"context"
	"os"
	"reserved/internal/config"
	"reserved/pkg/logger"
	"reserved/pkg/storage/file"

	"github.com/spf13/cobra"
)

// auditCommand constructs the 'audit' subcommand that compares the curated
// multipart TLD table against the public suffix list for accepted domains.
func auditCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Reports accepted domains whose sld.tld differs from their public suffix eTLD+1",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := logger.WithRun(context.Background(), cmd.Name())

			pipeline := loadPipeline(ctx, cfg, nil)

			src, err := file.Open(cfg.Input.Path)
			if err != nil {
				fail(ctx, "could not open input", err)
			}
			defer func() { _ = src.Close() }()

			if _, err := pipeline.Audit(ctx, src, os.Stdout); err != nil {
				fail(ctx, "could not audit input", err)
			}
		},
	}

	return cmd
}
