package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/textprep/internal/cli"
	"codeberg.org/snonux/textprep/internal/config"
	"codeberg.org/snonux/textprep/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, flags *cli.Flags) error {
	proc := processor.NewProcessor(flags, cli.LoadSettings())

	if _, err := proc.Run(ctx); err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			return fmt.Errorf("configuration: %w", err)
		}
		return err
	}
	return nil
}
