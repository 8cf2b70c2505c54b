// Package main is the entry point for neic-cli, the operator tool for the portal.
// It registers the migrate, user and export command groups and executes them.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commands "github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/cmd/neic-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "neic-cli",
		Short: "Operator tool for the NEIC portal",
		Long: `neic-cli runs maintenance tasks against the portal database.
It reads the same configuration file as the REST API, so NEIC_* environment
variables override the file in the same way.

Commands that need a database connection open it on demand.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(commands.ConfigFlag, defaultConfigPath(), "Path to the YAML configuration file")

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	open := commands.OpenFromConfig

	if err := commands.InitMigrateCommands(rootCmd, open); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	if err := commands.InitUserCommands(rootCmd, open); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	if err := commands.InitExportCommands(rootCmd, open); err != nil {
		return fmt.Errorf("failed to initialize export commands: %w", err)
	}

	return nil
}

func defaultConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "configs/rest-app.yaml"
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
