package commands

import (
	"fmt"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// MigrateCommandHandler applies the database schema.
type MigrateCommandHandler struct {
	open Opener
}

// NewMigrateCommandHandler returns a handler that connects through open.
func NewMigrateCommandHandler(open Opener) *MigrateCommandHandler {
	return &MigrateCommandHandler{open: open}
}

// MigrateCmd creates or updates every table.
func (commandHandler *MigrateCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	env, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := persistence.Migrate(env.DB); err != nil {
		return err
	}
	env.Logger.Info("Database migrations completed successfully")
	return nil
}

// InitMigrateCommands registers the migrate command.
func InitMigrateCommands(rootCmd *cobra.Command, open Opener) error {
	if open == nil {
		return fmt.Errorf("migrate commands need a database opener")
	}
	handler := NewMigrateCommandHandler(open)

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	return nil
}
