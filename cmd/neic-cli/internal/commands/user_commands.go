package commands

import (
	"fmt"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/strutil"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// UserCommandHandler manages dashboard accounts from the command line.
// Accounts are addressed by email.
type UserCommandHandler struct {
	open Opener
}

// NewUserCommandHandler returns a handler that connects through open.
func NewUserCommandHandler(open Opener) *UserCommandHandler {
	return &UserCommandHandler{open: open}
}

// CreateUserCmd creates an active account and prints its id.
func (commandHandler *UserCommandHandler) CreateUserCmd(cmd *cobra.Command, _ []string) error {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	role, err := roleFlag(cmd)
	if err != nil {
		return err
	}
	if err := validators.Get().Var(email, "required,email"); err != nil {
		return fmt.Errorf("invalid email %q", email)
	}
	if err := validators.Get().Var(name, "required,max=120"); err != nil {
		return fmt.Errorf("name is required and at most 120 characters")
	}

	env, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.UserService.Create(cmd.Context(), systemActor, accounts.CreateUserInput{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
		IsActive: true,
	})
	if err != nil {
		return err
	}

	env.Logger.Info("Created user ", user.Email, " with role ", user.Role)
	fmt.Fprintln(cmd.OutOrStdout(), user.ID)
	return nil
}

// SetRoleCmd changes the role of an existing account.
func (commandHandler *UserCommandHandler) SetRoleCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	role, err := roleFlag(cmd)
	if err != nil {
		return err
	}
	if role == "" {
		return fmt.Errorf("--role is required")
	}

	env, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Users.GetByEmail(cmd.Context(), strutil.NormalizeEmail(email))
	if err != nil {
		return err
	}

	updated, err := env.UserService.Update(cmd.Context(), systemActor, user.ID, accounts.UpdateUserInput{Role: &role})
	if err != nil {
		return err
	}

	env.Logger.Info("Role of ", updated.Email, " is now ", updated.Role)
	return nil
}

// ResetPasswordCmd replaces the password of an existing account.
func (commandHandler *UserCommandHandler) ResetPasswordCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	env, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	user, err := env.Users.GetByEmail(cmd.Context(), strutil.NormalizeEmail(email))
	if err != nil {
		return err
	}

	if err := env.UserService.ResetPassword(cmd.Context(), systemActor, user.ID, password); err != nil {
		return err
	}

	env.Logger.Info("Password reset for ", user.Email)
	return nil
}

// roleFlag parses --role; an empty value is returned as the empty role.
func roleFlag(cmd *cobra.Command) (accounts.Role, error) {
	raw, err := cmd.Flags().GetString("role")
	if err != nil {
		return "", fmt.Errorf("invalid role flag: %w", err)
	}
	if raw == "" {
		return "", nil
	}
	role, ok := accounts.ParseRole(raw)
	if !ok {
		return "", fmt.Errorf("unknown role %q, expected one of %v", raw, accounts.Roles())
	}
	return role, nil
}

// InitUserCommands registers the user command group.
func InitUserCommands(rootCmd *cobra.Command, open Opener) error {
	if open == nil {
		return fmt.Errorf("user commands need a database opener")
	}
	handler := NewUserCommandHandler(open)

	var userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage dashboard accounts",
	}

	var createUserCmd = &cobra.Command{
		Use:   "create",
		Short: "Create an active account",
		Args:  cobra.NoArgs,
		RunE:  handler.CreateUserCmd,
	}
	createUserCmd.Flags().StringP("name", "", "", "Display name")
	createUserCmd.Flags().StringP("email", "", "", "Sign-in email")
	createUserCmd.Flags().StringP("password", "", "", "Initial password (at least 8 characters)")
	createUserCmd.Flags().StringP("role", "", "", "VIEWER, SUPPORT, MANAGEMENT or ADMIN (default VIEWER)")
	if err := markRequired(createUserCmd, "name", "email", "password"); err != nil {
		return err
	}
	userCmd.AddCommand(createUserCmd)

	var setRoleCmd = &cobra.Command{
		Use:   "set-role",
		Short: "Change the role of an account",
		Args:  cobra.NoArgs,
		RunE:  handler.SetRoleCmd,
	}
	setRoleCmd.Flags().StringP("email", "", "", "Email of the account")
	setRoleCmd.Flags().StringP("role", "", "", "VIEWER, SUPPORT, MANAGEMENT or ADMIN")
	if err := markRequired(setRoleCmd, "email", "role"); err != nil {
		return err
	}
	userCmd.AddCommand(setRoleCmd)

	var resetPasswordCmd = &cobra.Command{
		Use:   "reset-password",
		Short: "Replace the password of an account",
		Args:  cobra.NoArgs,
		RunE:  handler.ResetPasswordCmd,
	}
	resetPasswordCmd.Flags().StringP("email", "", "", "Email of the account")
	resetPasswordCmd.Flags().StringP("password", "", "", "New password (at least 8 characters)")
	if err := markRequired(resetPasswordCmd, "email", "password"); err != nil {
		return err
	}
	userCmd.AddCommand(resetPasswordCmd)

	rootCmd.AddCommand(userCmd)
	return nil
}

func markRequired(cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			return fmt.Errorf("failed to mark %s required on %s: %w", name, cmd.Name(), err)
		}
	}
	return nil
}
