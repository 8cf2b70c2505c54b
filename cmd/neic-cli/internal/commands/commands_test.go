//go:build unit
// +build unit

package commands

import (
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noOpener(*cobra.Command) (*Environment, error) {
	return nil, assert.AnError
}

func findCommand(t *testing.T, rootCmd *cobra.Command, args ...string) *cobra.Command {
	t.Helper()

	cmd, _, err := rootCmd.Find(args)
	require.NoError(t, err)
	return cmd
}

func TestInitCommands_RegistersTree(t *testing.T) {
	rootCmd := &cobra.Command{Use: "neic-cli"}
	require.NoError(t, InitMigrateCommands(rootCmd, noOpener))
	require.NoError(t, InitUserCommands(rootCmd, noOpener))
	require.NoError(t, InitExportCommands(rootCmd, noOpener))

	assert.Equal(t, "migrate", findCommand(t, rootCmd, "migrate").Name())
	for _, name := range []string{"create", "set-role", "reset-password"} {
		assert.Equal(t, name, findCommand(t, rootCmd, "user", name).Name())
	}

	export := findCommand(t, rootCmd, "export", "submissions")
	assert.Equal(t, "submissions", export.Name())
	assert.Equal(t, "submissions.csv", export.Flag("out").DefValue)
}

func TestInitCommands_NilOpener(t *testing.T) {
	rootCmd := &cobra.Command{Use: "neic-cli"}
	assert.Error(t, InitMigrateCommands(rootCmd, nil))
	assert.Error(t, InitUserCommands(rootCmd, nil))
	assert.Error(t, InitExportCommands(rootCmd, nil))
}

func TestUserCreateCmd_OpenerError(t *testing.T) {
	rootCmd := &cobra.Command{Use: "neic-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitUserCommands(rootCmd, noOpener))

	rootCmd.SetArgs([]string{"user", "create", "--name", "A", "--email", "a@neic.gov.bd", "--password", "long-enough"})
	assert.ErrorIs(t, rootCmd.Execute(), assert.AnError)
}

func TestRoleFlag(t *testing.T) {
	tests := []struct {
		raw     string
		want    accounts.Role
		wantErr bool
	}{
		{"", "", false},
		{"admin", accounts.RoleAdmin, false},
		{" Support ", accounts.RoleSupport, false},
		{"root", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().String("role", "", "")
			require.NoError(t, cmd.Flags().Set("role", tt.raw))

			role, err := roleFlag(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func newExportFlags(t *testing.T, values map[string]string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{}
	for _, name := range []string{"status", "from", "to"} {
		cmd.Flags().String(name, "", "")
	}
	for name, value := range values {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func TestSubmissionQueryFlags(t *testing.T) {
	cmd := newExportFlags(t, map[string]string{"status": "reviewed", "from": "2024-01-01", "to": "2024-01-31"})

	query, err := submissionQueryFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, submissions.StatusReviewed, query.Status)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), query.From)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), query.To)
}

func TestSubmissionQueryFlags_Empty(t *testing.T) {
	query, err := submissionQueryFlags(newExportFlags(t, nil))
	require.NoError(t, err)
	assert.Empty(t, query.Status)
	assert.True(t, query.From.IsZero())
	assert.True(t, query.To.IsZero())
}

func TestSubmissionQueryFlags_Invalid(t *testing.T) {
	_, err := submissionQueryFlags(newExportFlags(t, map[string]string{"status": "ARCHIVED"}))
	assert.Error(t, err)

	_, err = submissionQueryFlags(newExportFlags(t, map[string]string{"to": "31/01/2024"}))
	assert.Error(t, err)
}
