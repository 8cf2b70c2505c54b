//go:build integration
// +build integration

package commands

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/security"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/testutil"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type cliFixture struct {
	env  *Environment
	open Opener
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	dbContext := persistence.SetupTestDB(t, config.SqliteDbType)
	env, err := NewEnvironment(dbContext.DB, bcrypt.MinCost, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &cliFixture{
		env:  env,
		open: func(*cobra.Command) (*Environment, error) { return env, nil },
	}
}

// execute runs args against a fresh command tree and returns stdout.
func (f *cliFixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "neic-cli", SilenceUsage: true, SilenceErrors: true}
	rootCmd.PersistentFlags().String(ConfigFlag, "", "")
	require.NoError(t, InitMigrateCommands(rootCmd, f.open))
	require.NoError(t, InitUserCommands(rootCmd, f.open))
	require.NoError(t, InitExportCommands(rootCmd, f.open))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (f *cliFixture) createUser(t *testing.T, email, role string) string {
	t.Helper()

	out, err := f.execute(t, "user", "create",
		"--name", "Operator", "--email", email, "--password", "operator-password", "--role", role)
	require.NoError(t, err)
	return strings.TrimSpace(out)
}

func TestMigrateCmd(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.execute(t, "migrate")
	assert.NoError(t, err)
}

func TestUserCreateCmd(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()

	id := f.createUser(t, "Admin@NEIC.gov.bd", "admin")

	user, err := f.env.Users.GetByEmail(ctx, "admin@neic.gov.bd")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, accounts.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(user.PasswordHash, "operator-password"))

	entries, _, err := f.env.Audit.List(ctx, &audit.Query{Action: audit.ActionUserCreate, Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].UserID)
	assert.Equal(t, id, entries[0].TargetUserID)
}

func TestUserCreateCmd_DefaultsToViewer(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.execute(t, "user", "create",
		"--name", "Reader", "--email", "reader@neic.gov.bd", "--password", "reader-password")
	require.NoError(t, err)

	user, err := f.env.Users.GetByEmail(context.Background(), "reader@neic.gov.bd")
	require.NoError(t, err)
	assert.Equal(t, accounts.RoleViewer, user.Role)
}

func TestUserCreateCmd_Invalid(t *testing.T) {
	f := newCLIFixture(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown role", []string{"--name", "X", "--email", "x@neic.gov.bd", "--password", "long-enough", "--role", "ROOT"}},
		{"bad email", []string{"--name", "X", "--email", "not-an-email", "--password", "long-enough"}},
		{"short password", []string{"--name", "X", "--email", "x@neic.gov.bd", "--password", "short"}},
		{"missing name", []string{"--email", "x@neic.gov.bd", "--password", "long-enough"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.execute(t, append([]string{"user", "create"}, tt.args...)...)
			assert.Error(t, err)
		})
	}

	_, err := f.env.Users.GetByEmail(context.Background(), "x@neic.gov.bd")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserCreateCmd_Duplicate(t *testing.T) {
	f := newCLIFixture(t)
	f.createUser(t, "staff@neic.gov.bd", "SUPPORT")

	_, err := f.execute(t, "user", "create",
		"--name", "Again", "--email", "staff@neic.gov.bd", "--password", "operator-password")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserSetRoleCmd(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()
	f.createUser(t, "staff@neic.gov.bd", "SUPPORT")

	_, err := f.execute(t, "user", "set-role", "--email", "STAFF@neic.gov.bd", "--role", "management")
	require.NoError(t, err)

	user, err := f.env.Users.GetByEmail(ctx, "staff@neic.gov.bd")
	require.NoError(t, err)
	assert.Equal(t, accounts.RoleManagement, user.Role)

	entries, _, err := f.env.Audit.List(ctx, &audit.Query{Action: audit.ActionRoleChange, Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "SUPPORT", entries[0].Metadata["from"])
	assert.Equal(t, "MANAGEMENT", entries[0].Metadata["to"])

	_, err = f.execute(t, "user", "set-role", "--email", "nobody@neic.gov.bd", "--role", "ADMIN")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = f.execute(t, "user", "set-role", "--email", "staff@neic.gov.bd", "--role", "OWNER")
	assert.Error(t, err)
}

func TestUserResetPasswordCmd(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()
	f.createUser(t, "staff@neic.gov.bd", "SUPPORT")

	_, err := f.execute(t, "user", "reset-password", "--email", "staff@neic.gov.bd", "--password", "replacement-password")
	require.NoError(t, err)

	user, err := f.env.Users.GetByEmail(ctx, "staff@neic.gov.bd")
	require.NoError(t, err)
	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(user.PasswordHash, "replacement-password"))

	_, err = f.execute(t, "user", "reset-password", "--email", "staff@neic.gov.bd", "--password", "short")
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestExportSubmissionsCmd(t *testing.T) {
	f := newCLIFixture(t)
	ctx := context.Background()

	for _, subject := range []string{"Voter list error", "Polling station moved", "Missing ballot"} {
		_, err := f.env.Submissions.Submit(ctx, submissions.SubmitInput{
			Name:         "Karim",
			Email:        "karim@example.com",
			Constituency: "Dhaka-10",
			Subject:      subject,
			Message:      "Please look into this before the next election.",
		})
		require.NoError(t, err)
	}

	out := filepath.Join(t.TempDir(), "submissions.csv")
	_, err := f.execute(t, "export", "submissions", "--out", out)
	require.NoError(t, err)

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 4)
	assert.Equal(t, "id", records[0][0])

	entries, _, err := f.env.Audit.List(ctx, &audit.Query{Action: audit.ActionExport, Limit: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 3, entries[0].Metadata["rows"])
}

func TestExportSubmissionsCmd_Stdout(t *testing.T) {
	f := newCLIFixture(t)

	stdout, err := f.execute(t, "export", "submissions", "--out", "-", "--status", "flagged")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestExportSubmissionsCmd_InvalidFilters(t *testing.T) {
	f := newCLIFixture(t)

	_, err := f.execute(t, "export", "submissions", "--out", "-", "--status", "ARCHIVED")
	assert.Error(t, err)

	_, err = f.execute(t, "export", "submissions", "--out", "-", "--from", "yesterday")
	assert.Error(t, err)
}
