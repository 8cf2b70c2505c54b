package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"

	"github.com/spf13/cobra"
)

// ExportCommandHandler writes portal data to files.
type ExportCommandHandler struct {
	open Opener
}

// NewExportCommandHandler returns a handler that connects through open.
func NewExportCommandHandler(open Opener) *ExportCommandHandler {
	return &ExportCommandHandler{open: open}
}

// ExportSubmissionsCmd writes every matching submission as CSV to --out, or stdout for "-".
func (commandHandler *ExportCommandHandler) ExportSubmissionsCmd(cmd *cobra.Command, _ []string) error {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("invalid out flag: %w", err)
	}
	query, err := submissionQueryFlags(cmd)
	if err != nil {
		return err
	}

	env, err := commandHandler.open(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	var w io.Writer = cmd.OutOrStdout()
	if out != "-" {
		file, err := os.OpenFile(filepath.Clean(out), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer func() {
			if err := file.Close(); err != nil {
				env.Logger.Warn("failed to close ", out, ": ", err)
			}
		}()
		w = file
	}

	rows, err := env.Submissions.ExportCSV(cmd.Context(), systemActor, query, w)
	if err != nil {
		return err
	}

	if out != "-" {
		env.Logger.Info("Wrote ", rows, " submissions to ", out)
	}
	return nil
}

// submissionQueryFlags reads the optional --status, --from and --to filters. Dates are
// YYYY-MM-DD in UTC and --to includes the whole day.
func submissionQueryFlags(cmd *cobra.Command) (*submissions.Query, error) {
	query := submissions.NewQuery()

	status, err := cmd.Flags().GetString("status")
	if err != nil {
		return nil, fmt.Errorf("invalid status flag: %w", err)
	}
	query.Status = submissions.Status(strings.ToUpper(strings.TrimSpace(status)))

	from, err := dateFlag(cmd, "from")
	if err != nil {
		return nil, err
	}
	query.From = from

	to, err := dateFlag(cmd, "to")
	if err != nil {
		return nil, err
	}
	if !to.IsZero() {
		query.To = to.Add(24*time.Hour - time.Nanosecond)
	}

	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filters: %w", err)
	}
	return query, nil
}

func dateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be a date like 2024-01-31", name)
	}
	return t, nil
}

// InitExportCommands registers the export command group.
func InitExportCommands(rootCmd *cobra.Command, open Opener) error {
	if open == nil {
		return fmt.Errorf("export commands need a database opener")
	}
	handler := NewExportCommandHandler(open)

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export portal data",
	}

	var exportSubmissionsCmd = &cobra.Command{
		Use:   "submissions",
		Short: "Export public submissions as CSV",
		Args:  cobra.NoArgs,
		RunE:  handler.ExportSubmissionsCmd,
	}
	exportSubmissionsCmd.Flags().StringP("out", "o", "submissions.csv", "Output file, or - for stdout")
	exportSubmissionsCmd.Flags().StringP("status", "", "", "Only PENDING, REVIEWED or FLAGGED submissions")
	exportSubmissionsCmd.Flags().StringP("from", "", "", "Earliest creation date, YYYY-MM-DD")
	exportSubmissionsCmd.Flags().StringP("to", "", "", "Latest creation date, YYYY-MM-DD")
	exportCmd.AddCommand(exportSubmissionsCmd)

	rootCmd.AddCommand(exportCmd)
	return nil
}
