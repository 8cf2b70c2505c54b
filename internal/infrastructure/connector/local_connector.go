package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"
)

// LocalConnector keeps attachments under root as <id>/<name>.
type LocalConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalConnector creates root when missing.
func NewLocalConnector(root string, logger logger.Logger) (*LocalConnector, error) {
	if root == "" {
		return nil, fmt.Errorf("attachment directory is required")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory %s: %w", root, err)
	}
	return &LocalConnector{root: root, logger: logger}, nil
}

func (c *LocalConnector) path(attachmentID, name string) (string, error) {
	id := filepath.Base(attachmentID)
	base := filepath.Base(name)
	if id != attachmentID || id == "." || id == ".." || base == "." || base == ".." || base == string(filepath.Separator) {
		return "", apperrors.New(apperrors.CodeInvalidArgument, "invalid attachment path")
	}
	return filepath.Join(c.root, id, base), nil
}

// Upload writes data for attachment.
func (c *LocalConnector) Upload(_ context.Context, attachment *attachments.Attachment, data []byte) error {
	path, err := c.path(attachment.ID, attachment.Name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create attachment folder: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}

	c.logger.Info("Stored attachment ", attachment.ID, " at ", path)
	return nil
}

// Download reads the stored bytes.
func (c *LocalConnector) Download(_ context.Context, attachmentID, name string) ([]byte, error) {
	path, err := c.path(attachmentID, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.New(apperrors.CodeNotFound, "attachment content not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	return data, nil
}

// Delete removes the attachment folder. Missing files are not an error.
func (c *LocalConnector) Delete(_ context.Context, attachmentID, name string) error {
	path, err := c.path(attachmentID, name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	c.logger.Info("Deleted attachment ", attachmentID)
	return nil
}
