package connector

import (
	"context"
	"fmt"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"
)

// NewAttachmentConnector builds the connector selected by settings.Provider.
func NewAttachmentConnector(ctx context.Context, settings *config.AttachmentSettings, logger logger.Logger) (attachments.Connector, error) {
	switch settings.Provider {
	case config.LocalStorageProvider:
		c, err := NewLocalConnector(settings.Directory, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	case config.AzureStorageProvider:
		c, err := NewAzureBlobConnector(ctx, settings, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported attachment provider: %s", settings.Provider)
	}
}
