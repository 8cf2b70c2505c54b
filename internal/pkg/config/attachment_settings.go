package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Attachment storage providers
const (
	LocalStorageProvider = "local"
	AzureStorageProvider = "azure"
)

// AttachmentSettings selects where uploaded files (gazette PDFs, gallery images,
// notice attachments) are stored.
type AttachmentSettings struct {
	Provider         string `mapstructure:"provider" validate:"required,oneof=local azure"`
	Directory        string `mapstructure:"directory"`
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`
	MaxSizeMB        int    `mapstructure:"max_size_mb" validate:"required,min=1,max=100"`
}

// MaxSizeBytes returns the upload limit in bytes.
func (s *AttachmentSettings) MaxSizeBytes() int64 {
	return int64(s.MaxSizeMB) << 20
}

// Validate checks that all fields in AttachmentSettings are valid
func (s *AttachmentSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AttachmentSettings: %w", err)
	}

	switch s.Provider {
	case LocalStorageProvider:
		if s.Directory == "" {
			return fmt.Errorf("directory is required for local attachment storage")
		}
	case AzureStorageProvider:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("connection string and container name are required for azure attachment storage")
		}
	}

	return nil
}
