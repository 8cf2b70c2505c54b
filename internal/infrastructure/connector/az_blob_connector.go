package connector

import (
	"context"
	"fmt"
	"io"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// AzureBlobConnector stores attachments in one Azure Blob Storage container as <id>/<name>.
type AzureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector connects with a connection string and creates the container when missing.
func NewAzureBlobConnector(ctx context.Context, settings *config.AttachmentSettings, logger logger.Logger) (*AzureBlobConnector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func blobName(attachmentID, name string) string {
	return fmt.Sprintf("%s/%s", attachmentID, name)
}

// Upload stores data with the attachment's content type.
func (c *AzureBlobConnector) Upload(ctx context.Context, attachment *attachments.Attachment, data []byte) error {
	contentType := attachment.ContentType
	_, err := c.client.UploadBuffer(ctx, c.containerName, blobName(attachment.ID, attachment.Name), data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", attachment.ID, err)
	}

	c.logger.Info("Uploaded attachment ", attachment.ID, " to container ", c.containerName)
	return nil
}

// Download reads the blob content.
func (c *AzureBlobConnector) Download(ctx context.Context, attachmentID, name string) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, blobName(attachmentID, name), nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "attachment content not found")
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", attachmentID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", attachmentID, err)
	}
	return data, nil
}

// Delete removes the blob. A blob that is already gone is not an error.
func (c *AzureBlobConnector) Delete(ctx context.Context, attachmentID, name string) error {
	_, err := c.client.DeleteBlob(ctx, c.containerName, blobName(attachmentID, name), nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob %s: %w", attachmentID, err)
	}

	c.logger.Info("Deleted attachment ", attachmentID, " from container ", c.containerName)
	return nil
}
