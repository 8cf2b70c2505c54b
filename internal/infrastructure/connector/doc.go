// Package connector stores attachment bytes on the local filesystem or in Azure Blob Storage.
package connector
