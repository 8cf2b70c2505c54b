package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateMultipartBody writes a single file part under field and returns the body and its content type.
func CreateMultipartBody(t *testing.T, field, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

// CreateFileHeader parses a one-file multipart body back into the header a handler would receive.
func CreateFileHeader(t *testing.T, fileName, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, formContentType := CreateMultipartBody(t, "file", fileName, contentType, content)

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", formContentType)
	require.NoError(t, req.ParseMultipartForm(32<<20))

	headers := req.MultipartForm.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}
