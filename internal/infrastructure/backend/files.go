package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/abcmusic/library-web/internal/core/ports"
)

// UploadFile pushes one file through POST /files/upload as multipart form
// data with the fields the backend expects: "file" and "file_type". The part
// carries the real content type; the backend rejects mismatched kinds.
func (c *Client) UploadFile(ctx context.Context, token string, input ports.UploadFileInput) (*ports.UploadedFile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(input.Filename)))
	header.Set("Content-Type", input.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("create multipart: %w", err)
	}
	if _, err := io.Copy(part, input.Content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.WriteField("file_type", input.FileType); err != nil {
		return nil, fmt.Errorf("write file_type field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finish multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var stored ports.UploadedFile
	if err := c.send(req, "upload_file", &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
