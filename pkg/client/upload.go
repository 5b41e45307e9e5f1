package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// UploadForm describes one multipart media upload. The upload path is
// explicitly excluded from the cache-aside protocol: it always hits the
// network, is never cached itself, and clears the store on success like
// every other mutation.
type UploadForm struct {
	// BusinessID owns the uploaded asset.
	BusinessID string

	// MediaType is the asset category (image, video, document).
	MediaType string

	// Filename is the original file name sent with the file part.
	Filename string

	// Content is the file body.
	Content io.Reader
}

// Upload sends a multipart form to path and decodes the JSON response into
// out (out may be nil).
func (c *Client) Upload(ctx context.Context, kind Kind, path string, form UploadForm, out any) error {
	start := time.Now()
	defer func() {
		requestDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("business_id", form.BusinessID); err != nil {
		return fmt.Errorf("write business_id field: %w", err)
	}
	if err := mw.WriteField("media_type", form.MediaType); err != nil {
		return fmt.Errorf("write media_type field: %w", err)
	}
	part, err := mw.CreateFormFile("file", form.Filename)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, form.Content); err != nil {
		return fmt.Errorf("copy file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request for %s: %w", path, err)
	}
	c.decorate(req)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	c.logger.Debug().
		Str("kind", string(kind)).
		Str("path", path).
		Str("filename", form.Filename).
		Msg("Uploading media asset")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		requestsTotal.WithLabelValues(string(kind), http.MethodPost, "network_error").Inc()
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		return fmt.Errorf("read response body for %s: %w", path, err)
	}

	requestsTotal.WithLabelValues(string(kind), http.MethodPost, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		errorsTotal.WithLabelValues(string(kind)).Inc()
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     http.MethodPost,
			Path:       path,
			Body:       string(body),
		}
	}

	c.store.Clear()

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response for %s: %w", path, err)
		}
	}
	return nil
}
