package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// Upload streams a document to POST /documents/upload as multipart form
// data. OCR and indexing happen asynchronously on the backend; the
// returned status reflects the queued processing.
func (c *Client) Upload(ctx context.Context, token, title, filename string, file io.Reader) (*domain.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("backend.Upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("backend.Upload: copying file: %w", err)
	}
	if err := mw.WriteField("title", title); err != nil {
		return nil, fmt.Errorf("backend.Upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("backend.Upload: %w", err)
	}

	var out domain.UploadResult
	if err := c.do(ctx, http.MethodPost, token, "/documents/upload", nil, &buf, mw.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a full-text query with optional filters. Preview URLs come
// back relative and are absolutized against the API origin. A filter
// value of "Todos" means no filter, matching the console's select
// defaults.
func (c *Client) Search(ctx context.Context, token, query string, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if filters.DocType != "" && filters.DocType != "Todos" {
		params.Set("doc_type", filters.DocType)
	}
	if filters.Department != "" && filters.Department != "Todos" {
		params.Set("department", filters.Department)
	}
	if filters.StartDate != "" {
		params.Set("start_date", filters.StartDate)
	}
	if filters.EndDate != "" {
		params.Set("end_date", filters.EndDate)
	}

	var out []domain.SearchResult
	if err := c.get(ctx, token, "/documents/search", params, &out); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].PreviewURL = c.absolutize(out[i].PreviewURL)
	}
	return out, nil
}

// DocumentTypes returns the document type vocabulary for filter selects.
func (c *Client) DocumentTypes(ctx context.Context, token string) ([]string, error) {
	var out []string
	if err := c.get(ctx, token, "/documents/types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteDocument removes a document and its pages.
func (c *Client) DeleteDocument(ctx context.Context, token string, id int64) error {
	return c.del(ctx, token, fmt.Sprintf("/documents/%d", id), nil)
}

// Chat sends a message to the per-document AI chat.
func (c *Client) Chat(ctx context.Context, token string, id int64, message string) (*domain.ChatReply, error) {
	body := map[string]string{"message": message}
	var out domain.ChatReply
	if err := c.postJSON(ctx, token, fmt.Sprintf("/documents/%d/chat", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PageMetadata fetches the OCR words of one page, boxes in natural-image
// pixel coordinates.
func (c *Client) PageMetadata(ctx context.Context, token string, id int64, page int) ([]domain.OCRWord, error) {
	var out []domain.OCRWord
	if err := c.get(ctx, token, fmt.Sprintf("/documents/%d/pages/%d/metadata", id, page), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentLinks lists the public share links issued for a document.
func (c *Client) DocumentLinks(ctx context.Context, token string, id int64) ([]domain.ShareLink, error) {
	var out []domain.ShareLink
	if err := c.get(ctx, token, fmt.Sprintf("/documents/%d/links", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateShareLink issues a public link expiring after the given number of
// hours.
func (c *Client) CreateShareLink(ctx context.Context, token string, id int64, hours int) (*domain.ShareLink, error) {
	params := url.Values{}
	params.Set("hours", fmt.Sprint(hours))
	var out domain.ShareLink
	if err := c.post(ctx, token, fmt.Sprintf("/public/share/%d", id), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublishDocument makes a document permanently public and returns its
// link. Unlike CreateShareLink the result never expires; unpublishing is
// a backend-side operation.
func (c *Client) PublishDocument(ctx context.Context, token string, id int64) (*domain.ShareLink, error) {
	var out domain.ShareLink
	if err := c.post(ctx, token, fmt.Sprintf("/public/publish/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadURL builds the original-file download URL for a page.
func (c *Client) DownloadURL(tenantID, docID int64, page int) string {
	return fmt.Sprintf("%s/documents/download/%d/%d/%d", c.baseURL, tenantID, docID, page)
}

// absolutize prefixes a relative backend URL with the API origin.
func (c *Client) absolutize(u string) string {
	if u == "" || strings.Contains(u, "://") {
		return u
	}
	return c.baseURL + u
}
