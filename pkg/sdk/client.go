package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	httpClient *http.Client
	apiKey     string
}

// WithHTTPClient sets a custom HTTP client (timeouts, transports, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithAPIKey sets the Bearer token sent with every request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// Client is the docintel SDK entry point.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
}

// New creates a docintel Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{httpClient: http.DefaultClient}
	for _, o := range opts {
		o.apply(cfg)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: cfg.httpClient,
		apiKey:     cfg.apiKey,
	}
}

// List returns one page of documents matching the filter.
func (c *Client) List(ctx context.Context, f ListFilter) (DocumentList, error) {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Department != "" {
		q.Set("department", f.Department)
	}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	path := "/api/documents"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out DocumentList
	if err := c.do(ctx, http.MethodGet, path, nil, "", &out); err != nil {
		return DocumentList{}, err
	}
	return out, nil
}

// Upload sends a file for intake and returns the stored document.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return Document{}, fmt.Errorf("docintel: build multipart: %w", err)
	}
	if _, err := fw.Write(data); err != nil {
		return Document{}, fmt.Errorf("docintel: build multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return Document{}, fmt.Errorf("docintel: build multipart: %w", err)
	}

	var out Document
	if err := c.do(ctx, http.MethodPost, "/api/documents/upload", &buf, mw.FormDataContentType(), &out); err != nil {
		return Document{}, err
	}
	return out, nil
}

// Get returns one document by id.
func (c *Client) Get(ctx context.Context, id string) (Document, error) {
	var out Document
	if err := c.do(ctx, http.MethodGet, "/api/documents/"+url.PathEscape(id), nil, "", &out); err != nil {
		return Document{}, err
	}
	return out, nil
}

// Update applies a partial update and returns the updated document.
func (c *Client) Update(ctx context.Context, id string, u Update) (Document, error) {
	body, err := json.Marshal(u)
	if err != nil {
		return Document{}, fmt.Errorf("docintel: encode update: %w", err)
	}
	var out Document
	if err := c.do(ctx, http.MethodPut, "/api/documents/"+url.PathEscape(id),
		bytes.NewReader(body), "application/json", &out); err != nil {
		return Document{}, err
	}
	return out, nil
}

// Delete removes a document by id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/documents/"+url.PathEscape(id), nil, "", nil)
}

// SemanticSearch ranks the archive against the query and returns the topK
// best matches. topK <= 0 uses the server default.
func (c *Client) SemanticSearch(ctx context.Context, query string, topK int) ([]SearchResult, error) {
	body, err := json.Marshal(map[string]any{"query": query, "top_k": topK})
	if err != nil {
		return nil, fmt.Errorf("docintel: encode search request: %w", err)
	}

	var out struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/search/semantic",
		bytes.NewReader(body), "application/json", &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Stats returns archive counters.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, "", &out); err != nil {
		return Stats{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("docintel: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("docintel: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("docintel: decode response: %w", err)
	}
	return nil
}

func parseErrorResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}
	return apiErr
}
