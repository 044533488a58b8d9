// Package openai implements the document metadata analyzer on top of an
// OpenAI-compatible chat completion API.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/docintel-cloud/docintel/internal/domain"
	"github.com/docintel-cloud/docintel/internal/domain/analysis"
	"github.com/docintel-cloud/docintel/internal/domain/document"
	"github.com/docintel-cloud/docintel/internal/metrics"
)

const systemPrompt = `You are a document analyst for a railway operations archive. ` +
	`Given a document's filename and text, respond with a single JSON object containing exactly these fields:
  "title": a concise human-readable document title,
  "summary": a 3-4 sentence summary of the document,
  "tags": an array of 3-6 short lowercase topic tags,
  "department": the department this document most likely belongs to (e.g. "Operations", "Engineering", "Finance", "Human Resources"),
  "type": the document type (e.g. "Safety Circular", "Maintenance Report", "Policy Document", "Invoice"),
  "language": the primary language of the document,
  "status": one of "urgent" (safety-critical or deadline-bound), "approved" (finalized or signed off), "review" (everything else),
  "tables_data": an array of tables found in the document, each {"caption": string, "data": array of rows, each row an array of cell strings}; empty array if none.
Respond with the JSON object only.`

// Analyzer produces structured document metadata via a chat completion API.
type Analyzer struct {
	client        *openai.Client
	model         string
	truncateChars int
	logger        *zap.Logger
}

// Config holds the analysis provider settings.
type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	TruncateChars int
	Logger        *zap.Logger
}

// NewAnalyzer creates an OpenAI-compatible analysis provider.
func NewAnalyzer(cfg *Config) *Analyzer {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Analyzer{
		client:        openai.NewClientWithConfig(clientCfg),
		model:         cfg.Model,
		truncateChars: cfg.TruncateChars,
		logger:        cfg.Logger,
	}
}

// recordJSON mirrors the JSON object the model is instructed to emit.
type recordJSON struct {
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	Tags       []string `json:"tags"`
	Department string `json:"department"`
	Type       string `json:"type"`
	Language   string `json:"language"`
	Status     string `json:"status"`
	Tables     []struct {
		Caption string     `json:"caption"`
		Data    [][]string `json:"data"`
	} `json:"tables_data"`
}

// Analyze implements analysis.Analyzer. Content beyond the truncation limit
// is cut before the request to keep prompts inside the model context window.
func (a *Analyzer) Analyze(ctx context.Context, title, content string) (analysis.Record, error) {
	if a.truncateChars > 0 && len(content) > a.truncateChars {
		content = content[:a.truncateChars]
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Filename: " + title + "\n\nDocument text:\n" + content},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	start := time.Now()

	resp, err := a.client.CreateChatCompletion(ctx, req)

	duration := time.Since(start)

	if err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues(a.model, "error").Inc()
		metrics.AnalysisErrorsTotal.WithLabelValues(a.model, "api_error").Inc()
		return analysis.Record{}, parseAPIError(err)
	}

	if len(resp.Choices) == 0 {
		metrics.AnalysisRequestsTotal.WithLabelValues(a.model, "error").Inc()
		metrics.AnalysisErrorsTotal.WithLabelValues(a.model, "empty_response").Inc()
		return analysis.Record{}, fmt.Errorf("empty analysis response: %w", domain.ErrAnalysisProviderError)
	}

	rec, err := parseRecord(resp.Choices[0].Message.Content)
	if err != nil {
		metrics.AnalysisRequestsTotal.WithLabelValues(a.model, "error").Inc()
		metrics.AnalysisErrorsTotal.WithLabelValues(a.model, "bad_payload").Inc()
		return analysis.Record{}, fmt.Errorf("parse analysis payload: %v: %w", err, domain.ErrAnalysisProviderError)
	}

	metrics.AnalysisRequestsTotal.WithLabelValues(a.model, "success").Inc()
	metrics.AnalysisRequestDuration.WithLabelValues(a.model).Observe(duration.Seconds())

	if resp.Usage.TotalTokens > 0 {
		metrics.AnalysisTokensTotal.WithLabelValues(a.model, "prompt").Add(float64(resp.Usage.PromptTokens))
		metrics.AnalysisTokensTotal.WithLabelValues(a.model, "completion").Add(float64(resp.Usage.CompletionTokens))
		metrics.AnalysisTokensTotal.WithLabelValues(a.model, "total").Add(float64(resp.Usage.TotalTokens))
	}

	return rec, nil
}

// HealthCheck verifies API availability via ListModels (free endpoint).
func (a *Analyzer) HealthCheck(ctx context.Context) error {
	if _, err := a.client.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}

// parseRecord decodes the model payload into a domain record. An unknown
// status value does not fail the whole analysis, it degrades to review.
func parseRecord(payload string) (analysis.Record, error) {
	var rj recordJSON
	if err := json.Unmarshal([]byte(payload), &rj); err != nil {
		return analysis.Record{}, err
	}
	if rj.Title == "" {
		return analysis.Record{}, errors.New("missing title")
	}

	status, err := document.ParseStatus(rj.Status)
	if err != nil {
		status = document.StatusReview
	}

	rec := analysis.Record{
		Title:      rj.Title,
		Summary:    rj.Summary,
		Tags:       rj.Tags,
		Department: rj.Department,
		DocType:    rj.Type,
		Language:   rj.Language,
		Status:     status,
	}
	if rec.Language == "" {
		rec.Language = "English"
	}
	for _, tbl := range rj.Tables {
		rec.Tables = append(rec.Tables, document.Table{Caption: tbl.Caption, Data: tbl.Data})
	}
	return rec, nil
}

// parseAPIError extracts a human-readable error from the API response.
// All errors are wrapped with domain.ErrAnalysisProviderError for correct 502 mapping.
func parseAPIError(err error) error {
	wrap := domain.ErrAnalysisProviderError

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := extractDetail(reqErr.Body)
		if detail != "" {
			return fmt.Errorf("analysis API error %d: %s: %w",
				reqErr.HTTPStatusCode, detail, wrap)
		}
		return fmt.Errorf("analysis API error %d: %s: %w",
			reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("analysis API error %d: %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	return fmt.Errorf("analysis request failed: %w", wrap)
}

// extractDetail extracts the "detail" field from a JSON error body.
func extractDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &parsed) == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return ""
}
