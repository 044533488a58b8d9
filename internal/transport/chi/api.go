package chi

import (
	"time"

	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
	domsearch "github.com/docintel-cloud/docintel/internal/domain/search"
	healthuc "github.com/docintel-cloud/docintel/internal/usecase/health"
)

// Error codes returned in the error response body.
const (
	codeBadRequest            = "bad_request"
	codeValidationFailed      = "validation_failed"
	codeDocumentNotFound      = "document_not_found"
	codeUnsupportedFileType   = "unsupported_file_type"
	codeEmptyDocument         = "empty_document"
	codeAnalysisProviderError = "analysis_provider_error"
	codeInternalError         = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TableResponse is one extracted table.
type TableResponse struct {
	Caption string     `json:"caption"`
	Data    [][]string `json:"data"`
}

// DocumentResponse is the full document representation.
type DocumentResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Summary    string          `json:"summary"`
	Content    string          `json:"content"`
	Tags       []string        `json:"tags"`
	Department string          `json:"department"`
	Type       string          `json:"type"`
	Language   string          `json:"language"`
	Status     string          `json:"status"`
	Tables     []TableResponse `json:"tables_data"`
	Source     string          `json:"source"`
	Starred    bool            `json:"starred"`
	UploadedAt time.Time       `json:"uploaded_at"`
}

// PaginationResponse describes the page of a listing.
type PaginationResponse struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// DocumentListResponse is the paginated archive listing.
type DocumentListResponse struct {
	Documents  []DocumentResponse `json:"documents"`
	Pagination PaginationResponse `json:"pagination"`
}

// UpdateDocumentRequest is the partial-update payload. Absent fields are
// left untouched.
type UpdateDocumentRequest struct {
	Status  *string   `json:"status"`
	Tags    *[]string `json:"tags"`
	Starred *bool     `json:"starred"`
}

// SearchRequest is the ranked-search payload.
type SearchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// SearchResultItem is one ranked match. Similarity is duplicated under the
// legacy "_score" key for older clients.
type SearchResultItem struct {
	DocumentResponse
	Similarity float64 `json:"similarity"`
	Score      float64 `json:"_score"`
}

// SearchResponse is the ranked-search result list.
type SearchResponse struct {
	Query   string             `json:"query"`
	Results []SearchResultItem `json:"results"`
	Total   int                `json:"total"`
}

// StatsResponse summarizes the archive.
type StatsResponse struct {
	Total  int `json:"total_documents"`
	Urgent int `json:"urgent_documents"`
	Today  int `json:"today_documents"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func documentToResponse(d *domdoc.Document) DocumentResponse {
	tables := make([]TableResponse, 0, len(d.Tables()))
	for _, tbl := range d.Tables() {
		tables = append(tables, TableResponse{Caption: tbl.Caption, Data: tbl.Data})
	}
	tags := d.Tags()
	if tags == nil {
		tags = []string{}
	}
	return DocumentResponse{
		ID:         d.ID(),
		Title:      d.Title(),
		Summary:    d.Summary(),
		Content:    d.Content(),
		Tags:       tags,
		Department: d.Department(),
		Type:       d.DocType(),
		Language:   d.Language(),
		Status:     d.Status().String(),
		Tables:     tables,
		Source:     d.Source(),
		Starred:    d.Starred(),
		UploadedAt: d.UploadedAt(),
	}
}

func searchResultToResponse(r *domsearch.Result) SearchResultItem {
	return SearchResultItem{
		DocumentResponse: documentToResponse(&r.Document),
		Similarity:       r.Similarity,
		Score:            r.Similarity,
	}
}

func healthToResponse(report healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(report.Status), Checks: checks}
}
