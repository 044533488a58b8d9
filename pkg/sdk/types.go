package docintel

import "time"

// Table is one extracted table.
type Table struct {
	Caption string     `json:"caption"`
	Data    [][]string `json:"data"`
}

// Document is the full document representation returned by the API.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Department string    `json:"department"`
	Type       string    `json:"type"`
	Language   string    `json:"language"`
	Status     string    `json:"status"`
	Tables     []Table   `json:"tables_data"`
	Source     string    `json:"source"`
	Starred    bool      `json:"starred"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ListFilter narrows the archive listing. Zero values mean no restriction.
type ListFilter struct {
	Search     string
	Department string
	Type       string
	Page       int
	Limit      int
}

// Pagination describes the returned page.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// DocumentList is one page of the archive listing.
type DocumentList struct {
	Documents  []Document `json:"documents"`
	Pagination Pagination `json:"pagination"`
}

// Update is a partial document update. Nil fields are left untouched.
type Update struct {
	Status  *string   `json:"status,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	Starred *bool     `json:"starred,omitempty"`
}

// SearchResult is one ranked match.
type SearchResult struct {
	Document
	Similarity float64 `json:"similarity"`
}

// Stats summarizes the archive.
type Stats struct {
	Total  int `json:"total_documents"`
	Urgent int `json:"urgent_documents"`
	Today  int `json:"today_documents"`
}
