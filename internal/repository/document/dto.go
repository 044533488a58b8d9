package document

import (
	"encoding/json"
	"fmt"
	"time"

	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
)

// docJSON is the persisted JSON shape of a document.
type docJSON struct {
	ID         string      `json:"id"`
	Title      string      `json:"title,omitempty"`
	Summary    string      `json:"summary,omitempty"`
	Content    string      `json:"content,omitempty"`
	Tags       []string    `json:"tags,omitempty"`
	Department string      `json:"department,omitempty"`
	Type       string      `json:"type,omitempty"`
	Language   string      `json:"language,omitempty"`
	Status     string      `json:"status,omitempty"`
	Tables     []tableJSON `json:"tables_data,omitempty"`
	Source     string      `json:"source,omitempty"`
	Starred    bool        `json:"starred"`
	UploadedAt time.Time   `json:"uploaded_at"`
}

type tableJSON struct {
	Caption string     `json:"caption"`
	Data    [][]string `json:"data"`
}

func toJSON(doc *domdoc.Document) docJSON {
	tables := make([]tableJSON, len(doc.Tables()))
	for i, tb := range doc.Tables() {
		tables[i] = tableJSON{Caption: tb.Caption, Data: tb.Data}
	}
	return docJSON{
		ID:         doc.ID(),
		Title:      doc.Title(),
		Summary:    doc.Summary(),
		Content:    doc.Content(),
		Tags:       doc.Tags(),
		Department: doc.Department(),
		Type:       doc.DocType(),
		Language:   doc.Language(),
		Status:     doc.Status().String(),
		Tables:     tables,
		Source:     doc.Source(),
		Starred:    doc.Starred(),
		UploadedAt: doc.UploadedAt(),
	}
}

func fromJSON(j docJSON) domdoc.Document {
	tables := make([]domdoc.Table, len(j.Tables))
	for i, tb := range j.Tables {
		tables[i] = domdoc.Table{Caption: tb.Caption, Data: tb.Data}
	}
	return domdoc.Reconstruct(domdoc.Fields{
		ID:         j.ID,
		Title:      j.Title,
		Summary:    j.Summary,
		Content:    j.Content,
		Tags:       j.Tags,
		Department: j.Department,
		DocType:    j.Type,
		Language:   j.Language,
		Status:     domdoc.Status(j.Status),
		Tables:     tables,
		Source:     j.Source,
		Starred:    j.Starred,
		UploadedAt: j.UploadedAt,
	})
}

// parseJSONGetResult decodes a JSON.GET "$" response, which wraps the
// document in a single-element array.
func parseJSONGetResult(raw []byte) (domdoc.Document, error) {
	var docs []docJSON
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domdoc.Document{}, fmt.Errorf("unmarshal document: %w", err)
	}
	if len(docs) == 0 {
		return domdoc.Document{}, fmt.Errorf("empty JSON.GET result")
	}
	return fromJSON(docs[0]), nil
}
