package chi

import (
	"context"
	"testing"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/docintel-cloud/docintel/internal/domain"
	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
	"github.com/docintel-cloud/docintel/internal/domain/document/patch"
	documentuc "github.com/docintel-cloud/docintel/internal/usecase/document"
	healthuc "github.com/docintel-cloud/docintel/internal/usecase/health"
	intakeuc "github.com/docintel-cloud/docintel/internal/usecase/intake"
	searchuc "github.com/docintel-cloud/docintel/internal/usecase/search"
)

// fakeRepo is an in-memory document store preserving insertion order.
type fakeRepo struct {
	docs []domdoc.Document
	err  error
}

func (f *fakeRepo) Get(_ context.Context, id string) (domdoc.Document, error) {
	if f.err != nil {
		return domdoc.Document{}, f.err
	}
	for _, d := range f.docs {
		if d.ID() == id {
			return d, nil
		}
	}
	return domdoc.Document{}, domain.ErrDocumentNotFound
}

func (f *fakeRepo) All(_ context.Context) ([]domdoc.Document, error) {
	return f.docs, f.err
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range f.docs {
		if d.ID() == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return domain.ErrDocumentNotFound
}

func (f *fakeRepo) Patch(_ context.Context, id string, p patch.Patch) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range f.docs {
		if d.ID() != id {
			continue
		}
		status := d.Status()
		if p.Status() != nil {
			status = *p.Status()
		}
		tags := d.Tags()
		if p.Tags() != nil {
			tags = *p.Tags()
		}
		starred := d.Starred()
		if p.Starred() != nil {
			starred = *p.Starred()
		}
		f.docs[i] = domdoc.Reconstruct(domdoc.Fields{
			ID: d.ID(), Title: d.Title(), Summary: d.Summary(), Content: d.Content(),
			Tags: tags, Department: d.Department(), DocType: d.DocType(),
			Language: d.Language(), Status: status, Tables: d.Tables(),
			Source: d.Source(), Starred: starred, UploadedAt: d.UploadedAt(),
		})
		return nil
	}
	return domain.ErrDocumentNotFound
}

func (f *fakeRepo) Save(_ context.Context, doc *domdoc.Document) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.docs = append(f.docs, *doc)
	return true, nil
}

// textExtractor treats every upload as plain text.
type textExtractor struct{ err error }

func (e *textExtractor) Extract(_ string, data []byte) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return string(data), nil
}

type okPinger struct{ err error }

func (p *okPinger) Ping(_ context.Context) error { return p.err }

func storedDoc(t *testing.T, id, title, content string, status domdoc.Status) domdoc.Document {
	t.Helper()
	return domdoc.Reconstruct(domdoc.Fields{
		ID:         id,
		Title:      title,
		Summary:    "summary",
		Content:    content,
		Tags:       []string{"rail"},
		Department: "Operations",
		DocType:    "Report",
		Language:   "English",
		Status:     status,
		Source:     "uploaded",
		UploadedAt: time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
	})
}

// newTestRouter wires a Server with in-memory dependencies onto a chi router.
func newTestRouter(t *testing.T, repo *fakeRepo) *chirouter.Mux {
	t.Helper()

	docSvc := documentuc.New(repo)
	intakeSvc := intakeuc.New(repo, &textExtractor{}, nil)
	searchSvc := searchuc.New(repo)
	healthSvc := healthuc.New(&okPinger{}, nil)

	srv := NewServer(docSvc, intakeSvc, searchSvc, healthSvc, 32<<20, zap.NewNop())

	r := chirouter.NewRouter()
	srv.Routes(r)
	return r
}
