// Package document persists document records as RedisJSON values.
package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/docintel-cloud/docintel/internal/db"
	"github.com/docintel-cloud/docintel/internal/domain"
	domdoc "github.com/docintel-cloud/docintel/internal/domain/document"
	"github.com/docintel-cloud/docintel/internal/domain/document/patch"
)

const keyNamespace = domain.KeyPrefix + "documents:"

// store is the consumer interface for documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONGetMulti(ctx context.Context, keys []string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the document repository over a JSON store.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Save creates or updates a document. Returns true if created.
func (r *Repo) Save(ctx context.Context, doc *domdoc.Document) (bool, error) {
	key := docKey(doc.ID())
	data, err := json.Marshal(toJSON(doc))
	if err != nil {
		return false, fmt.Errorf("marshal document: %w", err)
	}

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}

	return !exists, nil
}

// Get returns a document by ID.
func (r *Repo) Get(ctx context.Context, id string) (domdoc.Document, error) {
	raw, err := r.store.JSONGet(ctx, docKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domdoc.Document{}, domain.ErrDocumentNotFound
		}
		return domdoc.Document{}, fmt.Errorf("json.get %s: %w", docKey(id), err)
	}
	return parseJSONGetResult(raw)
}

// Delete removes a document.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := docKey(id)

	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrDocumentNotFound
	}

	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Patch performs a partial update: JSON.GET, merge fields, JSON.SET.
func (r *Repo) Patch(ctx context.Context, id string, p patch.Patch) error {
	key := docKey(id)

	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domain.ErrDocumentNotFound
		}
		return fmt.Errorf("json.get %s: %w", key, err)
	}

	var docs []map[string]any
	if err := json.Unmarshal(raw, &docs); err != nil {
		return fmt.Errorf("unmarshal for patch: %w", err)
	}
	if len(docs) == 0 {
		return domain.ErrDocumentNotFound
	}

	current := docs[0]
	applyPatchFields(current, p)

	data, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("marshal patched doc: %w", err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// All returns every stored document via SCAN and a pipelined fetch.
// Ordering follows SCAN iteration and carries no guarantee.
func (r *Repo) All(ctx context.Context) ([]domdoc.Document, error) {
	keys, err := r.store.Scan(ctx, keyNamespace+"*")
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	raws, err := r.store.JSONGetMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("fetch documents: %w", err)
	}

	docs := make([]domdoc.Document, 0, len(raws))
	for i, raw := range raws {
		if raw == nil {
			// Key deleted between SCAN and fetch.
			continue
		}
		doc, err := parseJSONGetResult(raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Count returns the number of stored documents.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, keyNamespace+"*")
	if err != nil {
		return 0, fmt.Errorf("scan documents: %w", err)
	}
	return len(keys), nil
}

func docKey(id string) string {
	return keyNamespace + id
}

// applyPatchFields merges patch fields into the current JSON map in-place.
func applyPatchFields(current map[string]any, p patch.Patch) {
	if p.Status() != nil {
		current["status"] = p.Status().String()
	}
	if p.Tags() != nil {
		current["tags"] = *p.Tags()
	}
	if p.Starred() != nil {
		current["starred"] = *p.Starred()
	}
}
