package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"stillpoint.dev/still/pkg/journal"
)

const (
	// DocumentKey is the versioned slot holding the whole journal document.
	DocumentKey = "journal-v2"
	// LegacyDocumentKey is read as a fallback source when the versioned slot
	// is absent. It is never written.
	LegacyDocumentKey = "journal"
)

// Persistence defines the persistence contract for the journal document. The
// document is read and written wholesale; last writer wins.
type Persistence interface {
	Load(ctx context.Context) *journal.Document
	Save(doc *journal.Document) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the persisted document. An absent or malformed document yields
// the default empty state; corruption is reported on stderr, never raised.
func (p *persistence) Load(_ context.Context) *journal.Document {
	raw, err := p.d.Read(DocumentKey)
	if err != nil {
		raw, err = p.d.Read(LegacyDocumentKey)
	}
	if err != nil || len(raw) == 0 {
		return journal.NewDocument()
	}

	doc := &journal.Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		fmt.Fprintf(os.Stderr, "store: unreadable journal document, starting fresh: %v\n", err)
		return journal.NewDocument()
	}
	doc.Normalize()
	return doc
}

// Save serializes the full document into the versioned slot as one write.
func (p *persistence) Save(doc *journal.Document) error {
	if doc == nil {
		return fmt.Errorf("store: nil document")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: marshal journal document: %w", err)
	}
	if err := p.d.Write(DocumentKey, data); err != nil {
		return fmt.Errorf("store: write journal document: %w", err)
	}
	return nil
}
