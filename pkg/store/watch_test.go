package store

import (
	"context"
	"testing"
	"time"

	"stillpoint.dev/still/pkg/journal"
)

func TestPersistenceWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(&testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	doc := journal.NewDocument()
	doc.PendingIntention = "hello"
	if err := p.Save(doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case _, ok := <-ch:
		if !ok {
			t.Fatal("watch channel closed unexpectedly")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for document change event")
	}
}
