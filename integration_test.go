package godocai

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZaguanLabs/godocai/cache"
)

// TestIntegration_TreeTranslation exercises the full pipeline: walk, chunk,
// translate via a mock provider with a real in-memory cache, and write the
// mirrored target tree.
func TestIntegration_TreeTranslation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README.md"), "# Intro\n\nHello.")
	writeFile(t, filepath.Join(root, "guide", "install.md"), "Hello.")
	writeFile(t, filepath.Join(root, "guide", "empty.txt"), "")
	writeFile(t, filepath.Join(root, "assets", "logo.svg"), "<svg/>")

	provider := newMockProvider()
	provider.translations["# Intro\n\nHello."] = "# Introducción\n\nHola."
	provider.translations["Hello."] = "Hola."

	tr := NewTranslator("es_ES", provider,
		WithCache(cache.NewInMemoryCache(0)),
		WithChunkDelay(0),
	)
	runner := NewRunner(tr)

	summary, err := runner.Run(context.Background(), root, "es")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Files != 3 {
		t.Errorf("Expected 3 documents visited, got %d", summary.Files)
	}
	if summary.Succeeded != 2 || summary.Skipped != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}

	data, err := os.ReadFile(filepath.Join(root, "es", "README.md"))
	if err != nil {
		t.Fatalf("Reading target: %v", err)
	}
	if string(data) != "# Introducción\n\nHola." {
		t.Errorf("Unexpected translated content: %q", string(data))
	}

	// Non-document files are not mirrored.
	if _, err := os.Stat(filepath.Join(root, "es", "assets", "logo.svg")); err == nil {
		t.Error("Expected non-document file to be ignored")
	}
}

// TestIntegration_CacheAcrossDocuments verifies that identical chunks in
// different files are translated once and then served from the cache.
func TestIntegration_CacheAcrossDocuments(t *testing.T) {
	root := t.TempDir()
	shared := "This exact paragraph appears in two files."
	writeFile(t, filepath.Join(root, "a.txt"), shared)
	writeFile(t, filepath.Join(root, "b.txt"), shared)

	provider := newMockProvider()
	tr := NewTranslator("es_ES", provider,
		WithCache(cache.NewInMemoryCache(0)),
		WithChunkDelay(0),
	)
	runner := NewRunner(tr)

	if _, err := runner.Run(context.Background(), root, "es"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if provider.callCount != 1 {
		t.Errorf("Expected shared content translated once, got %d calls", provider.callCount)
	}

	dataA, _ := os.ReadFile(filepath.Join(root, "es", "a.txt"))
	dataB, _ := os.ReadFile(filepath.Join(root, "es", "b.txt"))
	if string(dataA) != string(dataB) {
		t.Error("Expected identical output for identical input")
	}
}

// TestIntegration_LargeDocumentChunked pushes a document past the threshold
// and checks the reassembled output covers every chunk in order.
func TestIntegration_LargeDocumentChunked(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("## Heading\n\n")
		b.WriteString(strings.Repeat("Documentation sentence for the chunker. ", 12))
		b.WriteString("\n\n")
	}
	doc := b.String()
	if len(doc) <= DefaultLargeFileThreshold {
		t.Fatalf("Test document too small: %d bytes", len(doc))
	}

	provider := newMockProvider()
	tr := NewTranslator("es_ES", provider, WithChunkDelay(0))

	res, err := tr.TranslateDocument(context.Background(), doc, DocMarkdown)
	if err != nil {
		t.Fatalf("TranslateDocument failed: %v", err)
	}

	if res.ChunkCount < 2 {
		t.Fatalf("Expected chunked path, got %d chunks", res.ChunkCount)
	}
	if res.ChunkCount != provider.callCount {
		t.Errorf("Expected one call per chunk, got %d calls for %d chunks", provider.callCount, res.ChunkCount)
	}
	if res.Outcome != OutcomeSuccess {
		t.Errorf("Expected success, got %s", res.Outcome)
	}

	// The mock brackets unknown text, so every chunk must appear in order.
	offset := 0
	for i, req := range provider.requests {
		idx := strings.Index(res.Content[offset:], "["+req.Text+"]")
		if idx < 0 {
			t.Fatalf("Chunk %d missing or out of order in output", i)
		}
		offset += idx
	}
}
