package cache

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
)

func TestExporter_Export(t *testing.T) {
	c := NewInMemoryCache(3600)
	c.Set("hash1:en:es_ES:markdown", "Hola")
	c.Set("hash2:en:es_ES:markdown", "Mundo")

	exporter := NewExporter(c)
	var buf bytes.Buffer

	if err := exporter.Export(&buf, map[string]string{"target": "es_ES"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var export ExportFormat
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("Failed to parse export: %v", err)
	}

	if export.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", export.Version)
	}
	if len(export.Entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(export.Entries))
	}
	if export.Metadata["target"] != "es_ES" {
		t.Errorf("Expected metadata target=es_ES, got %v", export.Metadata)
	}
}

func TestExporter_UnsupportedBackend(t *testing.T) {
	db, _ := redismock.NewClientMock()
	defer db.Close()

	exporter := NewExporter(NewRedisCacheFromClient(db, 0, "test:"))

	var buf bytes.Buffer
	if err := exporter.Export(&buf, nil); err == nil {
		t.Error("Expected error for backend without export support")
	}
}

func TestImporter_Import(t *testing.T) {
	jsonData := `{
		"version": "1.0",
		"exported_at": "2026-01-01T00:00:00Z",
		"entries": [
			{"key": "hash1:en:es_ES:markdown", "value": "Hola"},
			{"key": "hash2:en:es_ES:markdown", "value": "Mundo"}
		],
		"metadata": {"target": "es_ES"}
	}`

	c := NewInMemoryCache(3600)
	importer := NewImporter(c)

	result, err := importer.Import(strings.NewReader(jsonData))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 2 {
		t.Errorf("Expected 2 imported, got %d", result.Imported)
	}
	if result.Failed != 0 {
		t.Errorf("Expected 0 failed, got %d", result.Failed)
	}

	if val, ok := c.Get("hash1:en:es_ES:markdown"); !ok || val != "Hola" {
		t.Errorf("Imported entry missing or wrong: %q", val)
	}
}

func TestImporter_InvalidJSON(t *testing.T) {
	importer := NewImporter(NewInMemoryCache(3600))

	if _, err := importer.Import(strings.NewReader("not json")); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestExportImport_FileRoundTrip(t *testing.T) {
	src := NewInMemoryCache(3600)
	src.Set("hash1:en:es_ES:markdown", "Hola")
	src.Set("hash2:en:fr_FR:plaintext", "Bonjour")

	path := filepath.Join(t.TempDir(), "memory.json")

	if err := NewExporter(src).ExportToFile(path, nil); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	dst := NewInMemoryCache(3600)
	result, err := NewImporter(dst).ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}

	if result.Imported != 2 {
		t.Errorf("Expected 2 imported, got %d", result.Imported)
	}
	if val, ok := dst.Get("hash2:en:fr_FR:plaintext"); !ok || val != "Bonjour" {
		t.Errorf("Round-tripped entry missing or wrong: %q", val)
	}
}

func TestExporter_EmptyCache(t *testing.T) {
	exporter := NewExporter(NewInMemoryCache(3600))

	var buf bytes.Buffer
	if err := exporter.Export(&buf, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var export ExportFormat
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("Failed to parse export: %v", err)
	}
	if len(export.Entries) != 0 {
		t.Errorf("Expected 0 entries for empty cache, got %d", len(export.Entries))
	}
}
