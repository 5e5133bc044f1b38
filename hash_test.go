package godocai

import (
	"strings"
	"testing"
)

func TestHashText(t *testing.T) {
	h1 := HashText("Hello World")
	h2 := HashText("Hello World")
	h3 := HashText("Hello world")

	if h1 != h2 {
		t.Error("Same text should produce the same hash")
	}
	if h1 == h3 {
		t.Error("Different text should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Expected 64-char hex SHA-256, got %d chars", len(h1))
	}
}

func TestChunkCacheKey(t *testing.T) {
	key := ChunkCacheKey("abc123", "en", "es_ES", DocMarkdown)

	want := "abc123:en:es_ES:markdown"
	if key != want {
		t.Errorf("Expected %q, got %q", want, key)
	}

	// Keys for different doc types must not collide.
	other := ChunkCacheKey("abc123", "en", "es_ES", DocPlaintext)
	if key == other {
		t.Error("Doc type should be part of the key")
	}
}

func TestChunkCacheKey_Parts(t *testing.T) {
	key := ChunkCacheKey(HashText("chunk text"), "en_US", "ja_JP", DocHTML)
	if parts := strings.Split(key, ":"); len(parts) != 4 {
		t.Errorf("Expected 4 key parts, got %d in %q", len(parts), key)
	}
}
