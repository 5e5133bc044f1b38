package godocai

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText computes the SHA-256 hash of the text.
func HashText(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// ChunkCacheKey builds the cache key for a single chunk translation. The key
// includes both languages and the document type, since the instruction
// template differs per type and a Markdown chunk must not collide with an
// identical plain-text chunk.
func ChunkCacheKey(hash, sourceLang, targetLang string, docType DocType) string {
	return hash + ":" + sourceLang + ":" + targetLang + ":" + string(docType)
}
