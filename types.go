// Package godocai translates documentation trees using AI providers.
package godocai

import "time"

// DocType identifies the document format, which selects the chunk-boundary
// heuristics and the translation instruction template.
type DocType string

const (
	// DocMarkdown is Markdown content; chunking prefers heading boundaries.
	DocMarkdown DocType = "markdown"
	// DocHTML is HTML content; chunking starts at paragraph boundaries.
	DocHTML DocType = "html"
	// DocPlaintext is plain text content.
	DocPlaintext DocType = "plaintext"
)

// Outcome is the per-file result of a translation attempt.
type Outcome string

const (
	// OutcomeSuccess means every chunk of the file translated cleanly.
	OutcomeSuccess Outcome = "success"
	// OutcomeFailure means at least one chunk (or the whole document) failed;
	// a best-effort target file is still written with fallback content.
	OutcomeFailure Outcome = "failure"
	// OutcomeSkipped means the source was empty or unchanged; an empty or
	// existing target is in place and no translation call was made.
	OutcomeSkipped Outcome = "skipped"
)

// Config holds the tunable parameters of the translation pipeline. It is
// built once at process start and passed into the Translator and Runner.
type Config struct {
	SourceLang string // Source language code (default: "en")
	TargetLang string // Target language code (e.g., "es_ES", "ja_JP")

	// LargeFileThreshold is the document size in bytes above which the
	// chunker is used instead of a single translation call.
	LargeFileThreshold int

	// MaxChunkSize is the chunk size bound handed to the chunker.
	MaxChunkSize int

	// ChunkDelay is the pause between successive chunk translation calls,
	// the pipeline's guard against endpoint throttling.
	ChunkDelay time.Duration
}

// DefaultLargeFileThreshold is the default document size above which
// documents are chunked rather than translated whole.
const DefaultLargeFileThreshold = 10000

// DefaultMaxChunkSize is the default chunk size bound.
const DefaultMaxChunkSize = 8000

// DefaultChunkDelay is the default pause between chunk translation calls.
const DefaultChunkDelay = time.Second

// DefaultConfig returns a Config with the standard thresholds for the given
// language pair.
func DefaultConfig(targetLang string) Config {
	return Config{
		SourceLang:         "en",
		TargetLang:         targetLang,
		LargeFileThreshold: DefaultLargeFileThreshold,
		MaxChunkSize:       DefaultMaxChunkSize,
		ChunkDelay:         DefaultChunkDelay,
	}
}

// DocumentResult is the outcome of translating a single document.
type DocumentResult struct {
	Content      string  // Final translated (or fallback-wrapped) content
	Outcome      Outcome // Success, Failure or Skipped
	ChunkCount   int     // Number of chunks the document was split into (1 for the single-call path)
	FailedChunks int     // Chunks replaced by fallback text
	CachedChunks int     // Chunks served from the translation cache
}

// DocTypeExtensions maps file extensions to document types. Files with other
// extensions are not treated as documents by the tree walker.
var DocTypeExtensions = map[string]DocType{
	".md":       DocMarkdown,
	".markdown": DocMarkdown,
	".mdown":    DocMarkdown,
	".html":     DocHTML,
	".htm":      DocHTML,
	".txt":      DocPlaintext,
	".text":     DocPlaintext,
}
