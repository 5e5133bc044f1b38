package godocai

import (
	"context"
	"strings"
	"time"
)

// Provider is the interface for AI translation backends.
type Provider interface {
	Translate(ctx context.Context, req Request) (string, error)
}

// Request contains the parameters for a single translation call.
type Request struct {
	Text       string
	DocType    DocType
	SourceLang string
	TargetLang string
}

// ChunkCache is the interface for caching chunk translations.
type ChunkCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Translator drives chunk-by-chunk document translation: it splits oversized
// documents, calls the provider once per chunk in document order, substitutes
// fallback text for failed chunks and reassembles the result.
type Translator struct {
	targetLang string
	sourceLang string
	provider   Provider
	cache      ChunkCache
	threshold  int
	chunkSize  int
	delay      time.Duration
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithSourceLang sets the source language.
func WithSourceLang(lang string) TranslatorOption {
	return func(t *Translator) {
		t.sourceLang = lang
	}
}

// WithCache sets the chunk translation cache.
func WithCache(cache ChunkCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithLargeFileThreshold sets the document size above which the chunker is
// used instead of a single translation call.
func WithLargeFileThreshold(n int) TranslatorOption {
	return func(t *Translator) {
		t.threshold = n
	}
}

// WithMaxChunkSize sets the chunk size bound handed to the chunker.
func WithMaxChunkSize(n int) TranslatorOption {
	return func(t *Translator) {
		t.chunkSize = n
	}
}

// WithChunkDelay sets the pause between successive chunk translation calls.
func WithChunkDelay(d time.Duration) TranslatorOption {
	return func(t *Translator) {
		t.delay = d
	}
}

// WithConfig applies thresholds and languages from a Config value.
func WithConfig(cfg Config) TranslatorOption {
	return func(t *Translator) {
		if cfg.SourceLang != "" {
			t.sourceLang = cfg.SourceLang
		}
		if cfg.TargetLang != "" {
			t.targetLang = cfg.TargetLang
		}
		if cfg.LargeFileThreshold > 0 {
			t.threshold = cfg.LargeFileThreshold
		}
		if cfg.MaxChunkSize > 0 {
			t.chunkSize = cfg.MaxChunkSize
		}
		if cfg.ChunkDelay >= 0 {
			t.delay = cfg.ChunkDelay
		}
	}
}

// NewTranslator creates a new Translator with the given target language and
// provider. Thresholds default to DefaultLargeFileThreshold,
// DefaultMaxChunkSize and DefaultChunkDelay.
func NewTranslator(targetLang string, provider Provider, opts ...TranslatorOption) *Translator {
	t := &Translator{
		targetLang: targetLang,
		sourceLang: "en",
		provider:   provider,
		threshold:  DefaultLargeFileThreshold,
		chunkSize:  DefaultMaxChunkSize,
		delay:      DefaultChunkDelay,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// TranslateDocument translates one document. Documents at or below the
// large-file threshold go to the provider in a single call; larger documents
// are chunked and translated chunk by chunk, in order, with the configured
// pause between live calls. A failed chunk is replaced by fallback-wrapped
// original text and the remaining chunks still translate; the document
// outcome is OutcomeSuccess only if every chunk succeeded.
//
// Empty or whitespace-only input short-circuits to an empty result with
// OutcomeSkipped and no provider call. The returned error is non-nil only
// for context cancellation; provider failures surface through the outcome.
func (t *Translator) TranslateDocument(ctx context.Context, text string, docType DocType) (*DocumentResult, error) {
	if strings.TrimSpace(text) == "" {
		return &DocumentResult{Content: "", Outcome: OutcomeSkipped}, nil
	}

	var chunks []string
	if len(text) <= t.threshold {
		chunks = []string{text}
	} else {
		chunks = SplitDocument(text, docType, t.chunkSize)
	}

	pieces := make([]string, 0, len(chunks))
	failed := 0
	cached := 0
	calledProvider := false

	for _, chunk := range chunks {
		key := ChunkCacheKey(HashText(chunk), t.sourceLang, t.targetLang, docType)
		if t.cache != nil {
			if hit, ok := t.cache.Get(key); ok {
				pieces = append(pieces, hit)
				cached++
				continue
			}
		}

		// Pause between live calls, never before the first or after the last.
		if calledProvider {
			if err := sleepCtx(ctx, t.delay); err != nil {
				return nil, err
			}
		}
		calledProvider = true

		out, err := t.provider.Translate(ctx, Request{
			Text:       chunk,
			DocType:    docType,
			SourceLang: t.sourceLang,
			TargetLang: t.targetLang,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			pieces = append(pieces, Fallback(chunk, docType))
			failed++
			continue
		}

		pieces = append(pieces, out)
		if t.cache != nil {
			_ = t.cache.Set(key, out) // Ignore cache set errors
		}
	}

	content := joinChunkResults(pieces)

	outcome := OutcomeSuccess
	if failed > 0 {
		outcome = OutcomeFailure
	}

	if docType == DocHTML && outcome == OutcomeSuccess {
		content = SetHTMLAttributes(content, t.targetLang)
	}

	return &DocumentResult{
		Content:      content,
		Outcome:      outcome,
		ChunkCount:   len(chunks),
		FailedChunks: failed,
		CachedChunks: cached,
	}, nil
}

// TargetLang returns the target language.
func (t *Translator) TargetLang() string {
	return t.targetLang
}

// SourceLang returns the source language.
func (t *Translator) SourceLang() string {
	return t.sourceLang
}

// IsSourceLang reports whether the target language matches the source
// language. When true, translation can be bypassed.
func (t *Translator) IsSourceLang() bool {
	return IsSameLanguage(t.sourceLang, t.targetLang)
}

// joinChunkResults joins chunk translations with a blank line. All pieces
// but the last drop trailing whitespace first, so chunks that carried their
// own blank-line runs do not double up; the last piece is kept as-is to
// preserve a document-final newline.
func joinChunkResults(pieces []string) string {
	if len(pieces) == 1 {
		return pieces[0]
	}
	joined := make([]string, len(pieces))
	for i, p := range pieces {
		if i < len(pieces)-1 {
			p = strings.TrimRight(p, " \t\n")
		}
		joined[i] = p
	}
	return strings.Join(joined, "\n\n")
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
