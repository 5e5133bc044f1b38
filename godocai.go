// Package godocai translates documentation trees using AI providers.
//
// Godocai walks a directory of Markdown, HTML and plain-text documents,
// splits oversized files into translation-safe chunks, sends each chunk to
// an AI provider (OpenAI, etc.) and reassembles the translated output into
// a mirrored target tree that preserves the original formatting.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/godocai"
//	    "github.com/ZaguanLabs/godocai/cache"
//	    "github.com/ZaguanLabs/godocai/provider"
//	)
//
//	func main() {
//	    // Create provider
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    // Create translator
//	    t := godocai.NewTranslator("es_ES", p,
//	        godocai.WithCache(cache.NewInMemoryCache(3600)),
//	    )
//
//	    // Translate a single document
//	    res, err := t.TranslateDocument(context.Background(), "# Hello\n\nWorld.", godocai.DocMarkdown)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(res.Content)
//
//	    // Or translate a whole tree
//	    runner := godocai.NewRunner(t)
//	    summary, err := runner.Run(context.Background(), "./docs", "es")
//	    ...
//	}
package godocai
