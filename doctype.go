package godocai

import (
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// DetectDocType determines a file's document type from its extension,
// falling back to content sniffing when the extension is unknown.
func DetectDocType(path, content string) DocType {
	if dt, ok := DocTypeExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return dt
	}
	if looksLikeHTML(content) {
		return DocHTML
	}
	if headingPattern.MatchString(content) {
		return DocMarkdown
	}
	return DocPlaintext
}

// looksLikeHTML reports whether the content starts with recognizable HTML
// markup. It tokenizes a small prefix and looks for a doctype or tag before
// any substantial text.
func looksLikeHTML(content string) bool {
	const maxTokens = 32

	z := html.NewTokenizer(strings.NewReader(content))
	for i := 0; i < maxTokens; i++ {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.DoctypeToken, html.StartTagToken, html.SelfClosingTagToken:
			return true
		case html.TextToken:
			if len(strings.TrimSpace(string(z.Text()))) > 0 {
				return false
			}
		}
	}
	return false
}
