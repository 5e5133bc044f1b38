package godocai

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SetHTMLAttributes sets lang and dir attributes on the <html> tag of a
// translated document so browsers render it with the right direction.
// Fragments without an <html> tag are returned unchanged, as is anything
// that fails to parse.
func SetHTMLAttributes(content, targetLang string) string {
	// goquery wraps fragments in html/body on parse; only rewrite content
	// that already carries a document shell.
	if !strings.Contains(strings.ToLower(content), "<html") {
		return content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() == 0 {
		return content
	}
	htmlTag.SetAttr("lang", ToHTMLLang(targetLang))
	htmlTag.SetAttr("dir", GetDirection(targetLang))

	result, err := doc.Html()
	if err != nil {
		return content
	}
	return result
}
