package godocai

import "fmt"

// InstructionTemplate builds the translation instruction for one document
// type and language pair. The wording differs per type, but every template
// carries the same contract: translate only human-readable text, preserve
// markup and code exactly, and emit no preamble or commentary. The output
// must begin with the first translated character.
func InstructionTemplate(docType DocType, sourceLang, targetLang string) string {
	source := GetLanguageName(sourceLang)
	target := GetLanguageName(targetLang)

	header := fmt.Sprintf(`You are an expert technical translator. Translate the following document from %s to %s with the fluency of a highly educated native speaker.`, source, target)

	var rules string
	switch docType {
	case DocMarkdown:
		rules = `Rules:
- Translate only the human-readable prose.
- Preserve all Markdown syntax exactly: headings, lists, tables, emphasis, links and link targets, image references, blockquotes and horizontal rules.
- Do NOT translate code blocks, inline code, URLs, file paths, command names or front matter keys.
- Preserve the original line structure and blank lines.`
	case DocHTML:
		rules = `Rules:
- Translate only the human-readable text content.
- Preserve all HTML markup exactly: tags, attributes, class names, IDs and entities.
- Do NOT translate the content of <code>, <pre>, <script> or <style> elements, nor URLs or email addresses.
- Preserve the original whitespace between elements.`
	default:
		rules = `Rules:
- Translate the text faithfully, keeping the original tone.
- Preserve the original line breaks, indentation and blank lines.
- Do NOT translate URLs, file paths, command names or code fragments.`
	}

	footer := `Output only the translated document. No preamble, no commentary, no explanation of what you did. Begin your output with the first translated character.`

	return header + "\n\n" + rules + "\n\n" + footer
}

// FallbackMarker returns the failure marker prepended to untranslated
// content, in comment syntax appropriate for the document type.
func FallbackMarker(docType DocType) string {
	switch docType {
	case DocMarkdown, DocHTML:
		return "<!-- TRANSLATION FAILED: original content follows -->"
	default:
		return "[TRANSLATION FAILED: original content follows]"
	}
}

// Fallback wraps original text with the failure marker for its document
// type. It is substituted for a chunk or document whose translation failed.
func Fallback(text string, docType DocType) string {
	return FallbackMarker(docType) + "\n" + text
}
