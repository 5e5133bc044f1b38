package godocai

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// headingPattern matches a Markdown ATX heading (1-6 '#' characters followed
// by whitespace and text) anchored at the start of a line.
var headingPattern = regexp.MustCompile(`(?m)^#{1,6}[ \t]+\S`)

// paragraphSep matches a blank-line run: a newline, optionally followed by
// whitespace-only lines, closed by a final newline.
var paragraphSep = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// forcedSplitLookback is how far back from the size boundary the forced
// splitter searches for a sentence end or a newline.
const forcedSplitLookback = 200

// SplitDocument splits text into an ordered sequence of chunks no larger
// than maxChunkSize, preferring structural boundaries in priority order:
// Markdown headings, then blank-line paragraph boundaries, then sentence
// ends, then a hard cut. Chunks are contiguous slices of the input, so
// concatenating them in order reproduces the input exactly. Non-empty input
// yields at least one chunk; empty chunks are never emitted.
func SplitDocument(text string, docType DocType, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	if text == "" {
		return nil
	}
	if len(text) <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	if docType == DocMarkdown {
		for _, section := range splitHeadings(text) {
			chunks = appendSection(chunks, section, maxChunkSize)
		}
		return chunks
	}
	return appendSection(chunks, text, maxChunkSize)
}

// splitHeadings cuts Markdown text at heading lines. Section i spans from
// heading i's start to heading i+1's start; text before the first heading is
// its own section. Text without headings comes back as a single section.
func splitHeadings(text string) []string {
	locs := headingPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	var sections []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			sections = append(sections, text[prev:loc[0]])
			prev = loc[0]
		}
	}
	sections = append(sections, text[prev:])
	return sections
}

// appendSection emits a section as a single chunk when it fits, otherwise
// hands it down to the paragraph splitter.
func appendSection(chunks []string, section string, max int) []string {
	if section == "" {
		return chunks
	}
	if len(section) <= max {
		return append(chunks, section)
	}
	return splitParagraphs(chunks, section, max)
}

// splitParagraphs greedily packs blank-line-delimited paragraphs into chunks
// of at most max bytes. Each paragraph keeps its trailing blank-line run
// attached, so chunk boundaries never drop characters. A paragraph that is
// itself oversized goes to the forced splitter.
func splitParagraphs(chunks []string, text string, max int) []string {
	seps := paragraphSep.FindAllStringIndex(text, -1)

	var units []string
	prev := 0
	for _, sep := range seps {
		units = append(units, text[prev:sep[1]])
		prev = sep[1]
	}
	if prev < len(text) {
		units = append(units, text[prev:])
	}

	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
	}

	for _, unit := range units {
		if len(unit) > max {
			flush()
			chunks = forceSplit(chunks, unit, max)
			continue
		}
		if cur.Len() > 0 && cur.Len()+len(unit) > max {
			flush()
		}
		cur.WriteString(unit)
	}
	flush()

	return chunks
}

// forceSplit cuts text that has no usable paragraph boundaries. Each cut is
// placed at a sentence end inside the lookback window if one exists, else at
// a newline, else hard at the size boundary.
func forceSplit(chunks []string, text string, max int) []string {
	for len(text) > max {
		cut := forcedCut(text, max)
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

// forcedCut picks the cut position for one forced split. The hard-cut
// fallback backs off to a rune start so multi-byte characters survive; if
// the whole window is a single rune the boundary cut is taken as-is.
func forcedCut(text string, max int) int {
	lo := max - forcedSplitLookback
	if lo < 0 {
		lo = 0
	}

	for i := max - 1; i >= lo; i-- {
		c := text[i]
		if (c == '.' || c == '!' || c == '?') && i+1 < len(text) && isSpaceByte(text[i+1]) {
			return i + 1
		}
	}

	for i := max - 1; i >= lo; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}

	cut := max
	for cut > lo && !utf8.RuneStart(text[cut]) {
		cut--
	}
	if cut == lo {
		cut = max
	}
	return cut
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
