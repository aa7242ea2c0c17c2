package utils

import "strings"

// SplitParagraphs splits raw knowledge-base text into paragraph chunks,
// dropping fragments shorter than minRunes. Paragraph boundaries are
// blank lines, matching how the source material is formatted.
func SplitParagraphs(text string, minRunes int) []string {
	var chunks []string
	for _, part := range strings.Split(text, "\n\n") {
		part = strings.TrimSpace(part)
		if len([]rune(part)) > minRunes {
			chunks = append(chunks, part)
		}
	}
	return chunks
}
