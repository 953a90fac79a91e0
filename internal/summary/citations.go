package summary

import (
	"regexp"
	"strconv"
)

var citationRe = regexp.MustCompile(`\[(\d+)\]`)

// ExtractCitations returns the 1-based citation indices referenced by
// bracketed markers in the text, in order of first appearance, deduplicated.
// Markers outside [1, sourceCount] are dropped.
func ExtractCitations(text string, sourceCount int) []int {
	seen := make(map[int]bool)
	indices := []int{}
	for _, match := range citationRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(match[1])
		if err != nil || n < 1 || n > sourceCount {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		indices = append(indices, n)
	}
	return indices
}

// CitedSources maps extracted citation indices back onto the source URLs,
// preserving citation order.
func CitedSources(text string, urls []string) []string {
	sources := []string{}
	for _, n := range ExtractCitations(text, len(urls)) {
		sources = append(sources, urls[n-1])
	}
	return sources
}

// ValidateSummary reports whether a generated summary respects the output
// contract: at most three paragraphs and at least one citation marker.
func ValidateSummary(text string) bool {
	if len(splitParagraphs(text)) > maxParagraphs {
		return false
	}
	return citationRe.MatchString(text)
}
