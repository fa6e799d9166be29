package extract

import (
	"regexp"
	"sort"
	"strings"
)

// Common heading patterns for restaurant menus.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\n\s*(?:APPETIZERS?|STARTERS?|ANTIPASTI)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:MAIN\s*COURSES?|ENTREES?|MAINS?)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:DESSERTS?|DOLCI)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:BEVERAGES?|DRINKS?|BEVANDE)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:SALADS?|INSALATE)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:SOUPS?|ZUPPE)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:PASTA|PASTAS?)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:PIZZA|PIZZAS?)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:SANDWICHES?|PANINI)\s*\n`),
	regexp.MustCompile(`(?i)\n\s*(?:SPECIALS?|SPECIALITIES?)\s*\n`),
}

// splitSections splits extracted menu text into logical sections at recognized
// heading boundaries. Falls back to paragraph splitting when no headings match.
func splitSections(text string) []string {
	var starts []int
	for _, pattern := range sectionPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			starts = append(starts, loc[0])
		}
	}

	if len(starts) == 0 {
		return splitParagraphs(text)
	}

	sort.Ints(starts)

	sections := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		if section := strings.TrimSpace(text[start:end]); section != "" {
			sections = append(sections, section)
		}
	}

	return sections
}

func splitParagraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sections = append(sections, p)
		}
	}
	if len(sections) == 0 && strings.TrimSpace(text) != "" {
		sections = []string{strings.TrimSpace(text)}
	}
	return sections
}
