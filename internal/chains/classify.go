package chains

import (
	"fmt"
	"strings"
)

// Classify resolves the chain for one trade record. Layers apply in strict
// order: exact 8-digit code, keyword scan over the description, chapter
// default. Records that match no layer land on Other.
//
// An empty description never matches a keyword rule, so description-less
// records fall straight through to the chapter layer.
func Classify(code, description string, chapter int) Chain {
	if c, ok := exactCodes[code]; ok {
		return c
	}
	if description != "" {
		desc := strings.ToLower(description)
		for _, rule := range keywordRules {
			for _, kw := range rule.keywords {
				if strings.Contains(desc, kw) {
					return rule.chain
				}
			}
		}
	}
	if c, ok := chapterChains[chapter]; ok {
		return c
	}
	return Other
}

// ClassifyHeading resolves the chain for a 4-digit SH4 heading, falling back
// to the heading's chapter when the heading itself is unmapped.
func ClassifyHeading(heading string) Chain {
	if c, ok := headingChains[heading]; ok {
		return c
	}
	if len(heading) >= 2 {
		var chapter int
		if _, err := fmt.Sscanf(heading[:2], "%d", &chapter); err == nil {
			if c, ok := chapterChains[chapter]; ok {
				return c
			}
		}
	}
	return Other
}

// HeadingDescription returns the display description for an SH4 heading,
// or a generic placeholder when the heading is unknown.
func HeadingDescription(heading string) string {
	if d, ok := headingNames[heading]; ok {
		return d
	}
	return fmt.Sprintf("Produto %s", heading)
}

// ChapterName returns the display label for an NCM chapter.
func ChapterName(chapter int) string {
	if n, ok := chapterNames[chapter]; ok {
		return n
	}
	return fmt.Sprintf("Cap. %02d", chapter)
}
