package langstore

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// Replacements maps placeholder names to substitution values.
type Replacements map[string]any

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// ReplacePlaceholders substitutes {name} tokens in the template with values
// from the replacements map. A token whose name is missing from the map, or
// maps to nil, is left in the output verbatim, braces included. The template
// is scanned exactly once: substituted values are inserted as-is and never
// re-scanned for further placeholders.
//
// Example:
//
//	template: "Hello, {name}! You have {count} messages."
//	replacements: Replacements{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, replacements Replacements) string {
	if len(replacements) == 0 || !strings.Contains(template, "{") {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := replacements[name]
		if !ok || value == nil {
			return token
		}
		return fmt.Sprint(value)
	})
}

func replaceWithMerge(template string, replacements ...Replacements) string {
	switch len(replacements) {
	case 0:
		return template
	case 1:
		return ReplacePlaceholders(template, replacements[0])
	}

	merged := make(Replacements)
	for _, r := range replacements {
		maps.Copy(merged, r)
	}
	return ReplacePlaceholders(template, merged)
}
