package chat

import (
	"regexp"
	"strings"
)

// inlineRollPattern matches [[/sc expr]] or [[#sc expr]] with an optional {flavor}
var inlineRollPattern = regexp.MustCompile(`(?i)\[\[(?:/|#)sc ([^\]]+)\]\](?:\{([^}]+)\})?`)

// InlineRoll is one success check embedded in a message
type InlineRoll struct {
	Source     string
	Expression string
	Flavor     string
}

// Label is the text a button for the roll shows
func (r InlineRoll) Label() string {
	if r.Flavor != "" {
		return r.Flavor
	}
	return r.Expression
}

// FindInlineRolls returns the inline rolls in content, in order
func FindInlineRolls(content string) []InlineRoll {
	matches := inlineRollPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	rolls := make([]InlineRoll, 0, len(matches))
	for _, m := range matches {
		rolls = append(rolls, InlineRoll{
			Source:     m[0],
			Expression: strings.TrimSpace(m[1]),
			Flavor:     strings.TrimSpace(m[2]),
		})
	}
	return rolls
}

// RewriteInlineRolls replaces every inline roll with its label in bold
func RewriteInlineRolls(content string) string {
	return inlineRollPattern.ReplaceAllStringFunc(content, func(source string) string {
		m := inlineRollPattern.FindStringSubmatch(source)
		roll := InlineRoll{Expression: strings.TrimSpace(m[1]), Flavor: strings.TrimSpace(m[2])}
		return "**" + roll.Label() + "**"
	})
}
