package utils

import (
	"regexp"
)

// Conditional blocks are rewritten in a single pass, so blocks cannot nest.
// A nested or unterminated block is left for the caller to see literally.
var (
	condBlockRegex = regexp.MustCompile(`(?s)\{\{#if (\w+)\}\}(.*?)\{\{/if\}\}`)
	varTokenRegex  = regexp.MustCompile(`\{\{(\w+)\}\}`)
)

// RenderTemplate substitutes vars into tpl. Two passes in fixed order:
// {{#if name}}...{{/if}} blocks are kept when vars[name] is non-empty and
// removed otherwise, then every {{name}} token is replaced by vars[name]
// (empty string when absent). Output is a pure function of the inputs.
// Values are substituted verbatim; callers must sanitize patient-supplied
// text before rendering the result as HTML.
func RenderTemplate(tpl string, vars map[string]string) string {
	out := condBlockRegex.ReplaceAllStringFunc(tpl, func(block string) string {
		sub := condBlockRegex.FindStringSubmatch(block)
		if vars[sub[1]] != "" {
			return sub[2]
		}
		return ""
	})
	return varTokenRegex.ReplaceAllStringFunc(out, func(token string) string {
		name := varTokenRegex.FindStringSubmatch(token)[1]
		return vars[name]
	})
}
