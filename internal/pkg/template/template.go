// Package template holds the fixed catalog of notification text blocks
// and performs literal {key} substitution. Rendering is deliberately
// fail-open: an unknown template name yields an empty string, a
// placeholder without a matching variable stays visible in the output,
// and extra variables are ignored. A missing field therefore degrades to
// a visible placeholder instead of blocking the whole notification,
// which is why html/template (error on missing data, HTML escaping) is
// not used here.
package template

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{[a-z0-9_]+\}`)

// Render renders the named body template with the given variables.
func Render(name string, vars map[string]string) string {
	t, ok := catalog[name]
	if !ok {
		return ""
	}
	return substitute(t.Body, vars)
}

// RenderSubject renders the named template's subject line.
func RenderSubject(name string, vars map[string]string) string {
	t, ok := catalog[name]
	if !ok {
		return ""
	}
	return substitute(t.Subject, vars)
}

// Exists reports whether the catalog holds the named template.
func Exists(name string) bool {
	_, ok := catalog[name]
	return ok
}

func substitute(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	return placeholderRe.ReplaceAllStringFunc(text, func(token string) string {
		key := strings.Trim(token, "{}")
		if v, ok := vars[key]; ok {
			return v
		}
		return token
	})
}
