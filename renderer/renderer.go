// Package renderer fills the HUD markdown template and converts it to HTML.
package renderer

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Template is the default HUD markdown template.
//
//go:embed hud.md
var Template string

// Missing replaces any placeholder left without a value.
const Missing = "—"

var leftover = regexp.MustCompile(`\{\{[A-Z0-9_]+\}\}`)

// Render substitutes every {{KEY}} of tmpl with mapping[KEY].
//
// Placeholders of tmpl with no entry in mapping are replaced by Missing.
// Substitution is literal: values are copied as is, even when they contain
// text like {{KEY}}.
func Render(tmpl string, mapping map[string]string) string {
	tmpl = leftover.ReplaceAllStringFunc(tmpl, func(p string) string {
		if _, ok := mapping[p[2:len(p)-2]]; ok {
			return p
		}
		return Missing
	})

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "{{"+k+"}}", mapping[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// Load returns the content of the template file at path, or the embedded
// Template when path is empty.
func Load(path string) (string, error) {
	if path == "" {
		return Template, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read template %q: %w", path, err)
	}
	return string(b), nil
}

// HTML converts markdown into an HTML fragment with GitHub flavored tables.
func HTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("cannot convert markdown: %w", err)
	}
	return buf.String(), nil
}

// Placeholders lists the distinct keys referenced by tmpl, in order of appearance.
func Placeholders(tmpl string) []string {
	var keys []string
	seen := map[string]bool{}
	for _, m := range leftover.FindAllString(tmpl, -1) {
		k := strings.TrimSuffix(strings.TrimPrefix(m, "{{"), "}}")
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
