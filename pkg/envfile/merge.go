package envfile

import (
	"regexp"

	"github.com/muffin-cms/muffin/pkg/types"
)

// quoteStyles are tried in order when locating the assignment of a default.
var quoteStyles = []string{`"`, `'`, ""}

// Merge rewrites content so that every variable with a non-empty override
// carries the override instead of its default. It returns the new text and
// the keys that were rewritten, in file order. With no applicable overrides
// content is returned unchanged.
func Merge(content string, overrides types.Overrides) (string, []string, error) {
	def, err := Parse(content)
	if err != nil {
		return "", nil, err
	}
	return Apply(content, def, overrides), Replaced(def, overrides), nil
}

// Apply performs the textual rewrite for an already parsed definition.
func Apply(content string, def Definition, overrides types.Overrides) string {
	for _, key := range def.Keys {
		value, ok := overrides[key]
		if !ok || value == "" {
			continue
		}
		content = replaceFirst(content, key, def.Raw[key], value)
	}
	return content
}

// Replaced lists the keys of def that overrides will rewrite.
func Replaced(def Definition, overrides types.Overrides) []string {
	var keys []string
	for _, key := range def.Keys {
		if v, ok := overrides[key]; ok && v != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// replaceFirst swaps the value of the first line assigning exactly raw to
// key, keeping the line's spacing, quoting and trailing comment.
func replaceFirst(content, key, raw, value string) string {
	for _, q := range quoteStyles {
		re := regexp.MustCompile(`(?m)^([ \t]*(?:export[ \t]+)?` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*)` +
			regexp.QuoteMeta(q+raw+q) + `([ \t]*(?:#[^\r\n]*)?\r?)$`)
		loc := re.FindStringSubmatchIndex(content)
		if loc == nil {
			continue
		}
		return content[:loc[3]] + q + value + q + content[loc[4]:]
	}
	return content
}
