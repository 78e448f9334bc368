package compose

import "regexp"

// tokenPattern matches $name placeholders.
var tokenPattern = regexp.MustCompile(`\$(\w+)`)

// Substitute replaces $name tokens with values from params. Unknown
// tokens are kept verbatim and reported in missing, first-seen order,
// so callers can warn without aborting. Substitution is a single pass:
// replacement values are never re-scanned for further tokens.
func Substitute(s string, params map[string]string) (result string, missing []string) {
	seen := make(map[string]bool)

	result = tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := match[1:]
		if value, ok := params[name]; ok {
			return value
		}

		if !seen[name] {
			seen[name] = true
			missing = append(missing, name)
		}
		return match
	})

	return result, missing
}
