package lexgen

import "strings"

// sanitizePackageName lowercases name and strips everything but letters,
// digits and underscores, prefixing a leading digit with "_" — the same
// filtering codegen.exportedIdent applies to build an exported Go
// identifier, just lowercased and defaulting to "lexer" instead of "_"
// when nothing survives.
func sanitizePackageName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		}
	}
	out := b.String()
	if out == "" {
		return "lexer"
	}
	if out[0] >= '0' && out[0] <= '9' {
		return "_" + out
	}
	return out
}
