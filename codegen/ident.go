package codegen

import "strings"

// exportedIdent turns a terminal name into a valid, exported Go
// identifier fragment: non-identifier characters are dropped, and the
// result is capitalised so it can be suffixed onto "Token" (TokenIF,
// TokenNUMBER). Terminal names are generation-time constants chosen by
// the pattern author, not attacker input, so this is a cheap sanitiser,
// not a security boundary.
func exportedIdent(name string) string {
	var b strings.Builder
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		case r == '_':
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	return strings.ToUpper(out[:1]) + out[1:]
}
