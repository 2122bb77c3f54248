package prefilter

// ScalarBytes converts a run of Unicode scalar values into the Latin-1-safe
// byte prefix the Aho-Corasick automaton can search: codegen's literal
// fast path (SPEC_FULL.md §4.6) only ever registers literals that
// literal.RequiredLiteral accepted, which already rejects any scalar above
// 0xFF, so every LiteralSet member is expressible byte-for-byte. Converting
// the cursor's remaining scalars the same way keeps match offsets in
// one-to-one correspondence with scalar positions (no UTF-8 re-encoding,
// no multi-byte drift) — runtime.Cursor.Bump(n) advances by scalar count,
// and a match end position from the automaton is exactly that count.
//
// Conversion stops at the first scalar above 0xFF rather than erroring:
// a shorter haystack only means the fast path may miss a match it could
// otherwise have found, never that it reports a wrong one — the jump
// routine graph always runs as the fallback.
func ScalarBytes(scalars []rune) []byte {
	out := make([]byte, 0, len(scalars))
	for _, r := range scalars {
		if r < 0 || r > 0xFF {
			break
		}
		out = append(out, byte(r))
	}
	return out
}
