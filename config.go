package lexgen

// Config controls a Generate call's limits and optional accelerations.
//
// Configuration options affect:
//   - How deeply a single pattern's lowered HIR may nest (MaxRegexDepth).
//   - How large a token set Generate accepts (MaxTerminals).
//   - Whether the literal fast path (an Aho-Corasick prefilter ahead of
//     the jump-routine graph) is built at all (EnableLiteralFastPath).
//
// Example:
//
//	cfg := lexgen.DefaultConfig()
//	cfg.EnableLiteralFastPath = false // always walk the graph
//	src, err := lexgen.Generate(def, cfg)
type Config struct {
	// MaxRegexDepth bounds the nesting depth of a single pattern's
	// lowered HIR; a deeper pattern is rejected with ErrRegexTooDeep
	// (the same posture as meta.Config's MaxRecursionDepth). The check
	// runs on the finished HIR, after lowering, so it does not limit
	// recursion during lowering itself.
	// Default: 100
	MaxRegexDepth int

	// MaxTerminals caps how many TokenDef entries (plus the optional
	// skip pattern) a single TokenSetDef may declare.
	// Default: 512
	MaxTerminals int

	// EnableLiteralFastPath enables the Aho-Corasick literal
	// acceleration described in SPEC_FULL.md §4.6 ("Literal fast
	// path"). When false, Generate never builds one, even if three or
	// more terminals would otherwise qualify.
	// Default: true
	EnableLiteralFastPath bool
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Defaults are tuned for typical token sets:
//   - A generous but bounded HIR nesting depth (accepts realistically
//     nested patterns, rejects pathologically deep ones).
//   - A terminal ceiling comfortably above any hand-written token set.
//   - The literal fast path enabled, since it is always safe (Generate
//     only ever wires in literals it has proven unambiguous).
func DefaultConfig() Config {
	return Config{
		MaxRegexDepth:         100,
		MaxTerminals:          512,
		EnableLiteralFastPath: true,
	}
}

// Validate checks if the configuration is valid. Returns an error if any
// parameter is out of range.
//
// Valid ranges:
//   - MaxRegexDepth: 10 to 1,000
//   - MaxTerminals: 1 to 10,000
func (c Config) Validate() error {
	if c.MaxRegexDepth < 10 || c.MaxRegexDepth > 1_000 {
		return &ConfigError{Field: "MaxRegexDepth", Message: "must be between 10 and 1,000"}
	}
	if c.MaxTerminals < 1 || c.MaxTerminals > 10_000 {
		return &ConfigError{Field: "MaxTerminals", Message: "must be between 1 and 10,000"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "lexgen: invalid config: " + e.Field + ": " + e.Message
}
