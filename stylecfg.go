// Package stylecfg defines the formatting preferences consumed by the
// formatting engine. The package exports a single record; it contains no
// engine, no file discovery, and no CLI.
package stylecfg

// FormatPreferences describes how source text is normalized before being
// written to disk. The value is total: every field is always populated and
// consumers are expected to read all of them eagerly. It is immutable after
// Load and safe to share across goroutines without synchronization.
type FormatPreferences struct {
	// StatementTerminator controls whether statements must end with an
	// explicit terminator.
	StatementTerminator bool `yaml:"statementTerminator" json:"statementTerminator"`

	// QuoteStyle is the preferred string-literal delimiter.
	QuoteStyle QuoteStyle `yaml:"quoteStyle" json:"quoteStyle"`

	// TrailingComma selects where trailing commas are inserted in
	// multi-line lists.
	TrailingComma TrailingComma `yaml:"trailingComma" json:"trailingComma"`

	// IndentWidth is the number of spaces per indentation level.
	// Always strictly positive.
	IndentWidth int `yaml:"indentWidth" json:"indentWidth"`

	// MaxLineWidth is the soft wrap column target. Always strictly positive.
	MaxLineWidth int `yaml:"maxLineWidth" json:"maxLineWidth"`

	// ArrowParens controls whether single-parameter arrow functions get
	// parentheses.
	ArrowParens ArrowParens `yaml:"arrowParensPolicy" json:"arrowParensPolicy"`

	// LineEnding is the newline representation written to disk.
	LineEnding LineEnding `yaml:"lineEnding" json:"lineEnding"`

	// Plugins lists formatter extensions to load, in application order.
	// Empty means built-in rules only. Identifiers are opaque to this
	// package; resolving and loading them is the engine's concern.
	Plugins []Plugin `yaml:"plugins" json:"plugins"`
}

// Load returns the formatting preferences. The value is a static literal:
// there are no arguments, no environment lookups, and no file parsing, so
// Load cannot fail and has no side effects. Each call returns an independent
// copy; in particular each result carries its own Plugins slice.
func Load() FormatPreferences {
	return FormatPreferences{
		StatementTerminator: true,
		QuoteStyle:          QuoteDouble,
		TrailingComma:       TrailingCommaES5,
		IndentWidth:         2,
		MaxLineWidth:        100,
		ArrowParens:         ArrowParensAlways,
		LineEnding:          LineEndingLF,
		Plugins:             []Plugin{},
	}
}
