package stylecfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Plugin is an opaque identifier for a formatter extension. The package
// assigns no meaning to the identifier beyond ordering: plugins are applied
// by the consuming engine in slice order.
type Plugin string

// QuoteStyle is the preferred string-literal delimiter.
type QuoteStyle int

const (
	QuoteSingle QuoteStyle = iota
	QuoteDouble
)

var quoteStyleNames = []string{"single", "double"}

func (q QuoteStyle) String() string { return enumName(quoteStyleNames, int(q)) }

// MarshalText implements encoding.TextMarshaler.
func (q QuoteStyle) MarshalText() ([]byte, error) { return []byte(q.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are
// rejected so an invalid style cannot enter a decoded configuration.
func (q *QuoteStyle) UnmarshalText(text []byte) error {
	i, err := enumIndex(quoteStyleNames, string(text), "quote style")
	if err != nil {
		return err
	}
	*q = QuoteStyle(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (q QuoteStyle) MarshalYAML() (any, error) { return q.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *QuoteStyle) UnmarshalYAML(value *yaml.Node) error {
	return q.UnmarshalText([]byte(value.Value))
}

// TrailingComma selects where trailing commas are inserted in multi-line
// lists. TrailingCommaES5 inserts them only where ES5 syntax allows
// (arrays and object literals, not function arguments).
type TrailingComma int

const (
	TrailingCommaNone TrailingComma = iota
	TrailingCommaES5
	TrailingCommaAll
)

var trailingCommaNames = []string{"none", "es5", "all"}

func (c TrailingComma) String() string { return enumName(trailingCommaNames, int(c)) }

// MarshalText implements encoding.TextMarshaler.
func (c TrailingComma) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *TrailingComma) UnmarshalText(text []byte) error {
	i, err := enumIndex(trailingCommaNames, string(text), "trailing comma policy")
	if err != nil {
		return err
	}
	*c = TrailingComma(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c TrailingComma) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *TrailingComma) UnmarshalYAML(value *yaml.Node) error {
	return c.UnmarshalText([]byte(value.Value))
}

// ArrowParens controls whether a single, unparenthesized arrow-function
// parameter receives explicit parentheses.
type ArrowParens int

const (
	ArrowParensAlways ArrowParens = iota
	ArrowParensAvoid
)

var arrowParensNames = []string{"always", "avoid"}

func (a ArrowParens) String() string { return enumName(arrowParensNames, int(a)) }

// MarshalText implements encoding.TextMarshaler.
func (a ArrowParens) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ArrowParens) UnmarshalText(text []byte) error {
	i, err := enumIndex(arrowParensNames, string(text), "arrow parens policy")
	if err != nil {
		return err
	}
	*a = ArrowParens(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (a ArrowParens) MarshalYAML() (any, error) { return a.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *ArrowParens) UnmarshalYAML(value *yaml.Node) error {
	return a.UnmarshalText([]byte(value.Value))
}

// LineEnding is the newline representation written to disk. LineEndingAuto
// preserves whatever the first line of the input file uses.
type LineEnding int

const (
	LineEndingLF LineEnding = iota
	LineEndingCRLF
	LineEndingCR
	LineEndingAuto
)

var lineEndingNames = []string{"lf", "crlf", "cr", "auto"}

func (e LineEnding) String() string { return enumName(lineEndingNames, int(e)) }

// MarshalText implements encoding.TextMarshaler.
func (e LineEnding) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *LineEnding) UnmarshalText(text []byte) error {
	i, err := enumIndex(lineEndingNames, string(text), "line ending")
	if err != nil {
		return err
	}
	*e = LineEnding(i)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (e LineEnding) MarshalYAML() (any, error) { return e.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *LineEnding) UnmarshalYAML(value *yaml.Node) error {
	return e.UnmarshalText([]byte(value.Value))
}

// enumName returns the name for an enum value, or a diagnostic string for
// an out-of-range value.
func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("invalid(%d)", i)
	}
	return names[i]
}

// enumIndex resolves an enum name to its value.
func enumIndex(names []string, s, kind string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}
