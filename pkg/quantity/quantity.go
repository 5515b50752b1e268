package quantity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPrefix is prepended to every identifier unless overridden.
const DefaultPrefix = "kSIQuantity"

// Style selects how label tokens are cased.
type Style string

const (
	// StyleCapitalize upper-cases the first character of each token and
	// lower-cases the rest, so "pH value" becomes "PhValue" and "2nd"
	// stays "2nd".
	StyleCapitalize Style = "capitalize"

	// StyleCamel upper-cases the first letter of each token and keeps
	// inner capitals, so "pH value" becomes "PHValue".
	StyleCamel Style = "camel"
)

// Styles lists all supported styles.
var Styles = []Style{StyleCapitalize, StyleCamel}

var separatorRegexp = regexp.MustCompile(`[^0-9A-Za-z]+`)

// ParseStyle parses a [Style] from its name.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case StyleCapitalize, "":
		return StyleCapitalize, nil
	case StyleCamel:
		return StyleCamel, nil
	}

	return "", fmt.Errorf("unknown case style %q", s)
}

// Canonicalizer maps quantity labels to identifiers.
// It is not safe for concurrent use.
type Canonicalizer struct {
	upper  cases.Caser
	lower  cases.Caser
	prefix string
	style  Style
}

// NewCanonicalizer creates a [Canonicalizer]. An empty style means
// [StyleCapitalize].
func NewCanonicalizer(prefix string, style Style) *Canonicalizer {
	if style == "" {
		style = StyleCapitalize
	}

	return &Canonicalizer{
		upper:  cases.Upper(language.Und),
		lower:  cases.Lower(language.Und),
		prefix: prefix,
		style:  style,
	}
}

// Prefix returns the identifier prefix.
func (c *Canonicalizer) Prefix() string {
	return c.prefix
}

// Identifier returns the identifier for label.
func (c *Canonicalizer) Identifier(label string) string {
	var sb strings.Builder

	sb.WriteString(c.prefix)

	for _, tok := range separatorRegexp.Split(label, -1) {
		if tok == "" {
			continue
		}

		switch c.style {
		case StyleCamel:
			sb.WriteString(strcase.ToCamel(tok))
		default:
			// Tokens are ASCII, so the first byte is the first character.
			sb.WriteString(c.upper.String(tok[:1]))
			sb.WriteString(c.lower.String(tok[1:]))
		}
	}

	return sb.String()
}
