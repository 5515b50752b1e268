package dimgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
	"github.com/MacroPower/dimgen/pkg/dimgroup"
	"github.com/MacroPower/dimgen/pkg/dimtable"
)

// Format is an output format for [Generator.Inspect].
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat parses a [Format] from its name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatYAML, "yml", "":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: unknown format %q", dimerrors.ErrInvalidArguments, s)
}

// GroupReport describes one dimensionality group.
type GroupReport struct {
	Quantities []QuantityReport `json:"quantities" yaml:"quantities"`
	Exponents  []ExponentReport `json:"exponents"  yaml:"exponents"`
}

// QuantityReport is a quantity label and its generated identifier.
type QuantityReport struct {
	Name       string `json:"name"       yaml:"name"`
	Identifier string `json:"identifier" yaml:"identifier"`
}

// ExponentReport is the exponent pair of one base dimension.
type ExponentReport struct {
	Dimension string `json:"dimension" yaml:"dimension"`
	Num       int    `json:"num"       yaml:"num"`
	Den       int    `json:"den"       yaml:"den"`
}

// Report describes groups, in order.
func (g *Generator) Report(groups []dimgroup.Group) []GroupReport {
	reports := make([]GroupReport, 0, len(groups))

	for _, grp := range groups {
		r := GroupReport{
			Quantities: make([]QuantityReport, 0, len(grp.Names)),
			Exponents:  make([]ExponentReport, 0, dimtable.BaseDimensionCount),
		}

		for _, name := range grp.Names {
			r.Quantities = append(r.Quantities, QuantityReport{
				Name:       name,
				Identifier: g.canon.Identifier(name),
			})
		}

		for _, d := range dimtable.BaseDimensions {
			e := grp.Signature.Exponent(d)
			r.Exponents = append(r.Exponents, ExponentReport{
				Dimension: d.String(),
				Num:       e.Num,
				Den:       e.Den,
			})
		}

		reports = append(reports, r)
	}

	return reports
}

// Inspect reads the table at path and writes its groups to w.
func (g *Generator) Inspect(w io.Writer, path string, format Format) error {
	t, err := g.Load(path)
	if err != nil {
		return err
	}

	return Encode(w, g.Report(t.Groups), format)
}

// Encode writes v to w in the given format. Nothing is written if
// marshaling fails.
func Encode(w io.Writer, v any, format Format) error {
	buf := &bytes.Buffer{}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(buf)
		enc.SetIndent("", "  ")

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%w: %w", dimerrors.ErrJSONMarshal, err)
		}

	default:
		enc := yaml.NewEncoder(buf)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("%w: %w", dimerrors.ErrYAMLMarshal, err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: %w", dimerrors.ErrYAMLMarshal, err)
		}
	}

	return write(w, buf)
}
