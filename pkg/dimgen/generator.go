package dimgen

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
	"github.com/MacroPower/dimgen/pkg/dimgroup"
	"github.com/MacroPower/dimgen/pkg/dimtable"
	"github.com/MacroPower/dimgen/pkg/quantity"
)

// Options configures a [Generator].
type Options struct {
	// OnCollision is called for every identifier produced by more than one
	// distinct label. When nil, collisions are logged as warnings.
	OnCollision func(quantity.Collision)

	// Prefix is prepended to every quantity identifier.
	// Defaults to [quantity.DefaultPrefix].
	Prefix string

	// Style selects how quantity labels are cased.
	Style quantity.Style

	// StrictNames makes identifier collisions fatal.
	StrictNames bool
}

// Table is a parsed and grouped quantity table.
type Table struct {
	Rows   []dimtable.Row
	Groups []dimgroup.Group
}

// Generator turns quantity tables into generated code.
type Generator struct {
	canon *quantity.Canonicalizer
	opts  Options
}

// NewGenerator creates a new [Generator].
func NewGenerator(opts Options) *Generator {
	if opts.Prefix == "" {
		opts.Prefix = quantity.DefaultPrefix
	}

	return &Generator{
		canon: quantity.NewCanonicalizer(opts.Prefix, opts.Style),
		opts:  opts,
	}
}

// Identifier returns the generated identifier for a quantity label.
func (g *Generator) Identifier(label string) string {
	return g.canon.Identifier(label)
}

// Load reads the table at path and groups its rows.
func (g *Generator) Load(path string) (*Table, error) {
	rows, err := dimtable.Read(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Already wrapped with the table path.
	}

	return g.Group(rows)
}

// Group checks rows for identifier collisions and groups them by signature.
func (g *Generator) Group(rows []dimtable.Row) (*Table, error) {
	if err := g.checkNames(rows); err != nil {
		return nil, err
	}

	warnExponentRange(rows)

	groups := dimgroup.Build(rows)

	slog.Debug("grouped quantities",
		slog.Int("quantities", len(rows)),
		slog.Int("dimensionalities", len(groups)),
	)

	return &Table{Rows: rows, Groups: groups}, nil
}

func (g *Generator) checkNames(rows []dimtable.Row) error {
	labels := make([]string, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Name)
	}

	var merr error

	for _, c := range quantity.FindCollisions(g.canon, labels) {
		if g.opts.OnCollision != nil {
			g.opts.OnCollision(c)
		} else {
			slog.Warn("quantity labels share an identifier",
				slog.String("identifier", c.Identifier),
				slog.Any("labels", c.Labels),
			)
		}

		if g.opts.StrictNames {
			merr = multierror.Append(merr,
				fmt.Errorf("%w: %s from %q", dimerrors.ErrNameCollision, c.Identifier, c.Labels),
			)
		}
	}

	return merr
}

// The generated C code passes exponents as uint8_t.
func warnExponentRange(rows []dimtable.Row) {
	for _, r := range rows {
		for i, e := range r.Exponents {
			if inUint8(e.Num) && inUint8(e.Den) {
				continue
			}

			slog.Warn("exponent does not fit in uint8_t",
				slog.Int("line", r.Line),
				slog.String("quantity", r.Name),
				slog.String("dimension", dimtable.BaseDimensions[i].String()),
				slog.Int("num", e.Num),
				slog.Int("den", e.Den),
			)
		}
	}
}

func inUint8(v int) bool {
	return v >= 0 && v <= math.MaxUint8
}
