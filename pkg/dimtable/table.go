package dimtable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
)

// ColumnCount is the number of columns in every non-blank row: the quantity
// name followed by one exponent cell per base dimension.
const ColumnCount = 1 + BaseDimensionCount

// Row is one quantity of a table.
type Row struct {
	Name      string
	Exponents [BaseDimensionCount]Exponent
	Line      int
}

// Signature returns the flattened exponents of the row.
func (r Row) Signature() Signature {
	var s Signature
	for i, e := range r.Exponents {
		s[2*i] = e.Num
		s[2*i+1] = e.Den
	}

	return s
}

// Read reads the table at path. Paths ending in ".gz" are decompressed.
func Read(path string) ([]Row, error) {
	//nolint:gosec // G304 not relevant for client-side generation.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dimerrors.ErrReadTable, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close table",
				slog.String("path", path),
				slog.Any("err", err),
			)
		}
	}()

	var r io.Reader = f

	if strings.HasSuffix(path, ".gz") {
		gzr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", dimerrors.ErrReadTable, err)
		}
		defer func() {
			if err := gzr.Close(); err != nil {
				slog.Error("failed to close gzip reader",
					slog.String("path", path),
					slog.Any("err", err),
				)
			}
		}()

		r = gzr
	}

	rows, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("read table",
		slog.String("path", path),
		slog.Int("rows", len(rows)),
	)

	return rows, nil
}

// Parse reads table rows from r. Rows whose first cell is blank are skipped.
// It stops at the first row with the wrong column count or a malformed
// exponent cell.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []Row

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", dimerrors.ErrReadTable, err)
		}

		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}

		line, _ := cr.FieldPos(0)

		if len(record) != ColumnCount {
			return nil, &RowShapeError{Line: line, Columns: len(record)}
		}

		row := Row{
			Name: strings.TrimSpace(record[0]),
			Line: line,
		}

		for i, d := range BaseDimensions {
			col := i + 1

			e, err := ParseExponent(record[col])
			if err != nil {
				return nil, &ExponentParseError{
					Line:      line,
					Column:    col + 1,
					Dimension: d,
					Raw:       record[col],
					Err:       err,
				}
			}

			row.Exponents[i] = e
		}

		rows = append(rows, row)
	}

	return rows, nil
}
