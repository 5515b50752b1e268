package dimerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage indicates the command line had the wrong shape.
	ErrUsage = errors.New("usage")

	// ErrInvalidArguments indicates invalid flag values were provided.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrReadTable indicates the quantity table could not be read.
	ErrReadTable = errors.New("read table")

	// ErrInvalidTable indicates the quantity table is malformed.
	ErrInvalidTable = errors.New("invalid table")

	// ErrRowShape indicates a row did not have the expected number of columns.
	ErrRowShape = fmt.Errorf("row shape: %w", ErrInvalidTable)

	// ErrExponentParse indicates an exponent cell did not match "{num,den}".
	ErrExponentParse = fmt.Errorf("exponent: %w", ErrInvalidTable)

	// ErrNameCollision indicates distinct quantity labels map to one identifier.
	ErrNameCollision = errors.New("name collision")

	// ErrJSONMarshal indicates an error occurred while marshaling JSON.
	ErrJSONMarshal = errors.New("marshal JSON")

	// ErrYAMLMarshal indicates an error occurred while marshaling YAML.
	ErrYAMLMarshal = errors.New("marshal YAML")

	// ErrWrite indicates an error occurred while writing generated output.
	ErrWrite = errors.New("write")
)
