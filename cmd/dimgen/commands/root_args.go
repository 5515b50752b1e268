package commands

import (
	"fmt"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
	"github.com/MacroPower/dimgen/pkg/dimgen"
	"github.com/MacroPower/dimgen/pkg/quantity"
)

type RootArgs struct {
	logLevel    *string
	logFormat   *string
	prefix      *string
	caseStyle   *string
	strictNames *bool
}

func NewRootArgs() *RootArgs {
	return &RootArgs{
		logLevel:    new(string),
		logFormat:   new(string),
		prefix:      new(string),
		caseStyle:   new(string),
		strictNames: new(bool),
	}
}

func (a *RootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *RootArgs) GetLogFormat() string {
	return *a.logFormat
}

func (a *RootArgs) GetPrefix() string {
	return *a.prefix
}

func (a *RootArgs) GetCaseStyle() string {
	return *a.caseStyle
}

func (a *RootArgs) GetStrictNames() bool {
	return *a.strictNames
}

// NewGenerator creates a [dimgen.Generator] configured by the arguments.
func (a *RootArgs) NewGenerator() (*dimgen.Generator, error) {
	style, err := quantity.ParseStyle(a.GetCaseStyle())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dimerrors.ErrInvalidArguments, err)
	}

	return dimgen.NewGenerator(dimgen.Options{
		Prefix:      a.GetPrefix(),
		Style:       style,
		StrictNames: a.GetStrictNames(),
	}), nil
}
