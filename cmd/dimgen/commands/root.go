package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
	"github.com/MacroPower/dimgen/pkg/log"
	"github.com/MacroPower/dimgen/pkg/quantity"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           name + " TABLE.csv",
		Short:         shortDesc,
		Long:          longDesc,
		Args:          tableArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
		RunE: func(cc *cobra.Command, posArgs []string) error {
			g, err := args.NewGenerator()
			if err != nil {
				return err
			}

			return g.Generate(cc.OutOrStdout(), posArgs[0])
		},
	}

	styles := make([]string, 0, len(quantity.Styles))
	for _, s := range quantity.Styles {
		styles = append(styles, string(s))
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().StringVar(args.prefix, "prefix", quantity.DefaultPrefix, "Prefix for quantity identifiers")
	cmd.PersistentFlags().StringVar(args.caseStyle, "case", string(quantity.StyleCapitalize),
		fmt.Sprintf("Casing of quantity identifiers (%s)", strings.Join(styles, ", ")))
	cmd.PersistentFlags().BoolVar(args.strictNames, "strict_names", false,
		"Fail when distinct quantity labels produce the same identifier")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		var merr error

		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%w: %w", ErrLogHandlerFailed, err))
		}

		if _, err := quantity.ParseStyle(args.GetCaseStyle()); err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", dimerrors.ErrInvalidArguments, merr)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewHeaderCmd(args))
	cmd.AddCommand(NewGroupsCmd(args))

	return cmd
}

// tableArg requires exactly one positional argument, the table path.
func tableArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s", dimerrors.ErrUsage, cmd.UseLine())
	}

	return nil
}
