package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errInvalid is returned once the issues of a failed validation have been
// reported.
var errInvalid = errors.New("payload is not valid")

func getValidateCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "validate TYPE [FILE]",
		Short: "Validate a JSON payload against a type.",
		Long: `Validate a JSON payload read from FILE, or stdin, against the
descriptor registered as TYPE.

Validation stops at the first violation, which is printed as a JSON issue
list with its JSON Pointer path.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			if err := st.engine.ValidateJSON(args[0], data); err != nil {
				st.log.Debug().Err(err).Str("type", args[0]).Msg("validation failed")
				if rerr := reportIssues(cmd.OutOrStdout(), err); rerr != nil {
					return rerr
				}
				return fmt.Errorf("%s: %w", args[0], errInvalid)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
		Example: "validate Usage usage.json",
	}
}
