package command

import (
	"github.com/spf13/cobra"

	skemap "github.com/reoring/skemap"
)

type pageOutput struct {
	Items    []any  `json:"items" yaml:"items"`
	NextLink string `json:"nextLink,omitempty" yaml:"nextLink,omitempty"`
}

func getDeserializeCommand(st *state) *cobra.Command {
	var (
		output string
		page   bool
	)

	cmd := &cobra.Command{
		Use:   "deserialize TYPE [FILE]",
		Short: "Convert a wire payload into its local form.",
		Long: `Deserialize a JSON payload read from FILE, or stdin, as TYPE.
Fields are renamed to their local names and flattened fields are lifted
out of their envelopes. Undeclared fields are kept.

With --page the payload is read as a list result and printed as its items
and continuation link.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			if page {
				raw, err := skemap.DecodeJSON(data, st.parseOpt, st.warn)
				if err != nil {
					return err
				}
				if st.opts.Strict {
					if err := st.engine.Validate(args[0], raw); err != nil {
						return err
					}
				}
				pg, err := st.engine.DeserializePage(args[0], raw)
				if err != nil {
					return err
				}
				return writeValue(cmd.OutOrStdout(), output, pageOutput{Items: pg.Items, NextLink: pg.NextLink})
			}

			v, err := st.engine.DecodeJSON(args[0], data)
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), output, v)
		},
		Example: "deserialize StorageAccount account.json --output yaml",
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json",
		"output format: json, yaml or go.")
	cmd.Flags().BoolVar(&page, "page", false,
		"whether to read the payload as a list result.")

	return cmd
}

func getSerializeCommand(st *state) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "serialize TYPE [FILE]",
		Short: "Convert a local object into its wire payload.",
		Long: `Serialize a JSON object keyed by local names, read from FILE or
stdin, as TYPE. Read-only and undeclared fields are dropped and flattened
fields are nested under their serialized paths.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			obj, err := skemap.DecodeJSON(data, st.parseOpt, st.warn)
			if err != nil {
				return err
			}
			v, err := st.engine.Serialize(args[0], obj)
			if err != nil {
				return err
			}
			return writeValue(cmd.OutOrStdout(), output, v)
		},
		Example: "serialize StorageAccountCreateParameters params.json",
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json",
		"output format: json or yaml.")

	return cmd
}
