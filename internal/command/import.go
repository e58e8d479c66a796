package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	skemap "github.com/reoring/skemap"
	"github.com/reoring/skemap/swagger"
)

func getImportCommand(st *state) *cobra.Command {
	var (
		out         string
		strictEnums bool
		opts        swagger.Options
	)

	cmd := &cobra.Command{
		Use:   "import SWAGGER_FILE [OPTIONS]",
		Short: "Import Swagger 2.0 definitions into a schema file.",
		Long: `Convert the definitions of a Swagger 2.0 document, in JSON or YAML,
into mapper descriptors and print them in the schema file format.

x-ms-client-flatten, x-ms-client-name, x-ms-enum and x-ms-pageable are
honored. Warnings are logged and do not stop the import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if strictEnums {
				opts.Enums = swagger.EnumStrict
			}
			ms, diag, err := swagger.Import(data, opts)
			if err != nil {
				return err
			}
			if diag != nil {
				for _, w := range diag.Warnings() {
					st.log.Warn().Str("file", args[0]).Msg(w)
				}
			}
			st.log.Info().Int("mappers", len(ms)).Msg("imported definitions")

			b, err := skemap.MarshalMappers(ms)
			if err != nil {
				return err
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("could not write output file: %w", err)
			}
			return nil
		},
		Example: "import storage.json --only StorageAccount -o storage.yaml",
	}

	cmd.Flags().StringVarP(&out, "out", "o", "",
		"file to write the schema to, stdout by default.")
	cmd.Flags().BoolVar(&strictEnums, "strict-enums", false,
		"whether to import modelAsString enums as closed enums.")
	cmd.Flags().BoolVar(&opts.IgnoreClientNames, "ignore-client-names", false,
		"whether to keep wire names as local names.")
	cmd.Flags().BoolVar(&opts.SkipPageable, "skip-pageable", false,
		"whether to ignore x-ms-pageable operations.")
	cmd.Flags().StringSliceVar(&opts.Only, "only", nil,
		"definitions to import, together with what they reference.")

	return cmd
}
