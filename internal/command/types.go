package command

import (
	"fmt"

	"github.com/spf13/cobra"

	skemap "github.com/reoring/skemap"
)

func getTypesCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "types [NAME]",
		Short: "List registered types or print one descriptor.",
		Long: `Without arguments, list the class names of every registered
descriptor. With a name, print that descriptor in the schema file format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			reg := st.engine.Registry()
			if len(args) == 0 {
				for _, name := range reg.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			m, err := reg.Resolve(args[0])
			if err != nil {
				return err
			}
			b, err := skemap.MarshalMappers([]*skemap.Mapper{m})
			if err != nil {
				return err
			}
			_, err = out.Write(b)
			return err
		},
		Example: "types StorageAccount",
	}
}
