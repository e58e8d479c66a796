package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	skemap "github.com/reoring/skemap"
	"github.com/reoring/skemap/servicebus"
)

func lookupKind(name string) (servicebus.Kind, error) {
	if k, ok := servicebus.Lookup(name); ok {
		return k, nil
	}
	for _, k := range servicebus.Kinds() {
		if strings.EqualFold(k.Name, name+"Description") {
			return k, nil
		}
	}
	return servicebus.Kind{}, fmt.Errorf("unknown entity kind %q", name)
}

func getEntryCommand(st *state) *cobra.Command {
	var (
		format string
		indent bool
		parse  bool
	)

	cmd := &cobra.Command{
		Use:   "entry queue|topic|subscription [FILE]",
		Short: "Write or read a Service Bus entity description.",
		Long: `Serialize a queue, topic or subscription, given as a JSON object
keyed by local names, into the Atom entry sent to Service Bus or into its
ordered JSON form. Only the properties Service Bus accepts are written,
in the order it expects.

With --parse the input is an Atom entry returned by the service, and the
description is printed as JSON.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lookupKind(args[0])
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if parse {
				v, err := servicebus.ParseEntry(kind, data)
				if err != nil {
					return err
				}
				return writeJSON(out, v)
			}

			resource, err := skemap.DecodeJSON(data, st.parseOpt, st.warn)
			if err != nil {
				return err
			}

			var b []byte
			switch format {
			case "xml":
				var opts []servicebus.Option
				if indent {
					opts = append(opts, servicebus.WithIndent("  "))
				}
				b, err = servicebus.NewSerializer(opts...).MarshalEntry(kind, resource)
			case "json":
				b, err = kind.EncodeJSON(resource)
			default:
				return fmt.Errorf("unsupported entry format %q", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s\n", b)
			return err
		},
		Example: "entry queue queue.json --indent",
	}

	cmd.Flags().StringVarP(&format, "format", "f", "xml",
		"output format: xml or json.")
	cmd.Flags().BoolVar(&indent, "indent", false,
		"whether to indent the xml entry.")
	cmd.Flags().BoolVar(&parse, "parse", false,
		"whether to read an Atom entry instead of writing one.")

	return cmd
}
