package command

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	skemap "github.com/reoring/skemap"
)

// readInput returns the contents of the file named by args[0], or stdin
// when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("could not read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}
	return data, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// writeValue prints v as json, yaml or a Go value dump.
func writeValue(w io.Writer, format string, v any) error {
	switch format {
	case "", "json":
		return writeJSON(w, v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("could not encode output: %w", err)
		}
		return enc.Close()
	case "go":
		dumper.Fdump(w, v)
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func reportIssues(w io.Writer, err error) error {
	return writeJSON(w, skemap.ToIssues(err))
}
