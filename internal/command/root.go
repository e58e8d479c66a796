package command

import (
	"github.com/spf13/cobra"
)

func GetRootCommand() *cobra.Command {
	flagOpts := &Options{}
	st := &state{}
	var fileSettingsPath string

	cmd := &cobra.Command{
		Use:   "skemap types|validate|deserialize|serialize|import|entry [OPTIONS]",
		Short: "Validate and convert payloads with mapper descriptors.",
		Long: `Validate, deserialize and serialize JSON payloads against mapper
descriptors of management API models.

Descriptors come from the builtin model sets and from schema files in
YAML or JSON. Swagger 2.0 documents can be imported into schema files.`,
		Example:      "skemap validate StorageAccountListResult accounts.json --builtin storage",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts := &Options{Verbosity: defaultVerbosity}
			if fileSettingsPath != "" {
				f, err := getSettingsFromFile(fileSettingsPath)
				if err != nil {
					return err
				}
				opts = f
			}

			if cmd.Flag("schema").Changed {
				opts.Schemas = append(opts.Schemas, flagOpts.Schemas...)
			}

			if cmd.Flag("builtin").Changed {
				opts.Builtin = flagOpts.Builtin
			}

			if cmd.Flag("verbosity").Changed {
				opts.Verbosity = flagOpts.Verbosity
			}

			if cmd.Flag("pretty-logs").Changed {
				opts.PrettyLogs = flagOpts.PrettyLogs
			}

			if cmd.Flag("strict").Changed {
				opts.Strict = flagOpts.Strict
			}

			if cmd.Flag("max-depth").Changed {
				opts.MaxDepth = flagOpts.MaxDepth
			}

			if cmd.Flag("decode-formats").Changed {
				opts.DecodeFormats = flagOpts.DecodeFormats
			}

			s, err := newState(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*st = *s
			return nil
		},
	}

	// Flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&fileSettingsPath, "settings-file", "",
		"path to the file containing settings")
	pf.StringSliceVarP(&flagOpts.Schemas, "schema", "s", nil,
		"schema file with mapper descriptors, can be repeated.")
	pf.StringSliceVar(&flagOpts.Builtin, "builtin", nil,
		"builtin model sets to register (compute, resources, servicebus, storage or none). All by default.")
	pf.IntVar(&flagOpts.Verbosity, "verbosity", defaultVerbosity,
		"verbosity level, from 0 to 2.")
	pf.BoolVar(&flagOpts.PrettyLogs, "pretty-logs", false,
		"whether to log data in a slower but human readable format.")
	pf.BoolVar(&flagOpts.Strict, "strict", false,
		"reject duplicate keys and validate payloads before deserializing.")
	pf.IntVar(&flagOpts.MaxDepth, "max-depth", 0,
		"maximum nesting depth of input documents, 0 for no limit.")
	pf.BoolVar(&flagOpts.DecodeFormats, "decode-formats", false,
		"whether to decode dates, durations and byte arrays when deserializing.")

	// Commands
	cmd.AddCommand(getTypesCommand(st))
	cmd.AddCommand(getValidateCommand(st))
	cmd.AddCommand(getDeserializeCommand(st))
	cmd.AddCommand(getSerializeCommand(st))
	cmd.AddCommand(getImportCommand(st))
	cmd.AddCommand(getEntryCommand(st))

	return cmd
}
