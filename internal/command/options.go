package command

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	skemap "github.com/reoring/skemap"
	"github.com/reoring/skemap/models/compute"
	"github.com/reoring/skemap/models/resources"
	"github.com/reoring/skemap/models/storage"
	"github.com/reoring/skemap/servicebus"
)

const (
	defaultVerbosity int = 1
)

// Options are the settings shared by every subcommand. They can be loaded
// from a YAML settings file; flags that were set explicitly win.
type Options struct {
	Schemas       []string `yaml:"schemas,omitempty"`
	Builtin       []string `yaml:"builtin,omitempty"`
	Verbosity     int      `yaml:"verbosity"`
	PrettyLogs    bool     `yaml:"prettyLogs"`
	Strict        bool     `yaml:"strict"`
	MaxDepth      int      `yaml:"maxDepth"`
	DecodeFormats bool     `yaml:"decodeFormats"`
}

var builtins = map[string]func(*skemap.Registry) error{
	"compute":    compute.Register,
	"resources":  resources.Register,
	"servicebus": servicebus.Register,
	"storage":    storage.Register,
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// state is what PersistentPreRunE hands to the subcommands.
type state struct {
	opts     *Options
	log      zerolog.Logger
	parseOpt skemap.ParseOpt
	engine   *skemap.Engine
}

func initLogger(opts *Options, w io.Writer) (log zerolog.Logger) {
	logLevels := [3]zerolog.Level{
		zerolog.DebugLevel,
		zerolog.InfoLevel,
		zerolog.ErrorLevel,
	}

	if opts.Verbosity < 0 || opts.Verbosity >= len(logLevels) {
		fmt.Fprintln(w, "invalid verbosity level provided, using default...")
		opts.Verbosity = defaultVerbosity
	}

	if opts.PrettyLogs {
		log = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	} else {
		log = zerolog.New(w).With().Timestamp().Logger()
	}

	return log.Level(logLevels[opts.Verbosity])
}

func getSettingsFromFile(settingsPath string) (*Options, error) {
	file, err := os.Open(settingsPath)
	switch {
	case err == nil:
		stat, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("could not check file path: %w", err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("provided file path is a directory")
		}
	case os.IsNotExist(err):
		return nil, fmt.Errorf("provided file path does not exist")
	default:
		return nil, fmt.Errorf("could not open file path: %w", err)
	}

	defer file.Close()

	var settings Options
	if err := yaml.NewDecoder(file).Decode(&settings); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not unmarshal settings file: %w", err)
	}

	return &settings, nil
}

// buildRegistry registers the selected builtin model sets and then every
// schema file, so that files can override builtin descriptors.
func buildRegistry(opts *Options, log zerolog.Logger) (*skemap.Registry, error) {
	reg := skemap.NewRegistry()

	sets := opts.Builtin
	if len(sets) == 0 {
		sets = builtinNames()
	}
	for _, name := range sets {
		name = strings.TrimSpace(name)
		if name == "none" {
			continue
		}
		register, ok := builtins[name]
		if !ok {
			return nil, fmt.Errorf("unknown builtin model set %q (known: %s)", name, strings.Join(builtinNames(), ", "))
		}
		if err := register(reg); err != nil {
			return nil, fmt.Errorf("could not register %s models: %w", name, err)
		}
	}

	for _, path := range opts.Schemas {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read schema file: %w", err)
		}
		ms, err := skemap.LoadMappers(reg, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		log.Debug().Str("file", path).Int("mappers", len(ms)).Msg("loaded schema file")
	}

	if err := reg.Check(); err != nil {
		return nil, fmt.Errorf("inconsistent registry: %w", err)
	}
	reg.Seal()
	log.Debug().Int("types", reg.Len()).Msg("registry ready")
	return reg, nil
}

func (o *Options) parseOpt() skemap.ParseOpt {
	opt := skemap.ParseOpt{MaxDepth: o.MaxDepth}
	opt.Strictness.OnDuplicateKey = skemap.Warn
	if o.Strict {
		opt.Strictness.OnDuplicateKey = skemap.Error
	}
	return opt
}

func newState(opts *Options, w io.Writer) (*state, error) {
	log := initLogger(opts, w)
	reg, err := buildRegistry(opts, log)
	if err != nil {
		return nil, err
	}
	popt := opts.parseOpt()
	return &state{
		opts:     opts,
		log:      log,
		parseOpt: popt,
		engine: skemap.New(reg,
			skemap.WithLogger(log),
			skemap.WithParseOpt(popt),
			skemap.WithFormatDecoding(opts.DecodeFormats),
			skemap.WithValidateOnDecode(opts.Strict),
		),
	}, nil
}

func (s *state) warn(is skemap.Issue) {
	s.log.Warn().Str("path", is.Path).Str("code", is.Code).Msg(is.Message)
}
