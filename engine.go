package skemap

import (
	"github.com/rs/zerolog"
)

// Engine validates, deserializes and serializes payloads against the
// descriptors of a Registry. An Engine holds no per-call state and may be
// shared between goroutines.
type Engine struct {
	reg              *Registry
	log              zerolog.Logger
	decodeFormats    bool
	validateFormats  bool
	validateOnDecode bool
	parseOpt         ParseOpt
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l zerolog.Logger) Option { return func(e *Engine) { e.log = l } }

// WithFormatDecoding makes Deserialize convert formatted wire strings
// (DateTime, ByteArray, TimeSpan, ...) into time.Time, []byte and
// time.Duration. By default primitives pass through unchanged.
func WithFormatDecoding(enabled bool) Option { return func(e *Engine) { e.decodeFormats = enabled } }

// WithFormatValidation makes Validate also parse strings of formatted kinds
// and report an *InvalidFormatError when they do not parse. By default only
// the JSON kind is checked.
func WithFormatValidation(enabled bool) Option {
	return func(e *Engine) { e.validateFormats = enabled }
}

// WithValidateOnDecode makes DecodeJSON validate before deserializing.
func WithValidateOnDecode(enabled bool) Option {
	return func(e *Engine) { e.validateOnDecode = enabled }
}

// WithParseOpt sets the JSON intake options used by ValidateJSON and DecodeJSON.
func WithParseOpt(opt ParseOpt) Option { return func(e *Engine) { e.parseOpt = opt } }

// New returns an Engine bound to reg. A nil reg gets an empty Registry.
func New(reg *Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = NewRegistry()
	}
	e := &Engine{reg: reg, log: zerolog.Nop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Registry returns the registry the engine resolves against.
func (e *Engine) Registry() *Registry { return e.reg }

func (e *Engine) resolve(name, referrer string) (*Mapper, error) {
	m, err := e.reg.Resolve(name)
	if err != nil {
		if ut, ok := err.(*UnknownTypeError); ok && referrer != "" {
			ut.Referrer = referrer
		}
		e.log.Debug().Str("type", name).Str("referrer", referrer).Msg("unresolved type")
		return nil, err
	}
	return m, nil
}

// ValidateJSON decodes data with the engine's intake options and validates it
// against typeName.
func (e *Engine) ValidateJSON(typeName string, data []byte) error {
	v, err := DecodeJSON(data, e.parseOpt, e.warn)
	if err != nil {
		return err
	}
	return e.Validate(typeName, v)
}

// DecodeJSON decodes data, optionally validates it, and deserializes it as
// typeName.
func (e *Engine) DecodeJSON(typeName string, data []byte) (any, error) {
	m, err := e.resolve(typeName, "")
	if err != nil {
		return nil, err
	}
	v, err := DecodeJSON(data, e.parseOpt, e.warn)
	if err != nil {
		return nil, err
	}
	if e.validateOnDecode {
		if err := e.ValidateMapper(m, v); err != nil {
			return nil, err
		}
	}
	return e.DeserializeMapper(m, v)
}

func (e *Engine) warn(is Issue) {
	e.log.Warn().Str("path", is.Path).Str("code", is.Code).Msg(is.Message)
}
