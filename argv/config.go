package argv

import (
	"slices"
)

const (
	// DefaultSkipLeading drops the program-invocation token.
	DefaultSkipLeading = 1
	// DefaultFlagPrefix marks a token as a flag selector.
	DefaultFlagPrefix = "-"
)

// Config holds the parser knobs that are not parameter descriptors
type Config struct {
	SkipLeading int    // tokens discarded before the first required param
	FlagPrefix  string // empty means DefaultFlagPrefix
}

// DefaultConfig returns SkipLeading 1 and FlagPrefix "-"
func DefaultConfig() Config {
	return Config{SkipLeading: DefaultSkipLeading, FlagPrefix: DefaultFlagPrefix}
}

// normalized returns a copy with an empty prefix replaced by the default
// and a negative skip count clamped to zero.
func (c Config) normalized() Config {
	if c.FlagPrefix == "" {
		c.FlagPrefix = DefaultFlagPrefix
	}
	if c.SkipLeading < 0 {
		c.SkipLeading = 0
	}
	return c
}

// Schema provides a fluent API for declaring parameters.
//
//	h := argv.NewSchema().
//		Required("first", argv.TypeInt).
//		Presence("third", "3").
//		Optional("fourth", argv.TypeString, 2, "4").
//		Parse(os.Args)
type Schema struct {
	required []Param
	optional []Param
	cfg      Config
}

// NewSchema creates an empty schema with DefaultConfig
func NewSchema() *Schema {
	return &Schema{cfg: DefaultConfig()}
}

// Required appends a positional parameter
func (s *Schema) Required(name string, typ ParamType) *Schema {
	s.required = append(s.required, Required(name, typ))
	return s
}

// Optional appends a flag parameter consuming valueCount tokens
func (s *Schema) Optional(name string, typ ParamType, valueCount int, flag string) *Schema {
	s.optional = append(s.optional, Optional(name, typ, valueCount, flag))
	return s
}

// Presence appends a zero-arity flag
func (s *Schema) Presence(name, flag string) *Schema {
	return s.Optional(name, TypeNone, 0, flag)
}

// SkipLeading sets how many leading tokens are discarded
func (s *Schema) SkipLeading(n int) *Schema {
	s.cfg.SkipLeading = n
	return s
}

// FlagPrefix sets the flag prefix
func (s *Schema) FlagPrefix(prefix string) *Schema {
	s.cfg.FlagPrefix = prefix
	return s
}

// Config returns the schema's parser configuration
func (s *Schema) Config() Config {
	return s.cfg
}

// Params returns copies of the declared required and optional parameters
func (s *Schema) Params() (required, optional []Param) {
	return slices.Clone(s.required), slices.Clone(s.optional)
}

// Parse runs a fresh ArgsHelper over tokens. The schema can be reused.
func (s *Schema) Parse(tokens []string) *ArgsHelper {
	return New(s.required, s.optional, s.cfg, tokens)
}
