package argv

import (
	"slices"
	"strings"
)

const (
	resultIncomplete = "Incomplete"
	resultSuccess    = "Success"
)

// ArgsHelper parses a token sequence against required params followed by
// optional params. The whole parse runs inside New; afterwards the helper
// is read-only and safe for concurrent readers. Create a new helper for
// every parse attempt.
type ArgsHelper struct {
	required []Param
	optional []Param
	cfg      Config

	// cursor state, only used while New runs
	tokens   []string
	position int

	values  map[string]any
	order   []string
	success bool
	message string
	err     *ParseError
}

// New parses tokens eagerly and returns the finished helper.
// tokens normally is os.Args; cfg.SkipLeading tokens are dropped first.
func New(required, optional []Param, cfg Config, tokens []string) *ArgsHelper {
	h := &ArgsHelper{
		required: slices.Clone(required),
		optional: slices.Clone(optional),
		cfg:      cfg.normalized(),
		tokens:   tokens,
		values:   make(map[string]any, len(required)+len(optional)),
		message:  resultIncomplete,
	}
	h.position = h.cfg.SkipLeading

	if err := h.parse(); err != nil {
		h.err = err
		h.message = err.Message
	} else {
		h.success = true
		h.message = resultSuccess
	}

	h.tokens = nil
	return h
}

// Parse is New with DefaultConfig
func Parse(required, optional []Param, tokens []string) *ArgsHelper {
	return New(required, optional, DefaultConfig(), tokens)
}

// parse runs the single forward pass. The first failure stops it.
func (h *ArgsHelper) parse() *ParseError {
	for _, p := range h.required {
		token, ok := h.advance()
		if !ok {
			return newMissingRequired(p.Name)
		}
		if !p.Type.IsValid(token) {
			return newInvalidValue(token, p.Name)
		}
		h.store(p.Name, p.Type.Convert(token))
	}

	prefix := h.cfg.FlagPrefix
	for {
		token, ok := h.advance()
		if !ok {
			return nil
		}
		if !strings.HasPrefix(token, prefix) {
			return newUnexpectedArgument(token, prefix)
		}

		flag := stripPrefix(token, prefix)
		p, found := h.findOptional(flag)
		if !found {
			return newUnknownFlag(flag, h.optional)
		}

		if p.ValueCount <= 0 {
			h.store(p.Name, []any{})
			continue
		}

		values := h.collectValues(p)
		if len(values) != p.ValueCount {
			return newInsufficientValues(p, len(values))
		}
		h.store(p.Name, values)
	}
}

// advance returns the next token, or false once the stream is exhausted
func (h *ArgsHelper) advance() (string, bool) {
	if h.position >= len(h.tokens) {
		return "", false
	}
	token := h.tokens[h.position]
	h.position++
	return token, true
}

// collectValues consumes up to p.ValueCount tokens. Tokens that fail
// validation are consumed but dropped; the caller checks the final count.
func (h *ArgsHelper) collectValues(p Param) []any {
	values := make([]any, 0, p.ValueCount)
	for range p.ValueCount {
		token, ok := h.advance()
		if !ok {
			break
		}
		if p.Type.IsValid(token) {
			values = append(values, p.Type.Convert(token))
		}
	}
	return values
}

// findOptional returns the first optional param declaring flag
func (h *ArgsHelper) findOptional(flag string) (Param, bool) {
	i := slices.IndexFunc(h.optional, func(p Param) bool { return p.Flag == flag })
	if i < 0 {
		return Param{}, false
	}
	return h.optional[i], true
}

func (h *ArgsHelper) store(name string, value any) {
	if _, exists := h.values[name]; !exists {
		h.order = append(h.order, name)
	}
	h.values[name] = value
}

// stripPrefix removes every leading repetition of prefix
func stripPrefix(token, prefix string) string {
	for strings.HasPrefix(token, prefix) {
		token = token[len(prefix):]
	}
	return token
}

// Success reports whether the whole token stream was accepted
func (h *ArgsHelper) Success() bool {
	return h.success
}

// ResultMessage returns "Success" or the diagnostic of the first failure
func (h *ArgsHelper) ResultMessage() string {
	return h.message
}

// Err returns the *ParseError that stopped parsing, or nil on success
func (h *ArgsHelper) Err() error {
	if h.err == nil {
		return nil
	}
	return h.err
}

// GetValueList returns the stored value for name: a single value for
// required params, a []any for optional params (empty for presence flags).
// The bool is false if name was never populated.
func (h *ArgsHelper) GetValueList(name string) (any, bool) {
	v, ok := h.values[name]
	if list, isList := v.([]any); isList {
		return slices.Clone(list), true
	}
	return v, ok
}

// IsSet returns true if name has a populated, non-nil entry
func (h *ArgsHelper) IsSet(name string) bool {
	v, ok := h.values[name]
	return ok && v != nil
}

// GetInt returns the int value of a required TypeInt param
func (h *ArgsHelper) GetInt(name string) (int, bool) {
	v, ok := h.values[name].(int)
	return v, ok
}

// GetFloat returns the float64 value of a required TypeFloat param
func (h *ArgsHelper) GetFloat(name string) (float64, bool) {
	v, ok := h.values[name].(float64)
	return v, ok
}

// GetString returns the string value of a required TypeString param
func (h *ArgsHelper) GetString(name string) (string, bool) {
	v, ok := h.values[name].(string)
	return v, ok
}

// GetValues returns a copy of the value list of an optional param
func (h *ArgsHelper) GetValues(name string) ([]any, bool) {
	v, ok := h.values[name].([]any)
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// Names returns populated parameter names in the order they were parsed
func (h *ArgsHelper) Names() []string {
	return slices.Clone(h.order)
}
