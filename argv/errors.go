package argv

import (
	"strconv"

	"github.com/dzonerzy/go-argv/internal/fuzzy"
)

// ErrorType represents the category of a parse failure.
// Categories drive flag suggestions and exit-code mapping (see ExitCodes).
type ErrorType string

const (
	ErrorTypeMissingRequired    ErrorType = "missing_required"
	ErrorTypeInvalidValue       ErrorType = "invalid_value"
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
	ErrorTypeUnknownFlag        ErrorType = "unknown_flag"
	ErrorTypeInsufficientValues ErrorType = "insufficient_values"
)

// suggestDistance is the maximum edit distance for flag suggestions
const suggestDistance = 2

// ParseError is the structured failure recorded by ArgsHelper.
// Message is exactly what ResultMessage reports.
type ParseError struct {
	Type       ErrorType
	Message    string
	Param      string // parameter involved, if any
	Token      string // offending token, if any
	Flag       string // flag name after prefix stripping (unknown_flag)
	Got        int    // converted values (insufficient_values)
	Expected   int    // declared value count (insufficient_values)
	Suggestion string // closest declared flag (unknown_flag), or ""
}

func (e *ParseError) Error() string {
	return e.Message
}

// Is matches any *ParseError of the same Type, so the Err* sentinels can be
// used with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Type == e.Type
}

// Sentinels for errors.Is
var (
	ErrMissingRequired    = &ParseError{Type: ErrorTypeMissingRequired, Message: "missing required parameter"}
	ErrInvalidValue       = &ParseError{Type: ErrorTypeInvalidValue, Message: "invalid parameter value"}
	ErrUnexpectedArgument = &ParseError{Type: ErrorTypeUnexpectedArgument, Message: "unexpected argument"}
	ErrUnknownFlag        = &ParseError{Type: ErrorTypeUnknownFlag, Message: "unrecognized flag"}
	ErrInsufficientValues = &ParseError{Type: ErrorTypeInsufficientValues, Message: "insufficient number of arguments"}
)

func newMissingRequired(name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeMissingRequired,
		Message: "Missing required parameter " + quote(name),
		Param:   name,
	}
}

func newInvalidValue(token, name string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Message: quote(token) + " is not valid for parameter " + quote(name),
		Param:   name,
		Token:   token,
	}
}

func newUnexpectedArgument(token, prefix string) *ParseError {
	return &ParseError{
		Type: ErrorTypeUnexpectedArgument,
		Message: "Unexpected argument: " + quote(token) +
			". Expected: flag beginning with " + quote(prefix) + ", or end of arguments",
		Token: token,
	}
}

// newUnknownFlag builds an unknown_flag error and looks up the closest
// declared flag among optional.
func newUnknownFlag(flag string, optional []Param) *ParseError {
	flags := make([]string, 0, len(optional))
	for _, p := range optional {
		flags = append(flags, p.Flag)
	}
	return &ParseError{
		Type:       ErrorTypeUnknownFlag,
		Message:    "Unrecognized flag: " + quote(flag),
		Flag:       flag,
		Suggestion: fuzzy.FindBestFlag(flag, flags, suggestDistance),
	}
}

func newInsufficientValues(p Param, got int) *ParseError {
	return &ParseError{
		Type: ErrorTypeInsufficientValues,
		Message: "Insufficient number of arguments (" + strconv.Itoa(got) +
			") provided for parameter " + quote(p.Name) + ". Expected: " + strconv.Itoa(p.ValueCount),
		Param:    p.Name,
		Flag:     p.Flag,
		Got:      got,
		Expected: p.ValueCount,
	}
}

// quote wraps s in double quotes verbatim, without Go escaping
func quote(s string) string {
	return `"` + s + `"`
}
