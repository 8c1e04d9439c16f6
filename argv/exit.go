package argv

import (
	"errors"
)

// Default exit codes used by ExitCode
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitMisusage     = 2
)

// ExitCodes maps parse failures to process exit codes.
// Unmapped error types fall back to Misusage.
type ExitCodes struct {
	Success      int
	GeneralError int
	Misusage     int
	byType       map[ErrorType]int
}

// NewExitCodes returns the default mapping: 0 on success, 2 for every
// parse failure, 1 for any other error.
func NewExitCodes() *ExitCodes {
	return &ExitCodes{
		Success:      ExitSuccess,
		GeneralError: ExitGeneralError,
		Misusage:     ExitMisusage,
		byType:       make(map[ErrorType]int),
	}
}

// Define overrides the exit code for one error type
func (e *ExitCodes) Define(typ ErrorType, code int) *ExitCodes {
	e.byType[typ] = code
	return e
}

// Resolve converts err to an exit code.
// Precedence:
//  1. nil -> Success
//  2. *ParseError with a Define mapping
//  3. *ParseError -> Misusage
//  4. anything else -> GeneralError
func (e *ExitCodes) Resolve(err error) int {
	if err == nil {
		return e.Success
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.byType[parseErr.Type]; ok {
			return code
		}
		return e.Misusage
	}

	return e.GeneralError
}

var defaultExitCodes = NewExitCodes()

// ExitCode resolves err with the default mapping
func ExitCode(err error) int {
	return defaultExitCodes.Resolve(err)
}
