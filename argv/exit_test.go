package argv

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	if code := ExitCode(nil); code != ExitSuccess {
		t.Errorf("Expected %d for nil, got %d", ExitSuccess, code)
	}

	h := Parse([]Param{Required("n", TypeInt)}, nil, []string{"prog", "x"})
	if code := ExitCode(h.Err()); code != ExitMisusage {
		t.Errorf("Expected %d for parse error, got %d", ExitMisusage, code)
	}

	wrapped := fmt.Errorf("startup: %w", h.Err())
	if code := ExitCode(wrapped); code != ExitMisusage {
		t.Errorf("Expected %d for wrapped parse error, got %d", ExitMisusage, code)
	}

	if code := ExitCode(errors.New("boom")); code != ExitGeneralError {
		t.Errorf("Expected %d for generic error, got %d", ExitGeneralError, code)
	}

	ok := Parse([]Param{Required("n", TypeInt)}, nil, []string{"prog", "1"})
	if code := ExitCode(ok.Err()); code != ExitSuccess {
		t.Errorf("Expected %d for successful parse, got %d", ExitSuccess, code)
	}
}

func TestExitCodesDefine(t *testing.T) {
	codes := NewExitCodes().
		Define(ErrorTypeUnknownFlag, 64).
		Define(ErrorTypeMissingRequired, 65)

	unknown := Parse(nil, nil, []string{"prog", "-x"})
	if code := codes.Resolve(unknown.Err()); code != 64 {
		t.Errorf("Expected 64 for unknown flag, got %d", code)
	}

	missing := Parse([]Param{Required("n", TypeInt)}, nil, []string{"prog"})
	if code := codes.Resolve(missing.Err()); code != 65 {
		t.Errorf("Expected 65 for missing required, got %d", code)
	}

	unexpected := Parse(nil, nil, []string{"prog", "stray"})
	if code := codes.Resolve(unexpected.Err()); code != ExitMisusage {
		t.Errorf("Expected fallback %d, got %d", ExitMisusage, code)
	}
}
