package argv

import (
	"strconv"
)

// ParamType describes how a single token is validated and converted.
// Only the four variants below exist.
type ParamType string

const (
	// TypeInt accepts optionally signed base-10 integers and converts to int.
	TypeInt ParamType = "int"
	// TypeFloat accepts decimal or exponential literals and converts to float64.
	TypeFloat ParamType = "float64"
	// TypeString accepts any token unchanged.
	TypeString ParamType = "string"
	// TypeNone marks a presence flag that takes no values.
	TypeNone ParamType = "none"
)

// String returns the type tag
func (t ParamType) String() string {
	return string(t)
}

// Valid reports whether t is one of the known variants
func (t ParamType) Valid() bool {
	switch t {
	case TypeInt, TypeFloat, TypeString, TypeNone:
		return true
	}
	return false
}

// IsValid reports whether token can be converted by this type.
// Int and Float use the same strconv rule as Convert, so Convert never
// fails on a token IsValid accepted.
func (t ParamType) IsValid(token string) bool {
	switch t {
	case TypeInt:
		_, err := strconv.Atoi(token)
		return err == nil
	case TypeFloat:
		_, err := strconv.ParseFloat(token, 64)
		return err == nil
	case TypeString:
		return true
	default:
		return false
	}
}

// Convert turns a token into its typed value (int, float64 or string).
// The token must have passed IsValid.
func (t ParamType) Convert(token string) any {
	switch t {
	case TypeInt:
		v, _ := strconv.Atoi(token)
		return v
	case TypeFloat:
		v, _ := strconv.ParseFloat(token, 64)
		return v
	case TypeString:
		return token
	default:
		return nil
	}
}
