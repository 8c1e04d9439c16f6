package argv

// ParamKind tags the shape of a Param
type ParamKind int

const (
	// KindRequired is a positional parameter holding exactly one value.
	KindRequired ParamKind = iota
	// KindOptional is a flag-selected parameter with a fixed value count.
	KindOptional
)

func (k ParamKind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindOptional:
		return "optional"
	default:
		return "unknown"
	}
}

// Param describes a named parameter slot. Flag and ValueCount are only
// meaningful when Kind is KindOptional.
type Param struct {
	Name       string
	Type       ParamType
	Kind       ParamKind
	Flag       string // compared after the flag prefix is stripped
	ValueCount int    // 0 = presence flag
}

// Required returns a positional parameter descriptor
func Required(name string, typ ParamType) Param {
	return Param{Name: name, Type: typ, Kind: KindRequired}
}

// Optional returns a flag parameter descriptor that consumes exactly
// valueCount tokens after flag is matched.
func Optional(name string, typ ParamType, valueCount int, flag string) Param {
	return Param{
		Name:       name,
		Type:       typ,
		Kind:       KindOptional,
		Flag:       flag,
		ValueCount: valueCount,
	}
}

// IsRequired returns true for positional parameters
func (p Param) IsRequired() bool {
	return p.Kind == KindRequired
}

// IsPresence returns true for optional parameters that take no values
func (p Param) IsPresence() bool {
	return p.Kind == KindOptional && p.ValueCount == 0
}
