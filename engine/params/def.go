package params

import "github.com/Carmen-Shannon/pixel-theater/common"

// Def fully describes one parameter: its name, type, range, flags, default,
// and (for select) option table. Defs are immutable once added to a
// Settings store.
type Def struct {
	Name        string
	Type        Type
	Description string

	// MinValue and MaxValue bound range-checked types. For the semantic
	// float types the bounds are implied by the type; for range/count they
	// are authored; for select they span the option indices.
	MinValue float32
	MaxValue float32

	// Type-appropriate defaults; only one is meaningful per type.
	DefaultFloat  float32
	DefaultInt    int
	DefaultBool   bool
	DefaultString string

	// Options holds the named choices of a select parameter.
	Options []string

	Flags Flags
}

// typeRange returns the implied range for a semantic float type.
func typeRange(t Type) (float32, float32) {
	switch t {
	case TypeRatio:
		return common.RatioMin, common.RatioMax
	case TypeSignedRatio:
		return common.SignedRatioMin, common.SignedRatioMax
	case TypeAngle:
		return common.AngleMin, common.AngleMax
	case TypeSignedAngle:
		return common.SignedAngleMin, common.SignedAngleMax
	default:
		s := common.Sentinel[float32]()
		return s, s
	}
}

// NewSemanticDef builds a definition for one of the semantic float types
// (ratio, signed_ratio, angle, signed_angle); the range is implied.
func NewSemanticDef(name string, t Type, defaultVal float32, flags Flags, description string) Def {
	min, max := typeRange(t)
	return Def{
		Name:         name,
		Type:         t,
		Description:  description,
		MinValue:     min,
		MaxValue:     max,
		DefaultFloat: defaultVal,
		Flags:        flags,
	}
}

// NewRangeDef builds a float range definition with an authored range.
func NewRangeDef(name string, min, max, defaultVal float32, flags Flags, description string) Def {
	return Def{
		Name:         name,
		Type:         TypeRange,
		Description:  description,
		MinValue:     min,
		MaxValue:     max,
		DefaultFloat: defaultVal,
		Flags:        flags,
	}
}

// NewCountDef builds an integer range definition.
func NewCountDef(name string, min, max, defaultVal int, flags Flags, description string) Def {
	return Def{
		Name:        name,
		Type:        TypeCount,
		Description: description,
		MinValue:    float32(min),
		MaxValue:    float32(max),
		DefaultInt:  defaultVal,
		Flags:       flags,
	}
}

// NewSwitchDef builds a boolean definition. Switch parameters accept both
// values unconditionally; flags are ignored.
func NewSwitchDef(name string, defaultVal bool, description string) Def {
	return Def{
		Name:        name,
		Type:        TypeSwitch,
		Description: description,
		MinValue:    0,
		MaxValue:    1,
		DefaultBool: defaultVal,
		Flags:       FlagNone,
	}
}

// NewSelectDef builds a select definition. The default is the index of
// defaultOption if it names an option, else 0.
func NewSelectDef(name string, options []string, defaultOption string, flags Flags, description string) Def {
	d := Def{
		Name:        name,
		Type:        TypeSelect,
		Description: description,
		MinValue:    0,
		MaxValue:    float32(len(options) - 1),
		Options:     options,
		Flags:       flags,
	}
	for i, opt := range options {
		if opt == defaultOption {
			d.DefaultInt = i
			break
		}
	}
	return d
}

// NewPaletteDef builds a palette resource-handle definition.
func NewPaletteDef(name, defaultVal, description string) Def {
	return Def{
		Name:          name,
		Type:          TypePalette,
		Description:   description,
		DefaultString: defaultVal,
	}
}

// NewBitmapDef builds a bitmap resource-handle definition.
func NewBitmapDef(name, defaultVal, description string) Def {
	return Def{
		Name:          name,
		Type:          TypeBitmap,
		Description:   description,
		DefaultString: defaultVal,
	}
}

// HasFlag reports whether the definition carries the flag.
func (d *Def) HasFlag(flag Flags) bool { return d.Flags.Has(flag) }

// DefaultValue returns the type-appropriate default as a Value.
func (d *Def) DefaultValue() Value {
	switch {
	case d.Type.IsFloat():
		return Value{typ: d.Type, floatVal: d.DefaultFloat}
	case d.Type.IsInt():
		return Value{typ: d.Type, intVal: d.DefaultInt}
	case d.Type == TypeSwitch:
		return Value{typ: TypeSwitch, boolVal: d.DefaultBool}
	default:
		return Value{typ: d.Type, stringVal: d.DefaultString}
	}
}

// Validate reports whether a value is acceptable for this definition
// without flag transformation: the families must convert and range-checked
// types must be in range.
func (d *Def) Validate(v Value) bool {
	if !v.CanConvertTo(d.Type) {
		return false
	}
	if d.Type.HasRange() {
		if d.Type.IsFloat() {
			f := v.AsFloat()
			return f >= d.MinValue && f <= d.MaxValue
		}
		i := v.AsInt()
		return i >= int(d.MinValue) && i <= int(d.MaxValue)
	}
	return true
}

// ApplyFlags applies the definition's flag rules to a value: CLAMP pins to
// the nearest boundary, WRAP wraps modulo the range, and with no flags an
// out-of-range value becomes the type's sentinel (with a warning).
func (d *Def) ApplyFlags(v Value) Value {
	if !v.CanConvertTo(d.Type) {
		common.Warnf("parameter %q: type mismatch, using sentinel", d.Name)
		return SentinelFor(d.Type)
	}
	if !d.Type.HasRange() {
		return v
	}

	effective := d.Flags.ApplyRules()
	if d.Type.IsFloat() {
		result := applyFloatFlags(v.AsFloat(), d.MinValue, d.MaxValue, effective, d.Name)
		return Value{typ: d.Type, floatVal: result}
	}
	result := applyIntFlags(v.AsInt(), int(d.MinValue), int(d.MaxValue), effective, d.Name)
	return Value{typ: d.Type, intVal: result}
}
