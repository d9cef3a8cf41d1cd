package params

import (
	"math"

	"github.com/Carmen-Shannon/pixel-theater/common"
)

// Value is the type-safe container for one parameter value. Reads through
// the wrong type family return the target family's sentinel rather than
// failing; NaN and Inf floats are rejected at construction and stored as
// the float sentinel.
type Value struct {
	typ Type

	floatVal  float32
	intVal    int
	boolVal   bool
	stringVal string
}

// FloatValue builds a float-family Value. NaN and ±Inf are invalid
// regardless of flags; they store the sentinel and log a warning.
func FloatValue(v float32) Value {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		common.Warnf("invalid float value (NaN/Inf), using sentinel")
		v = common.Sentinel[float32]()
	}
	return Value{typ: TypeRange, floatVal: v}
}

// IntValue builds an integer-family Value.
func IntValue(v int) Value {
	return Value{typ: TypeCount, intVal: v}
}

// BoolValue builds a switch Value.
func BoolValue(v bool) Value {
	return Value{typ: TypeSwitch, boolVal: v}
}

// StringValue builds a resource-handle Value.
func StringValue(v string) Value {
	return Value{typ: TypePalette, stringVal: v}
}

// Type returns the family tag the value was constructed with.
func (v Value) Type() Type { return v.typ }

// AsFloat returns the float value, or the float sentinel for non-float
// families.
func (v Value) AsFloat() float32 {
	if v.typ.IsFloat() {
		return v.floatVal
	}
	return common.Sentinel[float32]()
}

// AsInt returns the integer value, or the int sentinel for non-integer
// families.
func (v Value) AsInt() int {
	if v.typ.IsInt() {
		return v.intVal
	}
	return common.Sentinel[int]()
}

// AsBool returns the boolean value, or the bool sentinel for non-switch
// families.
func (v Value) AsBool() bool {
	if v.typ == TypeSwitch {
		return v.boolVal
	}
	return common.Sentinel[bool]()
}

// AsString returns the resource handle, or the string sentinel for
// non-resource families.
func (v Value) AsString() string {
	if v.typ.IsResource() {
		return v.stringVal
	}
	return common.Sentinel[string]()
}

// CanConvertTo reports whether the value's family converts to the target
// type. Conversion only happens within a family: float types are mutually
// convertible, integer types likewise, switch is its own island, and
// resources cross-convert only within themselves.
func (v Value) CanConvertTo(target Type) bool {
	switch {
	case v.typ.IsFloat():
		return target.IsFloat()
	case v.typ.IsInt():
		return target.IsInt()
	case v.typ == TypeSwitch:
		return target == TypeSwitch
	case v.typ.IsResource():
		return target.IsResource()
	default:
		return false
	}
}

// SentinelFor returns the sentinel Value for a target type.
func SentinelFor(target Type) Value {
	switch {
	case target.IsFloat():
		return Value{typ: target, floatVal: common.Sentinel[float32]()}
	case target.IsInt():
		return Value{typ: target, intVal: common.Sentinel[int]()}
	case target == TypeSwitch:
		return Value{typ: TypeSwitch, boolVal: common.Sentinel[bool]()}
	default:
		return Value{typ: target, stringVal: common.Sentinel[string]()}
	}
}
