package params

import (
	"strconv"

	"github.com/Carmen-Shannon/pixel-theater/common"
)

// Settings maps parameter names to their definitions and current values for
// one scene. Reads of absent parameters return sentinels and warn; they
// never fail loudly, so scene code keeps its last-good value.
type Settings struct {
	entries map[string]*entry
}

type entry struct {
	def   Def
	value Value
}

// NewSettings creates an empty settings store.
func NewSettings() *Settings {
	return &Settings{entries: make(map[string]*entry)}
}

// AddParameter registers a definition and initializes its value to the
// definition's default. Re-adding a name replaces the old definition.
func (s *Settings) AddParameter(def Def) {
	s.entries[def.Name] = &entry{def: def, value: def.DefaultValue()}
}

// AddRangeParameter registers a float range parameter with flag strings.
func (s *Settings) AddRangeParameter(name string, min, max, defaultVal float32, flags, description string) {
	s.AddParameter(NewRangeDef(name, min, max, defaultVal, FlagsFromString(flags), description))
}

// AddCountParameter registers an integer range parameter with flag strings.
func (s *Settings) AddCountParameter(name string, min, max, defaultVal int, flags, description string) {
	s.AddParameter(NewCountDef(name, min, max, defaultVal, FlagsFromString(flags), description))
}

// AddParameterFromStrings registers a parameter from a type name, default
// value, and flag string — the ergonomic path scenes use in Setup. Unknown
// type names log a warning and drop the parameter; unknown flag words are
// ignored by the liberal flag parser.
//
// Parameters:
//   - name: parameter name, unique within the scene
//   - typeName: wire type name ("ratio", "count", "switch", ...)
//   - defaultVal: type-appropriate default
//   - flags: flag words ("clamp", "wrap", "slew"; any separators)
func (s *Settings) AddParameterFromStrings(name, typeName string, defaultVal Value, flags string) {
	t, ok := TypeFromString(typeName)
	if !ok {
		common.Warnf("parameter %q: unknown type %q, dropping", name, typeName)
		return
	}
	f := FlagsFromString(flags)

	switch {
	case t == TypeRange:
		// A bare range with no authored bounds defaults to the unit range.
		s.AddParameter(NewRangeDef(name, 0, 1, defaultVal.AsFloat(), f, ""))
	case t.IsFloat():
		s.AddParameter(NewSemanticDef(name, t, defaultVal.AsFloat(), f, ""))
	case t == TypeCount:
		s.AddParameter(NewCountDef(name, 0, 100, defaultVal.AsInt(), f, ""))
	case t == TypeSelect:
		common.Warnf("parameter %q: select parameters need an option table, dropping", name)
	case t == TypeSwitch:
		s.AddParameter(NewSwitchDef(name, defaultVal.AsBool(), ""))
	case t == TypePalette:
		s.AddParameter(NewPaletteDef(name, defaultVal.AsString(), ""))
	case t == TypeBitmap:
		s.AddParameter(NewBitmapDef(name, defaultVal.AsString(), ""))
	}
}

// SetValue applies the parameter's flag rules to the value and stores the
// result. Setting an unknown name warns and does nothing.
func (s *Settings) SetValue(name string, v Value) {
	e, ok := s.entries[name]
	if !ok {
		common.Warnf("parameter %q: not defined", name)
		return
	}
	e.value = e.def.ApplyFlags(v)
}

// SetSentinel stores the parameter's type sentinel directly, bypassing flag
// application — the "invalid assignment" path.
func (s *Settings) SetSentinel(name string) {
	e, ok := s.entries[name]
	if !ok {
		return
	}
	e.value = SentinelFor(e.def.Type)
}

// GetValue returns the stored value, or the float sentinel value for an
// unknown name.
func (s *Settings) GetValue(name string) Value {
	e, ok := s.entries[name]
	if !ok {
		common.Warnf("parameter %q: not defined", name)
		return Value{}
	}
	return e.value
}

// HasParameter reports whether the name is defined.
func (s *Settings) HasParameter(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// GetMetadata returns the definition for a name. The second return is false
// for unknown names.
func (s *Settings) GetMetadata(name string) (Def, bool) {
	e, ok := s.entries[name]
	if !ok {
		return Def{}, false
	}
	return e.def, true
}

// GetType returns the parameter's type, or TypeRange for unknown names.
func (s *Settings) GetType(name string) Type {
	e, ok := s.entries[name]
	if !ok {
		return TypeRange
	}
	return e.def.Type
}

// Names returns the defined parameter names in unspecified order.
func (s *Settings) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	return names
}

// Len returns the number of defined parameters.
func (s *Settings) Len() int { return len(s.entries) }

// ResetAll restores every parameter to its definition's default.
func (s *Settings) ResetAll() {
	for _, e := range s.entries {
		e.value = e.def.DefaultValue()
	}
}

// SetFromString parses a textual value against the parameter's type and
// stores it through the normal flag pipeline — the path host UIs use.
// Unparseable text warns and leaves the value unchanged.
func (s *Settings) SetFromString(name, text string) {
	e, ok := s.entries[name]
	if !ok {
		common.Warnf("parameter %q: not defined", name)
		return
	}
	switch {
	case e.def.Type.IsFloat():
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			common.Warnf("parameter %q: cannot parse %q as float", name, text)
			return
		}
		s.SetValue(name, FloatValue(float32(f)))
	case e.def.Type.IsInt():
		i, err := strconv.Atoi(text)
		if err != nil {
			common.Warnf("parameter %q: cannot parse %q as int", name, text)
			return
		}
		s.SetValue(name, IntValue(i))
	case e.def.Type == TypeSwitch:
		b, err := strconv.ParseBool(text)
		if err != nil {
			common.Warnf("parameter %q: cannot parse %q as bool", name, text)
			return
		}
		s.SetValue(name, BoolValue(b))
	default:
		s.SetValue(name, StringValue(text))
	}
}
