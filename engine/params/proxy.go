package params

import "github.com/Carmen-Shannon/pixel-theater/common"

// Proxy is the scene-facing view over a Settings store. It adds typed
// getters and a validating assignment on top of the raw value store, so
// scene code reads `p.Float("speed")` and writes `p.Set("speed", 0.5)`.
type Proxy struct {
	settings *Settings
}

// NewProxy wraps a settings store.
func NewProxy(settings *Settings) *Proxy {
	return &Proxy{settings: settings}
}

// Settings returns the underlying store.
func (p *Proxy) Settings() *Settings { return p.settings }

// Float reads a parameter as float32; the float sentinel for a mismatched
// or unknown parameter.
func (p *Proxy) Float(name string) float32 {
	return p.settings.GetValue(name).AsFloat()
}

// Int reads a parameter as int; the int sentinel on mismatch.
func (p *Proxy) Int(name string) int {
	return p.settings.GetValue(name).AsInt()
}

// Uint8 reads a parameter as a narrowed uint8; 0 for negative or
// mismatched values.
func (p *Proxy) Uint8(name string) uint8 {
	v := p.settings.GetValue(name).AsInt()
	return uint8(common.Clamp(v, 0, 255))
}

// Bool reads a parameter as bool; false on mismatch.
func (p *Proxy) Bool(name string) bool {
	return p.settings.GetValue(name).AsBool()
}

// String reads a resource parameter; "" on mismatch.
func (p *Proxy) String(name string) string {
	return p.settings.GetValue(name).AsString()
}

// Set validates value against the parameter's type and flags and stores the
// result. A mismatched Go type stores the parameter's sentinel and warns.
// Accepted Go types: float32, float64, int, uint8, bool, string.
func (p *Proxy) Set(name string, value any) {
	def, ok := p.settings.GetMetadata(name)
	if !ok {
		common.Warnf("parameter %q: not defined", name)
		return
	}

	var v Value
	switch typed := value.(type) {
	case float32:
		v = FloatValue(typed)
	case float64:
		v = FloatValue(float32(typed))
	case int:
		v = IntValue(typed)
	case uint8:
		v = IntValue(int(typed))
	case bool:
		v = BoolValue(typed)
	case string:
		v = StringValue(typed)
	default:
		common.Warnf("parameter %q: unsupported value type, using sentinel", name)
		p.settings.SetSentinel(name)
		return
	}

	if !v.CanConvertTo(def.Type) {
		common.Warnf("parameter %q: invalid value type, using sentinel", name)
		p.settings.SetSentinel(name)
		return
	}
	p.settings.SetValue(name, v)
}

// Min returns the parameter's lower bound.
func (p *Proxy) Min(name string) float32 {
	def, _ := p.settings.GetMetadata(name)
	return def.MinValue
}

// Max returns the parameter's upper bound.
func (p *Proxy) Max(name string) float32 {
	def, _ := p.settings.GetMetadata(name)
	return def.MaxValue
}

// HasFlag reports whether the parameter carries the flag.
func (p *Proxy) HasFlag(name string, flag Flags) bool {
	def, ok := p.settings.GetMetadata(name)
	return ok && def.HasFlag(flag)
}

// Description returns the parameter's description.
func (p *Proxy) Description(name string) string {
	def, _ := p.settings.GetMetadata(name)
	return def.Description
}

// Has reports whether the parameter exists.
func (p *Proxy) Has(name string) bool {
	return p.settings.HasParameter(name)
}

// ResetAll restores every parameter to its default.
func (p *Proxy) ResetAll() {
	p.settings.ResetAll()
}
