package scene

import (
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/Carmen-Shannon/pixel-theater/engine/params"
)

// Metadata setters, called from a scene's constructor or Setup.

// SetName sets the scene's display name.
func (b *Base) SetName(name string) { b.name = name }

// SetDescription sets the scene's one-line description.
func (b *Base) SetDescription(description string) { b.description = description }

// SetVersion sets the scene's version string.
func (b *Base) SetVersion(version string) { b.version = version }

// SetAuthor sets the scene's author.
func (b *Base) SetAuthor(author string) { b.author = author }

// Name returns the scene's display name.
func (b *Base) Name() string { return b.name }

// Description returns the scene's description.
func (b *Base) Description() string { return b.description }

// Version returns the scene's version string.
func (b *Base) Version() string { return b.version }

// Author returns the scene's author.
func (b *Base) Author() string { return b.author }

// --- LED access ---------------------------------------------------------

// Led returns the LED at index, clamped to the buffer.
func (b *Base) Led(index int) *color.CRGB {
	return b.leds.Led(index)
}

// Leds returns the whole LED slice for bulk operations.
func (b *Base) Leds() []color.CRGB {
	return b.leds.Leds()
}

// LedCount returns the LED count.
func (b *Base) LedCount() int {
	return b.leds.LedCount()
}

// --- Timing -------------------------------------------------------------

// Millis returns milliseconds since process start.
func (b *Base) Millis() uint32 { return b.platform.Millis() }

// DeltaTime returns seconds since the previous frame, capped at 0.1.
func (b *Base) DeltaTime() float32 { return b.platform.DeltaTime() }

// --- Random -------------------------------------------------------------

// Random8 returns a random byte from the effects generator.
func (b *Base) Random8() uint8 { return b.platform.Random8() }

// Random16 returns a random 16-bit value from the effects generator.
func (b *Base) Random16() uint16 { return b.platform.Random16() }

// Random returns a random value in [0, max).
func (b *Base) Random(max int32) int32 { return b.platform.Random(max) }

// RandomBetween returns a random value in [min, max).
func (b *Base) RandomBetween(min, max int32) int32 {
	return b.platform.RandomBetween(min, max)
}

// RandomFloat returns a random float in [0, 1].
func (b *Base) RandomFloat() float32 { return b.platform.RandomFloat() }

// RandomFloatMax returns a random float in [0, max].
func (b *Base) RandomFloatMax(max float32) float32 {
	return b.platform.RandomFloatMax(max)
}

// RandomFloatBetween returns a random float in [min, max].
func (b *Base) RandomFloatBetween(min, max float32) float32 {
	return b.platform.RandomFloatBetween(min, max)
}

// --- Logging ------------------------------------------------------------

// LogInfo writes a formatted info line through the platform.
func (b *Base) LogInfo(format string, args ...any) {
	b.platform.LogInfo(format, args...)
}

// LogWarning writes a formatted warning line through the platform.
func (b *Base) LogWarning(format string, args ...any) {
	b.platform.LogWarning(format, args...)
}

// LogError writes a formatted error line through the platform.
func (b *Base) LogError(format string, args ...any) {
	b.platform.LogError(format, args...)
}

// --- Parameter definition helpers ---------------------------------------

// ParamFloat defines a float parameter from its wire type name inside
// Setup. Unknown type names are dropped with a warning.
//
// Parameters:
//   - name: parameter name
//   - typeName: "ratio", "signed_ratio", "angle", "signed_angle", "range"
//   - defaultVal: the default value
//   - flags: flag words ("clamp", "wrap", ...)
//   - description: shown in host UIs
func (b *Base) ParamFloat(name, typeName string, defaultVal float32, flags, description string) {
	t, ok := params.TypeFromString(typeName)
	if !ok || !t.IsFloat() {
		b.SettingsStore().AddParameterFromStrings(name, typeName, params.FloatValue(defaultVal), flags)
		return
	}
	if t == params.TypeRange {
		b.SettingsStore().AddParameter(params.NewRangeDef(name, 0, 1, defaultVal, params.FlagsFromString(flags), description))
		return
	}
	b.SettingsStore().AddParameter(params.NewSemanticDef(name, t, defaultVal, params.FlagsFromString(flags), description))
}

// ParamRange defines a float parameter with an authored range.
func (b *Base) ParamRange(name string, min, max, defaultVal float32, flags, description string) {
	b.SettingsStore().AddParameter(params.NewRangeDef(name, min, max, defaultVal, params.FlagsFromString(flags), description))
}

// ParamCount defines an integer parameter with an authored range.
func (b *Base) ParamCount(name string, min, max, defaultVal int, flags, description string) {
	b.SettingsStore().AddParameter(params.NewCountDef(name, min, max, defaultVal, params.FlagsFromString(flags), description))
}

// ParamSwitch defines a boolean parameter.
func (b *Base) ParamSwitch(name string, defaultVal bool, description string) {
	b.SettingsStore().AddParameter(params.NewSwitchDef(name, defaultVal, description))
}

// ParamSelect defines a named-option parameter.
func (b *Base) ParamSelect(name string, options []string, defaultOption, flags, description string) {
	b.SettingsStore().AddParameter(params.NewSelectDef(name, options, defaultOption, params.FlagsFromString(flags), description))
}
