// Package scene defines the user-facing animation contract. A scene embeds
// Base, defines its parameters in Setup, and writes LED colors every Tick
// through the helpers Base provides. The theater owns the model, LED
// buffer, and platform the scene is connected to; the scene keeps
// non-owning references for its lifetime.
package scene

import (
	"github.com/Carmen-Shannon/pixel-theater/engine/leds"
	"github.com/Carmen-Shannon/pixel-theater/engine/model"
	"github.com/Carmen-Shannon/pixel-theater/engine/params"
	"github.com/Carmen-Shannon/pixel-theater/engine/platform"
)

// Scene is one animation with its own parameters and lifecycle. Lifecycle
// order, driven by the theater:
//
//	construct -> Connect (once) -> Setup (once) -> Tick (per frame)
//	-> Reset (on scene switch, followed by Setup again)
//
// Constructors must not touch engine state; Connect only stores the
// injected references; Setup defines parameters and initial state; Tick
// computes colors; Reset returns the scene to its pre-Setup state.
type Scene interface {
	// Connect stores the theater-injected references. Called once before
	// Setup; implementations must not run scene logic here.
	Connect(m model.Model, buffer leds.Buffer, p platform.Platform)

	// Setup initializes scene state and defines parameters. Called once
	// after Connect, and again after each Reset on scene switch.
	Setup()

	// Tick advances the animation one frame. Implementations should call
	// Base.Tick first so the tick counter advances.
	Tick()

	// Reset zeroes the tick counter and restores parameter defaults.
	Reset()

	// Name returns the scene's display name.
	Name() string

	// Description returns the scene's one-line description.
	Description() string

	// Version returns the scene's version string.
	Version() string

	// Author returns the scene's author.
	Author() string

	// Settings returns the scene-facing parameter proxy.
	Settings() *params.Proxy

	// TickCount returns the number of ticks since Setup or Reset.
	TickCount() uint64

	// ParameterSchema reflects the scene's parameters for host UIs.
	ParameterSchema() params.SceneSchema
}

// Base carries the state and helpers every scene shares. Embed it and
// override Setup and Tick.
type Base struct {
	model    model.Model
	leds     leds.Buffer
	platform platform.Platform

	settings *params.Settings
	proxy    *params.Proxy

	name        string
	description string
	version     string
	author      string

	tickCount uint64
}

// NewBase initializes the embedded scene state. Scenes constructed as zero
// values also work: Connect lazily initializes the settings store.
func NewBase() Base {
	s := params.NewSettings()
	return Base{settings: s, proxy: params.NewProxy(s)}
}

// Connect stores the injected model, LED buffer, and platform references.
func (b *Base) Connect(m model.Model, buffer leds.Buffer, p platform.Platform) {
	b.model = m
	b.leds = buffer
	b.platform = p
	if b.settings == nil {
		b.settings = params.NewSettings()
		b.proxy = params.NewProxy(b.settings)
	}
}

// Tick advances the tick counter. Scene implementations call this at the
// top of their own Tick.
func (b *Base) Tick() {
	b.tickCount++
}

// Reset zeroes the tick counter and restores every parameter default.
func (b *Base) Reset() {
	b.tickCount = 0
	if b.settings != nil {
		b.settings.ResetAll()
	}
}

// TickCount returns ticks since Setup or the last Reset.
func (b *Base) TickCount() uint64 { return b.tickCount }

// Model returns the connected geometry.
func (b *Base) Model() model.Model { return b.model }

// Platform returns the connected platform.
func (b *Base) Platform() platform.Platform { return b.platform }

// Settings returns the scene-facing parameter proxy.
func (b *Base) Settings() *params.Proxy {
	if b.proxy == nil {
		b.settings = params.NewSettings()
		b.proxy = params.NewProxy(b.settings)
	}
	return b.proxy
}

// SettingsStore returns the raw settings store (host-side access).
func (b *Base) SettingsStore() *params.Settings {
	b.Settings()
	return b.settings
}

// ParameterSchema reflects the scene's parameters for host UIs.
func (b *Base) ParameterSchema() params.SceneSchema {
	return params.SchemaFromSettings(b.name, b.description, b.SettingsStore())
}
