// Package engine provides the Theater, the facade that owns the platform,
// model, LED buffer, and scene list, and drives per-frame execution. Host
// glue interacts with the engine almost entirely through this package.
package engine

import (
	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/leds"
	"github.com/Carmen-Shannon/pixel-theater/engine/model"
	"github.com/Carmen-Shannon/pixel-theater/engine/params"
	"github.com/Carmen-Shannon/pixel-theater/engine/platform"
	"github.com/Carmen-Shannon/pixel-theater/engine/profiler"
	"github.com/Carmen-Shannon/pixel-theater/engine/scene"
)

// Theater owns one platform, one model, one LED buffer view, and an ordered
// scene list with a current scene. It is single-threaded and cooperative:
// one render loop calls Update at the target frame rate, and scene switches
// take effect between ticks.
type Theater struct {
	platform platform.Platform
	model    model.Model
	leds     leds.Buffer

	scenes  []scene.Scene
	current scene.Scene

	// pending holds scenes queued via WithScenes before the platform
	// exists; prepare drains it.
	pending []scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool

	initialized bool
	started     bool
}

// dummyScene is returned by Scene for out-of-range indices so host glue
// never dereferences nil.
type dummyScene struct {
	scene.Base
}

func newDummyScene() *dummyScene {
	d := &dummyScene{Base: scene.NewBase()}
	d.SetName("DummyScene")
	return d
}

func (d *dummyScene) Setup() {}

func (d *dummyScene) Tick() {}

var dummySceneInstance = newDummyScene()

// New creates an uninitialized Theater. Call one of the UseXPlatform
// methods before adding scenes.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - *Theater: the theater
func New(options ...Option) *Theater {
	t := &Theater{
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// UseNativePlatform initializes the theater with the headless platform,
// for offline development and tests.
//
// Parameters:
//   - def: the model definition to run
//   - options: native platform options
//
// Returns:
//   - error: error if the model definition is invalid
func (t *Theater) UseNativePlatform(def *model.Definition, options ...platform.NativeOption) error {
	if t.initialized {
		t.platform.LogWarning("Theater already initialized; ignoring UseNativePlatform")
		return nil
	}
	p := platform.NewNativePlatform(def.LedCount, options...)
	return t.prepare(p, def)
}

// UseWS2812Platform initializes the theater with the hardware strip driver.
func (t *Theater) UseWS2812Platform(def *model.Definition, options ...platform.WS2812Option) error {
	if t.initialized {
		t.platform.LogWarning("Theater already initialized; ignoring UseWS2812Platform")
		return nil
	}
	p, err := platform.NewWS2812Platform(def.LedCount, options...)
	if err != nil {
		return err
	}
	return t.prepare(p, def)
}

// UseSimPlatform initializes the theater with the desktop simulator.
func (t *Theater) UseSimPlatform(def *model.Definition, options ...platform.SimOption) error {
	if t.initialized {
		t.platform.LogWarning("Theater already initialized; ignoring UseSimPlatform")
		return nil
	}
	p, err := platform.NewSimPlatform(def, options...)
	if err != nil {
		return err
	}
	return t.prepare(p, def)
}

// prepare wires the platform's buffer behind the clamped view, builds the
// runtime model, and marks the theater initialized.
func (t *Theater) prepare(p platform.Platform, def *model.Definition) error {
	m, err := model.New(def, p.LEDs())
	if err != nil {
		return err
	}
	t.platform = p
	t.model = m
	t.leds = leds.NewBuffer(p.LEDs())
	t.initialized = true
	t.platform.LogInfo("Theater initialized.")
	for _, s := range t.pending {
		t.AddScene(s)
	}
	t.pending = nil
	return nil
}

// AddScene connects a scene to the theater's model, LED buffer, and
// platform, and appends it to the scene list. The first scene added becomes
// current. Requires an initialized theater.
func (t *Theater) AddScene(s scene.Scene) {
	if !t.initialized {
		common.Warnf("AddScene called before initialization; ignoring")
		return
	}
	s.Connect(t.model, t.leds, t.platform)
	t.scenes = append(t.scenes, s)
	if t.current == nil {
		t.current = s
	}
}

// Start picks scene 0 as current if none is set and runs its Setup once.
// Subsequent Start calls are no-ops.
func (t *Theater) Start() {
	if !t.initialized || t.started {
		return
	}
	if t.current == nil {
		if len(t.scenes) == 0 {
			t.platform.LogWarning("Theater.Start called with no scenes added.")
			return
		}
		t.current = t.scenes[0]
	}
	t.platform.LogInfo("Theater started.")
	t.current.Setup()
	t.started = true
}

// Update runs one frame: tick the current scene, then commit the buffer
// through the platform.
func (t *Theater) Update() {
	if !t.initialized || t.current == nil {
		return
	}

	profiler.Start("scene_tick")
	t.current.Tick()
	profiler.End()

	profiler.Start("show")
	if err := t.platform.Show(); err != nil {
		t.platform.LogError("show failed: %v", err)
	}
	profiler.End()

	if t.profilingEnabled {
		t.profiler.Tick()
	}
}

// NextScene advances to the next scene, wrapping at the end of the list.
// The incoming scene is Reset then Setup before the next Update.
func (t *Theater) NextScene() {
	t.switchScene(1)
}

// PreviousScene steps back to the previous scene, wrapping at the start.
func (t *Theater) PreviousScene() {
	t.switchScene(-1)
}

func (t *Theater) switchScene(step int) {
	if len(t.scenes) < 2 {
		return
	}
	index := t.currentIndex()
	if index < 0 {
		index = 0
	} else {
		index = (index + step + len(t.scenes)) % len(t.scenes)
	}
	t.current = t.scenes[index]
	t.current.Reset()
	t.current.Setup()
}

func (t *Theater) currentIndex() int {
	for i, s := range t.scenes {
		if s == t.current {
			return i
		}
	}
	return -1
}

// Scene returns the scene at index, or a shared dummy scene for an
// out-of-range index.
func (t *Theater) Scene(index int) scene.Scene {
	if index < 0 || index >= len(t.scenes) {
		if t.platform != nil {
			t.platform.LogError("Theater.Scene index %d out of range", index)
		}
		return dummySceneInstance
	}
	return t.scenes[index]
}

// Scenes returns the scene list.
func (t *Theater) Scenes() []scene.Scene { return t.scenes }

// CurrentScene returns the current scene, or nil before any was added.
func (t *Theater) CurrentScene() scene.Scene { return t.current }

// SceneCount returns the number of scenes.
func (t *Theater) SceneCount() int { return len(t.scenes) }

// Platform returns the live platform, or nil before initialization.
func (t *Theater) Platform() platform.Platform { return t.platform }

// Model returns the runtime model, or nil before initialization.
func (t *Theater) Model() model.Model { return t.model }

// Leds returns the clamped LED buffer view.
func (t *Theater) Leds() leds.Buffer { return t.leds }

// UpdateSceneParameter sets a parameter on the current scene from its
// textual value, the path host UIs use between ticks.
func (t *Theater) UpdateSceneParameter(name, value string) {
	if t.current == nil {
		return
	}
	t.current.Settings().Settings().SetFromString(name, value)
}

// SceneParameterSchema reflects the current scene's parameters.
func (t *Theater) SceneParameterSchema() params.SceneSchema {
	if t.current == nil {
		return params.SceneSchema{}
	}
	return t.current.ParameterSchema()
}
