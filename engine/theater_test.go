package engine

import (
	"strings"
	"testing"

	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/Carmen-Shannon/pixel-theater/engine/scene"
	"github.com/Carmen-Shannon/pixel-theater/models/pentatest"
)

// countingScene records lifecycle calls for ordering assertions.
type countingScene struct {
	scene.Base

	label      string
	setupCalls int
	resetCalls int
}

func newCountingScene(label string) *countingScene {
	return &countingScene{Base: scene.NewBase(), label: label}
}

func (s *countingScene) Setup() {
	s.SetName(s.label)
	s.setupCalls++
}

func (s *countingScene) Tick() {
	s.Base.Tick()
}

func (s *countingScene) Reset() {
	s.Base.Reset()
	s.resetCalls++
}

func newNativeTheater(t *testing.T) *Theater {
	t.Helper()
	th := New()
	if err := th.UseNativePlatform(pentatest.Def); err != nil {
		t.Fatalf("UseNativePlatform: %v", err)
	}
	return th
}

func TestSceneSwitchLifecycle(t *testing.T) {
	th := newNativeTheater(t)
	a := newCountingScene("A")
	b := newCountingScene("B")
	th.AddScene(a)
	th.AddScene(b)

	th.Start()
	if a.setupCalls != 1 {
		t.Fatalf("after Start: A.setupCalls = %d, want 1", a.setupCalls)
	}
	if b.setupCalls != 0 {
		t.Fatalf("after Start: B.setupCalls = %d, want 0", b.setupCalls)
	}

	th.NextScene()
	if b.resetCalls != 1 || b.setupCalls != 1 {
		t.Fatalf("after NextScene: B reset=%d setup=%d, want 1/1", b.resetCalls, b.setupCalls)
	}

	th.NextScene() // wraps back to A
	if a.resetCalls != 1 || a.setupCalls != 2 {
		t.Fatalf("after wrap: A reset=%d setup=%d, want 1/2", a.resetCalls, a.setupCalls)
	}
	if th.CurrentScene() != scene.Scene(a) {
		t.Error("wrap should land on scene A")
	}

	th.PreviousScene()
	if th.CurrentScene() != scene.Scene(b) {
		t.Error("PreviousScene should land on scene B")
	}
}

func TestSceneIndexClamping(t *testing.T) {
	th := newNativeTheater(t)
	th.AddScene(newCountingScene("only"))

	got := th.Scene(999)
	if got.Name() != "DummyScene" {
		t.Errorf("out-of-range Scene should return the dummy, got %q", got.Name())
	}
	if th.SceneCount() != 1 {
		t.Errorf("SceneCount = %d", th.SceneCount())
	}
}

func TestAddSceneBeforeInitIsIgnored(t *testing.T) {
	th := New()
	th.AddScene(newCountingScene("early"))
	if th.SceneCount() != 0 {
		t.Error("AddScene before initialization must be ignored")
	}
	th.Start()  // must not panic
	th.Update() // must not panic
}

func TestDoubleInitializeIsNoOp(t *testing.T) {
	th := newNativeTheater(t)
	first := th.Platform()
	if err := th.UseNativePlatform(pentatest.Def); err != nil {
		t.Fatalf("second UseNativePlatform errored: %v", err)
	}
	if th.Platform() != first {
		t.Error("second UseNativePlatform must keep the first platform")
	}
}

// fadeScene reproduces the fade-to-black determinism scenario: the first
// tick plants a color, every tick fades it.
type fadeScene struct {
	scene.Base
}

func (s *fadeScene) Setup() { s.SetName("Fade") }

func (s *fadeScene) Tick() {
	s.Base.Tick()
	if s.TickCount() == 1 {
		*s.Led(0) = color.CRGB{R: 200, G: 100, B: 50}
	}
	s.Led(0).FadeToBlackBy(16)
}

func TestFadeToBlackDeterminism(t *testing.T) {
	th := newNativeTheater(t)
	fs := &fadeScene{Base: scene.NewBase()}
	th.AddScene(fs)
	th.Start()

	for i := 0; i < 13; i++ {
		th.Update()
	}

	want := color.CRGB{R: 200, G: 100, B: 50}
	for i := 0; i < 13; i++ {
		want.R = uint8(uint16(want.R) * 240 >> 8)
		want.G = uint8(uint16(want.G) * 240 >> 8)
		want.B = uint8(uint16(want.B) * 240 >> 8)
	}
	if got := *th.Leds().Led(0); got != want {
		t.Errorf("after 13 ticks led 0 = %+v, want %+v", got, want)
	}
}

// paramScene defines one clamped ratio parameter, mirroring the JSON
// round-trip scenario.
type paramScene struct {
	scene.Base
}

func (s *paramScene) Setup() {
	s.SetName("Param")
	s.ParamFloat("speed", "ratio", 0.5, "clamp", "")
}

func (s *paramScene) Tick() { s.Base.Tick() }

func TestParameterJSONRoundTrip(t *testing.T) {
	th := newNativeTheater(t)
	th.AddScene(&paramScene{Base: scene.NewBase()})
	th.Start()

	out := th.SceneParametersJSON()
	for _, want := range []string{
		`"id":"speed"`,
		`"type":"ratio"`,
		`"controlType":"slider"`,
		`"value":"0.500000"`,
		`"min":0`,
		`"max":1`,
		`"step":0.01`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("parameters JSON missing %s:\n%s", want, out)
		}
	}

	th.UpdateSceneParameter("speed", "1.5")
	out = th.SceneParametersJSON()
	if !strings.Contains(out, `"value":"1.000000"`) {
		t.Errorf("clamped update not reflected:\n%s", out)
	}
}

func TestSceneMetadataJSON(t *testing.T) {
	th := newNativeTheater(t)
	s := newCountingScene("Meta \"Quoted\"")
	th.AddScene(s)
	th.Start()
	s.SetDescription("line1\nline2")
	s.SetVersion("1.0")
	s.SetAuthor("someone")

	out := th.SceneMetadataJSON()
	for _, want := range []string{
		`"name":"Meta \"Quoted\""`,
		`"description":"line1\nline2"`,
		`"version":"1.0"`,
		`"author":"someone"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metadata JSON missing %s:\n%s", want, out)
		}
	}
}

func TestUpdateWritesThroughToPlatform(t *testing.T) {
	th := newNativeTheater(t)
	fs := &fadeScene{Base: scene.NewBase()}
	th.AddScene(fs)
	th.Start()
	th.Update()

	// The scene writes land in the platform-owned buffer.
	platformLeds := th.Platform().LEDs()
	if platformLeds[0].IsBlack() {
		t.Error("scene write should reach the platform buffer")
	}
}
