package params

import (
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/pixel-theater/common"
)

func TestDefaultsAreValid(t *testing.T) {
	defs := []Def{
		NewSemanticDef("r", TypeRatio, 0.5, FlagNone, ""),
		NewSemanticDef("sr", TypeSignedRatio, -0.5, FlagNone, ""),
		NewSemanticDef("a", TypeAngle, 1.0, FlagNone, ""),
		NewSemanticDef("sa", TypeSignedAngle, -1.0, FlagNone, ""),
		NewRangeDef("rg", -10, 10, 3, FlagNone, ""),
		NewCountDef("c", 1, 20, 5, FlagNone, ""),
		NewSwitchDef("sw", true, ""),
		NewSelectDef("sel", []string{"a", "b", "c"}, "b", FlagNone, ""),
	}
	s := NewSettings()
	for _, def := range defs {
		s.AddParameter(def)
		s.SetValue(def.Name, def.DefaultValue())
		got := s.GetValue(def.Name)
		switch {
		case def.Type.IsFloat():
			if got.AsFloat() != def.DefaultFloat {
				t.Errorf("%s: default float round-trip got %v, want %v", def.Name, got.AsFloat(), def.DefaultFloat)
			}
		case def.Type.IsInt():
			if got.AsInt() != def.DefaultInt {
				t.Errorf("%s: default int round-trip got %d, want %d", def.Name, got.AsInt(), def.DefaultInt)
			}
		case def.Type == TypeSwitch:
			if got.AsBool() != def.DefaultBool {
				t.Errorf("%s: default bool round-trip got %v", def.Name, got.AsBool())
			}
		}
	}
}

func TestSelectDefaultIndex(t *testing.T) {
	def := NewSelectDef("mode", []string{"slow", "fast", "wild"}, "fast", FlagNone, "")
	if def.DefaultInt != 1 {
		t.Errorf("default option index = %d, want 1", def.DefaultInt)
	}
	unknown := NewSelectDef("mode", []string{"slow", "fast"}, "bogus", FlagNone, "")
	if unknown.DefaultInt != 0 {
		t.Errorf("unknown default option index = %d, want 0", unknown.DefaultInt)
	}
}

func TestClampFlagRoundTrip(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("speed", TypeRatio, 0.5, FlagClamp, ""))

	s.SetValue("speed", FloatValue(1.5))
	if got := s.GetValue("speed").AsFloat(); got != 1.0 {
		t.Errorf("clamp above: got %v, want 1.0", got)
	}
	s.SetValue("speed", FloatValue(-0.5))
	if got := s.GetValue("speed").AsFloat(); got != 0.0 {
		t.Errorf("clamp below: got %v, want 0.0", got)
	}
}

func TestWrapFlagRoundTrip(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("hue", TypeSignedAngle, 0, FlagWrap, ""))

	s.SetValue("hue", FloatValue(common.PtPi+0.5))
	got := s.GetValue("hue").AsFloat()
	if got < -common.PtPi || got > common.PtPi {
		t.Errorf("wrap left value %v outside [-pi, pi]", got)
	}

	s.AddParameter(NewCountDef("idx", 0, 9, 0, FlagWrap, ""))
	s.SetValue("idx", IntValue(13))
	if got := s.GetValue("idx").AsInt(); got != 3 {
		t.Errorf("int wrap got %d, want 3", got)
	}
}

func TestNoFlagStoresSentinel(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("speed", TypeRatio, 0.5, FlagNone, ""))
	s.SetValue("speed", FloatValue(2.0))
	if got := s.GetValue("speed").AsFloat(); got != common.Sentinel[float32]() {
		t.Errorf("out-of-range without flags: got %v, want sentinel", got)
	}

	s.AddParameter(NewCountDef("n", 0, 10, 5, FlagNone, ""))
	s.SetValue("n", IntValue(50))
	if got := s.GetValue("n").AsInt(); got != common.Sentinel[int]() {
		t.Errorf("int out-of-range without flags: got %d, want sentinel", got)
	}
}

func TestNaNAndInfRejected(t *testing.T) {
	v := FloatValue(float32(math.NaN()))
	if v.AsFloat() != common.Sentinel[float32]() {
		t.Error("NaN should store the float sentinel")
	}
	v = FloatValue(float32(math.Inf(1)))
	if v.AsFloat() != common.Sentinel[float32]() {
		t.Error("+Inf should store the float sentinel")
	}
}

func TestConversionLattice(t *testing.T) {
	f := FloatValue(0.5)
	if !f.CanConvertTo(TypeAngle) || !f.CanConvertTo(TypeRange) {
		t.Error("float family should be mutually convertible")
	}
	if f.CanConvertTo(TypeCount) || f.CanConvertTo(TypeSwitch) {
		t.Error("float must not convert to int or switch")
	}

	i := IntValue(3)
	if !i.CanConvertTo(TypeSelect) || i.CanConvertTo(TypeRatio) {
		t.Error("int family conversion wrong")
	}

	b := BoolValue(true)
	if !b.CanConvertTo(TypeSwitch) || b.CanConvertTo(TypeCount) {
		t.Error("switch is its own island")
	}

	r := StringValue("heat")
	if !r.CanConvertTo(TypeBitmap) || r.CanConvertTo(TypeRatio) {
		t.Error("resource types cross-convert only within themselves")
	}
}

func TestCrossFamilyReadsReturnSentinels(t *testing.T) {
	if got := IntValue(5).AsFloat(); got != common.Sentinel[float32]() {
		t.Errorf("int read as float = %v, want sentinel", got)
	}
	if got := FloatValue(0.5).AsInt(); got != common.Sentinel[int]() {
		t.Errorf("float read as int = %d, want sentinel", got)
	}
	if got := FloatValue(0.5).AsBool(); got != false {
		t.Error("float read as bool should be false sentinel")
	}
}

func TestResetAll(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("speed", TypeRatio, 0.25, FlagClamp, ""))
	s.AddParameter(NewCountDef("n", 0, 10, 7, FlagClamp, ""))

	s.SetValue("speed", FloatValue(0.9))
	s.SetValue("n", IntValue(2))
	s.ResetAll()

	if got := s.GetValue("speed").AsFloat(); got != 0.25 {
		t.Errorf("reset speed = %v, want 0.25", got)
	}
	if got := s.GetValue("n").AsInt(); got != 7 {
		t.Errorf("reset n = %d, want 7", got)
	}
}

func TestAddParameterFromStrings(t *testing.T) {
	s := NewSettings()
	s.AddParameterFromStrings("speed", "ratio", FloatValue(0.5), "clamp")
	if !s.HasParameter("speed") {
		t.Fatal("ratio parameter should be added")
	}
	def, _ := s.GetMetadata("speed")
	if !def.HasFlag(FlagClamp) || def.Type != TypeRatio {
		t.Errorf("metadata wrong: %+v", def)
	}

	s.AddParameterFromStrings("broken", "wobble", FloatValue(1), "")
	if s.HasParameter("broken") {
		t.Error("unknown type should be dropped")
	}

	s.AddParameterFromStrings("on", "switch", BoolValue(true), "")
	if got := s.GetValue("on").AsBool(); got != true {
		t.Error("switch default should be true")
	}
}

func TestProxyTypedAccess(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("speed", TypeRatio, 0.5, FlagClamp, "how fast"))
	s.AddParameter(NewCountDef("n", 0, 255, 200, FlagClamp, ""))
	s.AddParameter(NewSwitchDef("on", true, ""))
	p := NewProxy(s)

	if got := p.Float("speed"); got != 0.5 {
		t.Errorf("Float = %v", got)
	}
	if got := p.Int("n"); got != 200 {
		t.Errorf("Int = %d", got)
	}
	if got := p.Uint8("n"); got != 200 {
		t.Errorf("Uint8 = %d", got)
	}
	if got := p.Bool("on"); got != true {
		t.Error("Bool = false")
	}
	if got := p.Min("speed"); got != 0 {
		t.Errorf("Min = %v", got)
	}
	if got := p.Max("speed"); got != 1 {
		t.Errorf("Max = %v", got)
	}
	if !p.HasFlag("speed", FlagClamp) {
		t.Error("HasFlag(clamp) = false")
	}
	if got := p.Description("speed"); got != "how fast" {
		t.Errorf("Description = %q", got)
	}
}

func TestProxySetTypeMismatch(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("speed", TypeRatio, 0.5, FlagClamp, ""))
	p := NewProxy(s)

	// Assigning a bool to a float parameter stores the float sentinel.
	p.Set("speed", true)
	if got := p.Float("speed"); got != common.Sentinel[float32]() {
		t.Errorf("mismatched Set: got %v, want sentinel", got)
	}

	p.Set("speed", 0.75)
	if got := p.Float("speed"); got != 0.75 {
		t.Errorf("Set(float64) = %v, want 0.75", got)
	}
}

func TestSchemaJSON(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("speed", TypeRatio, 0.5, FlagClamp, "animation \"speed\""))
	s.AddParameter(NewSelectDef("mode", []string{"a", "b"}, "a", FlagNone, ""))
	s.AddParameter(NewSwitchDef("on", true, ""))

	schema := SchemaFromSettings("Test", "desc", s)
	out := schema.JSON()

	for _, want := range []string{
		`"name":"Test"`,
		`"description":"desc"`,
		`"type":"ratio"`,
		`"min":0`,
		`"max":1`,
		`"default":0.5`,
		`"flags":"clamp"`,
		`"options":["a","b"]`,
		`"type":"switch"`,
		`"default":true`,
		`animation \"speed\"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("schema JSON missing %s:\n%s", want, out)
		}
	}
}

func TestSetFromString(t *testing.T) {
	s := NewSettings()
	s.AddParameter(NewSemanticDef("speed", TypeRatio, 0.5, FlagClamp, ""))
	s.AddParameter(NewCountDef("n", 0, 10, 5, FlagClamp, ""))
	s.AddParameter(NewSwitchDef("on", false, ""))

	s.SetFromString("speed", "1.5")
	if got := s.GetValue("speed").AsFloat(); got != 1.0 {
		t.Errorf("SetFromString clamp = %v, want 1.0", got)
	}
	s.SetFromString("n", "7")
	if got := s.GetValue("n").AsInt(); got != 7 {
		t.Errorf("SetFromString int = %d, want 7", got)
	}
	s.SetFromString("on", "true")
	if !s.GetValue("on").AsBool() {
		t.Error("SetFromString bool failed")
	}

	// Unparseable text leaves the value unchanged.
	s.SetFromString("n", "zebra")
	if got := s.GetValue("n").AsInt(); got != 7 {
		t.Errorf("unparseable text changed value to %d", got)
	}
}
