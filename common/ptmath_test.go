package common

import "testing"

func TestMap(t *testing.T) {
	cases := []struct {
		name                                  string
		x, inMin, inMax, outMin, outMax, want int32
	}{
		{"identity", 5, 0, 10, 0, 10, 5},
		{"scale up", 5, 0, 10, 0, 100, 50},
		{"reversed output", 5, 0, 10, 100, 0, 50},
		{"extrapolate above", 15, 0, 10, 1000, 100, -350},
		{"extrapolate below", -3, 0, 10, 1000, 100, 1270},
		{"zero input range", 50, 100, 100, 0, 100, 0},
		{"negative input range", -5, -10, 0, 0, 100, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Map(c.x, c.inMin, c.inMax, c.outMin, c.outMax)
			if got != c.want {
				t.Errorf("Map(%d, %d, %d, %d, %d) = %d, want %d",
					c.x, c.inMin, c.inMax, c.outMin, c.outMax, got, c.want)
			}
		})
	}
}

func TestMapFloat(t *testing.T) {
	if got := MapFloat(0.5, 0, 1, 0, 100); got != 50 {
		t.Errorf("MapFloat midpoint = %v, want 50", got)
	}
	if got := MapFloat(7, 3, 3, 42, 99); got != 42 {
		t.Errorf("MapFloat zero range = %v, want 42", got)
	}
}

func TestSin8Anchors(t *testing.T) {
	anchors := map[uint8]uint8{0: 128, 64: 255, 128: 128, 192: 1}
	for theta, want := range anchors {
		if got := Sin8(theta); got != want {
			t.Errorf("Sin8(%d) = %d, want %d", theta, got, want)
		}
	}
}

func TestCos8IsQuarterTurnAhead(t *testing.T) {
	for theta := 0; theta < 256; theta++ {
		want := Sin8(uint8(theta + 64))
		if got := Cos8(uint8(theta)); got != want {
			t.Fatalf("Cos8(%d) = %d, want Sin8(%d) = %d", theta, got, theta+64, want)
		}
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	if got := Qadd8(200, 100); got != 255 {
		t.Errorf("Qadd8(200, 100) = %d, want 255", got)
	}
	if got := Qadd8(10, 20); got != 30 {
		t.Errorf("Qadd8(10, 20) = %d, want 30", got)
	}
	if got := Qsub8(10, 20); got != 0 {
		t.Errorf("Qsub8(10, 20) = %d, want 0", got)
	}
	if got := Qsub8(20, 5); got != 15 {
		t.Errorf("Qsub8(20, 5) = %d, want 15", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %d", got)
	}
	if got := Clamp(float32(2.5), 0, 1); got != 1 {
		t.Errorf("Clamp(2.5, 0, 1) = %v", got)
	}
}
