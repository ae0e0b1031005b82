package model

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-720, 0},
		{359.5, 359.5},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTargetAngle(t *testing.T) {
	// три сектора по 120°, центр B = 180°, 270-180 = 90
	if got := TargetAngle(1, 3, DefaultPointerAngle); math.Abs(got-90) > eps {
		t.Errorf("expected 90, got %v", got)
	}
	// один сектор: центр 180°
	if got := TargetAngle(0, 1, DefaultPointerAngle); math.Abs(got-90) > eps {
		t.Errorf("expected 90, got %v", got)
	}
}

func TestFinalRotation_LandsUnderPointer(t *testing.T) {
	starts := []float64{0, 17.3, 90, 359.99, 1234.5, -45}
	for n := 1; n <= 24; n++ {
		for index := 0; index < n; index++ {
			for _, start := range starts {
				for extra := 5; extra <= 8; extra++ {
					final := FinalRotation(start, index, n, extra, DefaultPointerAngle)

					if final < start+float64(extra)*FullTurn-eps {
						t.Fatalf("n=%d index=%d start=%v: wheel turned backwards (%v)", n, index, start, final)
					}
					if final >= start+float64(extra+1)*FullTurn {
						t.Fatalf("n=%d index=%d start=%v: more than one extra turn (%v)", n, index, start, final)
					}
					if got := PointedIndex(final, n, DefaultPointerAngle); got != index {
						t.Fatalf("n=%d start=%v extra=%d: pointer at %d, want %d", n, start, extra, got, index)
					}
					if diff := Normalize(final) - TargetAngle(index, n, DefaultPointerAngle); math.Abs(diff) > 1e-6 && math.Abs(math.Abs(diff)-FullTurn) > 1e-6 {
						t.Fatalf("n=%d index=%d: final angle %v, target %v", n, index, Normalize(final), TargetAngle(index, n, DefaultPointerAngle))
					}
				}
			}
		}
	}
}

func TestFinalRotation_CustomPointer(t *testing.T) {
	for _, pointer := range []float64{0, 90, 180} {
		final := FinalRotation(0, 2, 5, 5, pointer)
		if got := PointedIndex(final, 5, pointer); got != 2 {
			t.Errorf("pointer %v: expected index 2, got %d", pointer, got)
		}
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.in); math.Abs(got-tt.want) > eps {
			t.Errorf("EaseOutCubic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("curve is not monotonic at %d", i)
		}
		prev = v
	}
}

func TestProgress(t *testing.T) {
	d := 4 * time.Second
	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{-time.Second, 0},
		{0, 0},
		{time.Second, 0.25},
		{d, 1},
		{10 * time.Second, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.elapsed, d); math.Abs(got-tt.want) > eps {
			t.Errorf("Progress(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
	if got := Progress(time.Second, 0); got != 1 {
		t.Errorf("zero duration should finish immediately, got %v", got)
	}
}

func TestInterpolate(t *testing.T) {
	if got := Interpolate(100, 200, 0.5); math.Abs(got-187.5) > eps {
		t.Errorf("expected 187.5, got %v", got)
	}
	if got := Interpolate(100, 2090.123, 1); got != 2090.123 {
		t.Errorf("final frame must land exactly on end, got %v", got)
	}
}

func TestSegmentColors(t *testing.T) {
	colors := SegmentColors(4)
	want := []string{
		"hsl(0, 70%, 50%)",
		"hsl(90, 80%, 60%)",
		"hsl(180, 90%, 70%)",
		"hsl(270, 70%, 80%)",
	}
	if len(colors) != len(want) {
		t.Fatalf("expected %d colors, got %d", len(want), len(colors))
	}
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("color %d: got %q, want %q", i, colors[i], want[i])
		}
	}

	if got := SegmentColors(3)[1]; got != "hsl(120, 80%, 60%)" {
		t.Errorf("unexpected color %q", got)
	}
	if len(SegmentColors(0)) != 0 {
		t.Error("no segments, no colors")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		text string
		max  int
		want string
	}{
		{"Pizza", 15, "Pizza"},
		{"exactly fifteen", 15, "exactly fifteen"},
		{"a much longer option text", 15, "a much longer o..."},
		{"пельмени с бульоном", 8, "пельмени..."},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := Label(tt.text, tt.max); got != tt.want {
			t.Errorf("Label(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.want)
		}
	}
}
