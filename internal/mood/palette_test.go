package mood

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name      string
		v         Vector
		intensity Intensity
		wantC1    string
		wantC2    string
		wantC3    string
		wantNoise float64
		wantBlur  int
	}{
		{
			name:      "zero vector medium",
			v:         Vector{},
			intensity: Medium,
			wantC1:    "hsl(210 45% 53%)",
			wantC2:    "hsl(250 45% 22%)",
			wantC3:    "hsl(330 41% 20%)",
			wantNoise: 0.08,
			wantBlur:  30,
		},
		{
			name:      "zero vector low",
			v:         Vector{},
			intensity: Low,
			wantC1:    "hsl(210 45% 53%)",
			wantC2:    "hsl(250 45% 22%)",
			wantC3:    "hsl(330 41% 20%)",
			wantNoise: 0.06,
			wantBlur:  27,
		},
		{
			name:      "anxious and tired blend",
			v:         Mix([]Mood{catalog[0], catalog[1]}),
			intensity: Medium,
			wantC1:    "hsl(168 71% 30%)",
			wantC2:    "hsl(218 71% 31%)",
			wantC3:    "hsl(288 64% 29%)",
			wantNoise: 0.197,
			wantBlur:  26,
		},
		{
			name:      "high intensity anxious",
			v:         Vector{Stress: 0.9, Energy: 0.4, Warmth: 0.2},
			intensity: High,
			wantC1:    "hsl(182 81% 22%)",
			wantC2:    "hsl(238 81% 36%)",
			wantC3:    "hsl(302 73% 26%)",
			wantNoise: 0.3025,
			wantBlur:  26,
		},
		{
			name:      "noise clamps to one",
			v:         Vector{Stress: 5, Energy: 1, Warmth: 0},
			intensity: High,
			wantC1:    "hsl(210 245% -122%)",
			wantC2:    "hsl(290 245% 57%)",
			wantC3:    "hsl(330 221% 20%)",
			wantNoise: 1,
			wantBlur:  14,
		},
		{
			name:      "noise clamps to zero and hue is not wrapped",
			v:         Vector{Stress: -1, Energy: 0, Warmth: -1},
			intensity: Medium,
			wantC1:    "hsl(350 5% 88%)",
			wantC2:    "hsl(390 5% 22%)",
			wantC3:    "hsl(470 5% -10%)",
			wantNoise: 0,
			wantBlur:  30,
		},
		{
			name:      "unknown intensity behaves like medium",
			v:         Vector{},
			intensity: Intensity("Extreme"),
			wantC1:    "hsl(210 45% 53%)",
			wantC2:    "hsl(250 45% 22%)",
			wantC3:    "hsl(330 41% 20%)",
			wantNoise: 0.08,
			wantBlur:  30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Synthesize(tt.v, tt.intensity)

			if got := p.C1.String(); got != tt.wantC1 {
				t.Errorf("C1 = %q, want %q", got, tt.wantC1)
			}
			if got := p.C2.String(); got != tt.wantC2 {
				t.Errorf("C2 = %q, want %q", got, tt.wantC2)
			}
			if got := p.C3.String(); got != tt.wantC3 {
				t.Errorf("C3 = %q, want %q", got, tt.wantC3)
			}
			if !approx(p.NoiseOpacity, tt.wantNoise) {
				t.Errorf("NoiseOpacity = %v, want %v", p.NoiseOpacity, tt.wantNoise)
			}
			if p.BlurRadius != tt.wantBlur {
				t.Errorf("BlurRadius = %d, want %d", p.BlurRadius, tt.wantBlur)
			}
		})
	}
}

func TestSynthesizeBoundaryExact(t *testing.T) {
	p := Synthesize(Vector{}, Medium)
	if p.NoiseOpacity != 0.08 {
		t.Errorf("NoiseOpacity = %v, want exactly 0.08", p.NoiseOpacity)
	}
	if p.BlurRadius != 30 {
		t.Errorf("BlurRadius = %d, want exactly 30", p.BlurRadius)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	v := Mix([]Mood{catalog[2], catalog[4]})
	for _, intensity := range Intensities() {
		a := Synthesize(v, intensity)
		b := Synthesize(v, intensity)
		if a != b {
			t.Errorf("Synthesize(%v) not deterministic: %+v != %+v", intensity, a, b)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{in: 2.5, want: 3},
		{in: 2.49, want: 2},
		{in: -2.5, want: -2},
		{in: -2.51, want: -3},
		{in: -0.4, want: 0},
		{in: 167.99999999999997, want: 168},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseIntensity(t *testing.T) {
	for _, want := range Intensities() {
		got, err := ParseIntensity(string(want))
		if err != nil || got != want {
			t.Errorf("ParseIntensity(%q) = %q, %v", want, got, err)
		}
	}

	for _, bad := range []string{"", "low", "HIGH", "Max"} {
		if _, err := ParseIntensity(bad); !errors.Is(err, ErrUnknownIntensity) {
			t.Errorf("ParseIntensity(%q) error = %v, want ErrUnknownIntensity", bad, err)
		}
	}
}

func TestHSLColor(t *testing.T) {
	red := HSL{H: 0, S: 100, L: 50}
	if got := red.Hex(); got != "#ff0000" {
		t.Errorf("red.Hex() = %q, want #ff0000", got)
	}

	// Hue wraps modulo 360 when converted to RGB
	if a, b := (HSL{H: 360, S: 100, L: 50}).Hex(), red.Hex(); a != b {
		t.Errorf("hue 360 = %q, hue 0 = %q", a, b)
	}
	if a, b := (HSL{H: -120, S: 60, L: 40}).Hex(), (HSL{H: 240, S: 60, L: 40}).Hex(); a != b {
		t.Errorf("hue -120 = %q, hue 240 = %q", a, b)
	}

	// Out-of-range lightness clamps instead of overflowing
	if got := (HSL{H: 10, S: 300, L: -40}).Hex(); got != "#000000" {
		t.Errorf("clamped Hex() = %q, want #000000", got)
	}
}

func TestPaletteJSON(t *testing.T) {
	data, err := json.Marshal(Synthesize(Vector{}, Medium))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"c1":"hsl(210 45% 53%)","c2":"hsl(250 45% 22%)","c3":"hsl(330 41% 20%)","noiseOpacity":0.08,"blurRadius":30}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
