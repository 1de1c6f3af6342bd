package mood

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownIntensity is returned when parsing an unrecognized intensity.
var ErrUnknownIntensity = errors.New("unknown intensity")

// Intensity scales the visual noise and blur treatment.
type Intensity string

// Intensity levels.
const (
	Low    Intensity = "Low"
	Medium Intensity = "Medium"
	High   Intensity = "High"
)

// Intensities returns all intensity levels in display order.
func Intensities() []Intensity {
	return []Intensity{Low, Medium, High}
}

// ParseIntensity returns the intensity named by s (exact match).
func ParseIntensity(s string) (Intensity, error) {
	switch i := Intensity(s); i {
	case Low, Medium, High:
		return i, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownIntensity, s)
}

// Multiplier returns the noise opacity multiplier.
// Unrecognized values behave like Medium.
func (i Intensity) Multiplier() float64 {
	switch i {
	case Low:
		return 0.75
	case High:
		return 1.25
	default:
		return 1.0
	}
}

// blurScale returns the blur radius scale factor.
func (i Intensity) blurScale() float64 {
	switch i {
	case Low:
		return 0.9
	case High:
		return 1.15
	default:
		return 1.0
	}
}

// HSL is an unrounded hue/saturation/lightness triple.
// Saturation and lightness are percentages. Hue is not wrapped.
type HSL struct {
	H float64
	S float64
	L float64
}

// String formats the color as a CSS hsl() value with integer components,
// for example "hsl(168 71% 30%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d %d%% %d%%)", Round(c.H), Round(c.S), Round(c.L))
}

// MarshalText implements encoding.TextMarshaler.
func (c HSL) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Color converts the rounded components to RGB the way a browser would
// interpret the CSS value: hue wraps modulo 360, saturation and lightness
// clamp to [0,100].
func (c HSL) Color() colorful.Color {
	h := math.Mod(float64(Round(c.H)), 360)
	if h < 0 {
		h += 360
	}
	s := math.Max(0, math.Min(100, float64(Round(c.S)))) / 100
	l := math.Max(0, math.Min(100, float64(Round(c.L)))) / 100
	return colorful.Hsl(h, s, l)
}

// Hex returns the color as "#rrggbb".
func (c HSL) Hex() string {
	return c.Color().Clamped().Hex()
}

// Palette is the visual treatment derived from a blended vector.
type Palette struct {
	C1           HSL     `json:"c1"`
	C2           HSL     `json:"c2"`
	C3           HSL     `json:"c3"`
	NoiseOpacity float64 `json:"noiseOpacity"`
	BlurRadius   int     `json:"blurRadius"`
}

// Key identifies the palette's rendered output exactly.
func (p Palette) Key() string {
	return fmt.Sprintf("%s|%s|%s|%g|%d", p.C1, p.C2, p.C3, p.NoiseOpacity, p.BlurRadius)
}

// Synthesize maps a blended vector and intensity to three colors, an overlay
// noise opacity and a blur radius.
//
// Warmer moods lower the base hue, energy widens the gap to the second hue,
// and stress raises saturation. The third color is the base hue rotated 120°.
func Synthesize(v Vector, intensity Intensity) Palette {
	hue1 := 210 - v.Warmth*140
	hue2 := hue1 + 40 + v.Energy*40
	sat := 45 + v.Stress*40
	light1 := 18 + (1-v.Stress)*35
	light2 := 22 + v.Energy*35

	return Palette{
		C1:           HSL{H: hue1, S: sat, L: light1},
		C2:           HSL{H: hue2, S: sat, L: light2},
		C3:           HSL{H: hue1 + 120, S: sat * 0.9, L: 20 + v.Warmth*30},
		NoiseOpacity: clamp01((0.08 + v.Stress*0.18) * intensity.Multiplier()),
		BlurRadius:   Round((12 + (1-v.Energy)*18) * intensity.blurScale()),
	}
}

// Round rounds half toward positive infinity, matching JavaScript's Math.round.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
