// Package card rasterizes a signal palette into the card image offered for
// download.
package card

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/justestif/silent-signal/internal/mood"
)

// Default card dimensions in pixels.
const (
	DefaultWidth  = 1100
	DefaultHeight = 520
)

// MaxDimension bounds either card dimension; 4096x4096 is a 64 MiB canvas.
const MaxDimension = 4096

// ErrInvalidSize is returned for card dimensions outside 1..MaxDimension.
var ErrInvalidSize = errors.New("invalid card size")

// background is the base fill under every gradient (#0b0b0b).
var background = colorful.Color{R: 11.0 / 255, G: 11.0 / 255, B: 11.0 / 255}

// radial describes an elliptical gradient fading from a color to transparent.
type radial struct {
	cx, cy float64 // center, relative to the card size
	rx, ry float64 // radii in pixels
	stop   float64 // fraction of the radius where the color is fully faded
	color  colorful.Color
}

// alpha returns the gradient coverage at pixel (x, y).
func (g radial) alpha(x, y, w, h float64) float64 {
	dx := (x - g.cx*w) / g.rx
	dy := (y - g.cy*h) / g.ry
	t := math.Sqrt(dx*dx+dy*dy) / g.stop
	return math.Max(0, 1-t)
}

// Render paints the card for p and t at the given size.
//
// Layers, bottom to top: dark base, three radial glows (c3 bottom, c2 top
// right, c1 top left), the blurred conic swirl, the noise overlay, then the
// text panels and copy.
func Render(p mood.Palette, t Text, width, height int) (*image.RGBA, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	c1, c2, c3 := p.C1.Color(), p.C2.Color(), p.C3.Color()
	glows := []radial{
		{cx: 0.5, cy: 1.2, rx: 900, ry: 600, stop: 0.55, color: c3},
		{cx: 1, cy: 0, rx: 900, ry: 500, stop: 0.6, color: c2},
		{cx: 0, cy: 0, rx: 1100, ry: 600, stop: 0.6, color: c1},
	}
	swirl := newConic(c2, c1, c3, float64(p.BlurRadius), float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	w, h := float64(width), float64(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5

			px := background
			for _, g := range glows {
				px = px.BlendRgb(g.color, g.alpha(fx, fy, w, h))
			}
			sc, sa := swirl.at(fx, fy)
			px = px.BlendRgb(sc, sa)
			px = overlay(px, noise(x, y), p.NoiseOpacity)

			r, g, b := px.Clamped().RGB255()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 0xff
		}
	}

	if err := drawText(img, t); err != nil {
		return nil, fmt.Errorf("drawing text: %w", err)
	}

	return img, nil
}

func validSize(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxDimension && height <= MaxDimension
}

// EncodePNG renders the card and encodes it as PNG.
func EncodePNG(p mood.Palette, t Text, width, height int) ([]byte, error) {
	img, err := Render(p, t, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// conic is the rotated color swirl, masked to a soft circle.
// A larger blur radius widens the mask falloff.
type conic struct {
	stops      []colorful.Color
	cx, cy     float64
	inner      float64
	outer      float64
	offsetTurn float64
}

func newConic(a, b, c colorful.Color, blur, w, h float64) conic {
	// circle at 40% 40%, sized to the farthest corner
	cx, cy := 0.4*w, 0.4*h
	far := math.Hypot(w-cx, h-cy)
	return conic{
		stops:      []colorful.Color{a, b, c, a},
		cx:         cx,
		cy:         cy,
		inner:      math.Max(0, 0.55*far-blur),
		outer:      0.70*far + blur,
		offsetTurn: (220 - 8) / 360.0, // start angle minus the -8° rotation
	}
}

// at returns the swirl color and its coverage at (x, y).
func (c conic) at(x, y float64) (colorful.Color, float64) {
	dx, dy := x-c.cx, y-c.cy

	// CSS conic angles run clockwise from 12 o'clock
	turn := math.Atan2(dx, -dy) / (2 * math.Pi)
	turn = math.Mod(turn-c.offsetTurn+2, 1)

	seg := turn * float64(len(c.stops)-1)
	i := int(seg)
	if i >= len(c.stops)-1 {
		i = len(c.stops) - 2
	}
	col := c.stops[i].BlendRgb(c.stops[i+1], seg-float64(i))

	d := math.Hypot(dx, dy)
	var mask float64
	switch {
	case d <= c.inner:
		mask = 1
	case d >= c.outer:
		mask = 0
	default:
		mask = (c.outer - d) / (c.outer - c.inner)
	}

	return col, 0.95 * mask
}

// noise returns a deterministic grain value in [0,1) tiled every 140px.
func noise(x, y int) float64 {
	n := uint32(x%140)*374761393 + uint32(y%140)*668265263
	n = (n ^ (n >> 13)) * 1274126177
	n ^= n >> 16
	return float64(n) / float64(math.MaxUint32+1)
}

// overlay applies an overlay blend of a gray value n onto base with opacity.
func overlay(base colorful.Color, n, opacity float64) colorful.Color {
	blend := func(b float64) float64 {
		if b < 0.5 {
			return 2 * b * n
		}
		return 1 - 2*(1-b)*(1-n)
	}
	top := colorful.Color{R: blend(base.R), G: blend(base.G), B: blend(base.B)}
	return base.BlendRgb(top, opacity)
}
