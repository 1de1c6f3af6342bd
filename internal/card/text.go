package card

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Text is the signal copy drawn over the card surface.
type Text struct {
	Title     string
	Context   string
	Intensity string
	Closest   string
	Summary   string
	Respond   string
}

// key identifies the text for caching.
func (t Text) key() string {
	return strings.Join([]string{t.Title, t.Context, t.Intensity, t.Closest, t.Summary, t.Respond}, "\x1f")
}

type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// loadFonts parses the embedded Go fonts once. Parsed fonts are safe for
// concurrent use; faces are not, so each render builds its own.
var loadFonts = sync.OnceValues(func() (fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parsing bold font: %w", err)
	}
	return fontSet{regular: regular, bold: bold}, nil
})

// faces holds the sized faces for one render.
type faces struct {
	eyebrow, title, meta, metaBold, label, body font.Face
}

func newFaces(fs fontSet, scale float64) (*faces, error) {
	size := func(f *opentype.Font, px float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    px * scale,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var (
		fc  faces
		err error
	)
	specs := []struct {
		dst  *font.Face
		font *opentype.Font
		px   float64
	}{
		{&fc.eyebrow, fs.regular, 12},
		{&fc.title, fs.bold, 18},
		{&fc.meta, fs.regular, 12},
		{&fc.metaBold, fs.bold, 12},
		{&fc.label, fs.bold, 13},
		{&fc.body, fs.regular, 14},
	}
	for _, s := range specs {
		if *s.dst, err = size(s.font, s.px); err != nil {
			fc.close()
			return nil, fmt.Errorf("creating font face: %w", err)
		}
	}
	return &fc, nil
}

func (fc *faces) close() {
	for _, f := range []font.Face{fc.eyebrow, fc.title, fc.meta, fc.metaBold, fc.label, fc.body} {
		if f != nil {
			_ = f.Close()
		}
	}
}

// textScale sizes the layout relative to a 640x300 card, which is roughly the
// on-screen card.
func textScale(width, height int) float64 {
	return math.Min(float64(width)/640, float64(height)/300)
}

// minTextScale is the smallest scale at which the copy is drawn at all.
const minTextScale = 0.1

// run is a piece of a line set in one face and color.
type run struct {
	face font.Face
	col  color.Color
	text string
}

// pen lays text out top to bottom inside a left/right margin.
type pen struct {
	dst   *image.RGBA
	left  fixed.Int26_6
	right fixed.Int26_6
	y     fixed.Int26_6 // top of the next line
}

// line draws runs side by side on one line and advances by lineHeight times
// the tallest face.
func (p *pen) line(lineHeight float64, runs ...run) {
	var ascent, height fixed.Int26_6
	for _, r := range runs {
		m := r.face.Metrics()
		ascent = max(ascent, m.Ascent)
		height = max(height, m.Height)
	}

	x := p.left
	for _, r := range runs {
		d := font.Drawer{
			Dst:  p.dst,
			Src:  image.NewUniform(r.col),
			Face: r.face,
			Dot:  fixed.Point26_6{X: x, Y: p.y + ascent},
		}
		d.DrawString(r.text)
		x = d.Dot.X
	}

	p.y += mulFixed(height, lineHeight)
}

// skip advances the pen by px pixels.
func (p *pen) skip(px float64) {
	p.y += fixed.Int26_6(px * 64)
}

// wrap splits s into lines no wider than width in face.
func wrap(face font.Face, s string, width fixed.Int26_6) []string {
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if cur != "" && font.MeasureString(face, next) > width {
			lines = append(lines, cur)
			cur = word
			continue
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

func mulFixed(v fixed.Int26_6, f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * f))
}

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	whiteSoft = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xd9} // 85%
	whiteDim  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc} // 80%
	whiteText = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf2} // 95%
)

// drawText lays out the card copy: eyebrow, title and meta lines, then the
// Summary and How to respond blocks on translucent dark panels.
func drawText(img *image.RGBA, t Text) error {
	fs, err := loadFonts()
	if err != nil {
		return err
	}

	scale := textScale(img.Bounds().Dx(), img.Bounds().Dy())
	if scale < minTextScale {
		return nil
	}
	fc, err := newFaces(fs, scale)
	if err != nil {
		return err
	}
	defer fc.close()

	pad := 16 * scale
	p := &pen{
		dst:   img,
		left:  fixed.Int26_6(pad * 64),
		right: fixed.Int26_6((float64(img.Bounds().Dx()) - pad) * 64),
		y:     fixed.Int26_6(pad * 64),
	}

	p.line(1.2, run{fc.eyebrow, whiteDim, "Silent Signal"})
	p.skip(2 * scale)
	p.line(1.2, run{fc.title, white, t.Title})
	for _, meta := range [][2]string{
		{"Context: ", t.Context},
		{"Intensity: ", t.Intensity},
		{"Closest to: ", t.Closest},
	} {
		p.skip(6 * scale)
		p.line(1.2, run{fc.meta, whiteSoft, meta[0]}, run{fc.metaBold, whiteSoft, meta[1]})
	}

	p.skip(14 * scale)
	drawBlock(p, fc, scale, "Summary", t.Summary)
	p.skip(10 * scale)
	drawBlock(p, fc, scale, "How to respond", t.Respond)

	return nil
}

// drawBlock draws one labeled paragraph on a rounded dark panel.
func drawBlock(p *pen, fc *faces, scale float64, label, text string) {
	inset := 12 * scale
	textWidth := p.right - p.left - fixed.Int26_6(2*inset*64)
	lines := wrap(fc.body, text, textWidth)

	labelH := mulFixed(fc.label.Metrics().Height, 1.2)
	bodyH := mulFixed(fc.body.Metrics().Height, 1.45)
	height := fixed.Int26_6(2*inset*64) + labelH + fixed.Int26_6(6*scale*64) + bodyH*fixed.Int26_6(len(lines))

	panel := image.Rect(p.left.Round(), p.y.Round(), p.right.Round(), (p.y + height).Round())
	shade(p.dst, panel, 14*scale, 0.35)

	block := &pen{dst: p.dst, left: p.left + fixed.Int26_6(inset*64), right: p.right, y: p.y + fixed.Int26_6(inset*64)}
	block.line(1.2, run{fc.label, white, label})
	block.skip(6 * scale)
	for _, l := range lines {
		block.line(1.45, run{fc.body, whiteText, l})
	}

	p.y += height
}

// shade darkens r by alpha, with rounded corners of the given radius.
func shade(img *image.RGBA, r image.Rectangle, radius, alpha float64) {
	clip := r.Intersect(img.Bounds())
	keep := 1 - alpha
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if !insideRounded(float64(x)+0.5, float64(y)+0.5, r, radius) {
				continue
			}
			i := img.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				img.Pix[i+c] = uint8(math.Round(float64(img.Pix[i+c]) * keep))
			}
		}
	}
}

func insideRounded(x, y float64, r image.Rectangle, radius float64) bool {
	minX, minY := float64(r.Min.X)+radius, float64(r.Min.Y)+radius
	maxX, maxY := float64(r.Max.X)-radius, float64(r.Max.Y)-radius
	cx := math.Max(minX, math.Min(x, maxX))
	cy := math.Max(minY, math.Min(y, maxY))
	return math.Hypot(x-cx, y-cy) <= radius
}
