package sdf

import (
	"math"
	"sync"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
)

// Default bitmap size.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// Config holds distance field parameters.
type Config struct {
	// Width and Height of the bitmap in pixels.
	Width, Height int
	// CurveSteps is the number of line pieces a curved edge is split into.
	CurveSteps int
	// Workers is the number of goroutines rows are distributed to.
	Workers int
}

// DefaultConfig returns a 64x64 configuration.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		CurveSteps: 12,
		Workers:    4,
	}
}

// Validate checks c and returns an error with code EINVALID if c is not
// usable.
func (c Config) Validate() error {
	if c.Width < 16 || c.Height < 16 {
		return core.Error(core.EINVALID, "sdf bitmap must be at least 16x16, is %dx%d", c.Width, c.Height)
	}
	if c.CurveSteps < 1 {
		return core.Error(core.EINVALID, "sdf curve steps must be positive")
	}
	if c.Workers < 1 {
		return core.Error(core.EINVALID, "sdf workers must be positive")
	}
	return nil
}

// PxRange is the distance range in bitmap pixels, 1/8 of the smaller
// bitmap side.
func (c Config) PxRange() int {
	return min(c.Width, c.Height) >> 3
}

// Generator creates distance fields from glyph shapes.
type Generator struct {
	config Config
}

// NewGenerator creates a generator for config.
func NewGenerator(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Generator{config: config}, nil
}

// DefaultGenerator creates a generator with the default configuration.
func DefaultGenerator() *Generator {
	return &Generator{config: DefaultConfig()}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Generate renders the distance field of shape. Shapes without contours or
// without extent yield a null image.
func (g *Generator) Generate(shape *font.Shape) font.GlyphImage {
	if shape.IsEmpty() {
		return font.GlyphImage{}
	}
	l, b, r, t := shape.Bounds()
	if !(l < r && b < t) {
		tracer().Debugf("shape without extent: (%g,%g)-(%g,%g)", l, b, r, t)
		return font.GlyphImage{}
	}
	w, h := float64(g.config.Width), float64(g.config.Height)
	pxRange := float64(g.config.PxRange())
	frame := font.PointF{X: w - 2*pxRange, Y: h - 2*pxRange}
	dims := font.PointF{X: r - l, Y: t - b}
	var scale float64
	var sdfScale font.PointF
	if dims.X*frame.Y < dims.Y*frame.X { // fit restricted by height
		scale = frame.Y / dims.Y
		sdfScale = font.PointF{X: (frame.X - dims.X*scale) / (dims.X * scale)}
	} else { // fit restricted by width
		scale = frame.X / dims.X
		sdfScale = font.PointF{Y: (frame.Y - dims.Y*scale) / (dims.Y * scale)}
	}
	widthWhitespace := dims.X * sdfScale.X
	heightWhitespace := dims.Y * sdfScale.Y
	rng := pxRange / scale
	img := font.GlyphImage{
		Rect: font.RectF{
			X: l - rng,
			Y: -t - heightWhitespace - rng,
			W: dims.X + widthWhitespace + 2*rng,
			H: dims.Y + heightWhitespace + 2*rng,
		},
	}
	translate := font.PointF{X: -l + rng, Y: -b + rng}
	field := &field{
		segments: mergeContours(shape, g.config.CurveSteps),
		all:      flatten(shape, g.config.CurveSteps),
		fillRule: shape.FillRule,
	}
	img.Sdf = font.Sdf{
		Width:  g.config.Width,
		Height: g.config.Height,
		Bitmap: make([]byte, g.config.Width*g.config.Height),
	}
	g.render(img.Sdf, field, scale, translate, rng)
	return img
}

// render fills bitmap rows in parallel. Rows are stored top-down.
func (g *Generator) render(out font.Sdf, f *field, scale float64, translate font.PointF, rng float64) {
	workers := g.config.Workers
	rowsPerWorker := (out.Height + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < out.Height; start += rowsPerWorker {
		end := min(start+rowsPerWorker, out.Height)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				row := (out.Height - 1 - y) * out.Width
				for x := 0; x < out.Width; x++ {
					p := font.PointF{
						X: (float64(x)+0.5)/scale - translate.X,
						Y: (float64(y)+0.5)/scale - translate.Y,
					}
					out.Bitmap[row+x] = distanceToPixel(f.signedDistance(p), rng)
				}
			}
		}(start, end)
	}
	wg.Wait()
}

// distanceToPixel maps a signed distance to [0,255]. 0.5 represents the
// edge, the full byte range covers distances of ±rng/2.
func distanceToPixel(distance, rng float64) byte {
	v := 0.5 + distance/rng
	v = math.Max(0, math.Min(1, v))
	return byte(math.Round(v * 255))
}
