package gfx

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/npillmayer/notefonts/core"
	"github.com/npillmayer/notefonts/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// halfField is inside on its left half.
func halfField(size int) font.Sdf {
	sdf := font.Sdf{Width: size, Height: size, Bitmap: make([]byte, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size/2; x++ {
			sdf.Bitmap[y*size+x] = 0xff
		}
	}
	return sdf
}

func TestCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.gfx")
	defer teardown()
	//
	assert.Equal(t, 1.0, Coverage(255, DefaultSpread))
	assert.Equal(t, 0.0, Coverage(0, DefaultSpread))
	assert.Equal(t, 0.5, Coverage(128, DefaultSpread))
	assert.Equal(t, 1.0, Coverage(128, 0))
	assert.Equal(t, 0.0, Coverage(127, 0))
}

func TestCompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.gfx")
	defer teardown()
	//
	assert.Nil(t, Compose(nil, 2, DefaultSpread))
	assert.Nil(t, Compose([]font.GlyphImage{{Rect: font.RectF{W: 10, H: 10}}}, 2, DefaultSpread))
	images := []font.GlyphImage{
		{Rect: font.RectF{X: 0, Y: -20, W: 20, H: 20}, Sdf: halfField(16)},
		{Rect: font.RectF{X: 20, Y: -20, W: 20, H: 20}, Sdf: halfField(16)},
	}
	pic := Compose(images, 2, DefaultSpread)
	require.NotNil(t, pic)
	assert.Equal(t, 44, pic.Bounds().Dx())
	assert.Equal(t, 24, pic.Bounds().Dy())
	assert.Equal(t, uint8(0xff), pic.GrayAt(0, 0).Y, "expected white padding")
	assert.Equal(t, uint8(0), pic.GrayAt(4, 12).Y, "expected ink in left half of first glyph")
	assert.Equal(t, uint8(0xff), pic.GrayAt(19, 12).Y, "expected no ink in right half of first glyph")
	assert.Equal(t, uint8(0), pic.GrayAt(24, 12).Y, "expected ink in left half of second glyph")
}

func TestWritePNG(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notefonts.gfx")
	defer teardown()
	//
	var buf bytes.Buffer
	assert.Equal(t, core.EINVALID, core.Code(WritePNG(&buf, nil)))
	pic := Compose([]font.GlyphImage{{Rect: font.RectF{X: 0, Y: -8, W: 8, H: 8}, Sdf: halfField(8)}}, 0, 0)
	require.NoError(t, WritePNG(&buf, pic))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, pic.Bounds(), decoded.Bounds())
}
