package ws2812_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/ledspi/ws2812"
)

func newDisplay(t *testing.T, f *fakeTransceiver, n int) *ws2812.Display {
	t.Helper()
	p, err := ws2812.NewPrerendered(f, &ws2812.Opts{NumPixels: n})
	require.NoError(t, err)
	return &ws2812.Display{Prerendered: p}
}

func TestDisplayBounds(t *testing.T) {
	d := newDisplay(t, &fakeTransceiver{}, 7)
	assert.Equal(t, image.Rect(0, 0, 7, 1), d.Bounds())
	assert.Equal(t, "ws2812{7px}", d.String())
}

func TestDisplayDraw(t *testing.T) {
	f := &fakeTransceiver{}
	d := newDisplay(t, f, 3)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0x10, A: 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{G: 0x20, A: 0xFF})
	img.SetNRGBA(2, 0, color.NRGBA{B: 0x30, A: 0xFF})

	require.NoError(t, d.Draw(d.Bounds(), img, image.Point{}))

	assert.Equal(t, ws2812.Color{R: 0x10}, d.ColorAt(0))
	assert.Equal(t, ws2812.Color{G: 0x20}, d.ColorAt(1))
	assert.Equal(t, ws2812.Color{B: 0x30}, d.ColorAt(2))

	checkHandshake(t, f)
	assert.Len(t, f.sent(), 1+36+140, "Draw must flush the frame")
}

func TestDisplayHalt(t *testing.T) {
	f := &fakeTransceiver{}
	d := newDisplay(t, f, 2)

	d.SetAll(ws2812.Color{R: 0xFF, G: 0xFF, B: 0xFF})
	require.NoError(t, d.Halt())

	for i := 0; i < d.NumPixels(); i++ {
		assert.Equal(t, ws2812.Color{}, d.ColorAt(i))
	}
	checkHandshake(t, f)
}
