// Package anim holds the frame generators the demo binary cycles
// through. Generators are pure: the same elapsed time always yields the
// same frame, which keeps them trivial to test headless.
package anim

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/coreman2200/ledspi/ws2812"
)

// Frame fills dst with a pattern's state at elapsed time t.
type Frame func(dst []ws2812.Color, t time.Duration)

// Solid lights the whole strip in one color.
func Solid(c ws2812.Color) Frame {
	return func(dst []ws2812.Color, _ time.Duration) {
		for i := range dst {
			dst[i] = c
		}
	}
}

// Rainbow sweeps a full hue cycle across the strip, rotating once per
// period.
func Rainbow(period time.Duration) Frame {
	return func(dst []ws2812.Color, t time.Duration) {
		spin := float64(t%period) / float64(period)
		for i := range dst {
			dst[i] = hue(float64(i)/float64(len(dst)) + spin)
		}
	}
}

// Chase runs a single lit pixel down the strip, one lap per period.
func Chase(c ws2812.Color, period time.Duration) Frame {
	return func(dst []ws2812.Color, t time.Duration) {
		pos := int(float64(t%period) / float64(period) * float64(len(dst)))
		for i := range dst {
			if i == pos {
				dst[i] = c
			} else {
				dst[i] = ws2812.Color{}
			}
		}
	}
}

// ByName maps a config/flag pattern name to its generator.
func ByName(name string) (Frame, bool) {
	switch name {
	case "solid":
		return Solid(ws2812.Color{R: 0x99, G: 0x11, B: 0xCC}), true
	case "chase":
		return Chase(ws2812.Color{R: 0xFF, G: 0xFF, B: 0xFF}, 2*time.Second), true
	case "rainbow":
		return Rainbow(5 * time.Second), true
	}
	return nil, false
}

// Scale applies a global brightness factor in place. Factors outside
// 0..1 leave the frame untouched.
func Scale(dst []ws2812.Color, s float64) {
	if s > 1.0 || s < 0.0 {
		return
	}
	for i := range dst {
		dst[i].R = uint8(float64(dst[i].R) * s)
		dst[i].G = uint8(float64(dst[i].G) * s)
		dst[i].B = uint8(float64(dst[i].B) * s)
	}
}

// Image renders a frame into a one-row NRGBA image for display.Drawer
// targets.
func Image(colors []ws2812.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		img.SetNRGBA(x, 0, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
	}
	return img
}

// hue maps h (wrapped into [0,1)) onto the fully saturated color wheel.
func hue(h float64) ws2812.Color {
	h -= math.Floor(h)
	seg := h * 6
	f := seg - math.Floor(seg)
	down := uint8(255 * (1 - f))
	up := uint8(255 * f)
	switch int(seg) % 6 {
	case 0:
		return ws2812.Color{R: 255, G: up}
	case 1:
		return ws2812.Color{R: down, G: 255}
	case 2:
		return ws2812.Color{G: 255, B: up}
	case 3:
		return ws2812.Color{G: down, B: 255}
	case 4:
		return ws2812.Color{R: up, B: 255}
	default:
		return ws2812.Color{R: 255, B: down}
	}
}
