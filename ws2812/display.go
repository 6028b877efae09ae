package ws2812

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
)

// Display exposes a Prerendered strip as a one-row display.Drawer, so a
// caller can target real hardware and a terminal preview through the
// same interface.
type Display struct {
	*Prerendered
}

var _ display.Drawer = &Display{}

func (d *Display) String() string {
	return fmt.Sprintf("ws2812{%dpx}", d.NumPixels())
}

// ColorModel implements display.Drawer.
func (d *Display) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer. The strip is a single row.
func (d *Display) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.NumPixels(), 1)
}

// Draw implements display.Drawer, copying row sp.Y of src into the strip
// and flushing the frame.
func (d *Display) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	for x := r.Min.X; x < r.Max.X; x++ {
		c := color.NRGBAModel.Convert(src.At(sp.X+x-r.Min.X, sp.Y)).(color.NRGBA)
		d.SetColor(x, Color{R: c.R, G: c.G, B: c.B})
	}
	return d.Flush()
}

// Halt implements conn.Resource, blanking the strip.
func (d *Display) Halt() error {
	d.SetAll(Color{})
	return d.Flush()
}
