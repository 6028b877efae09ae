package ws2812

// Prerendered keeps one raw byte per channel and renders the SPI
// waveform while the frame is clocked out. Colors can be read and
// written freely between Flush calls; a Flush is a read-only pass over
// whatever is currently stored. This trades a longer transmit for a
// buffer a quarter the size of the rendered frame.
//
// Physical slot order per pixel is green, red, blue, matching the
// strip's wire order. Streamer uses the opposite layout; both are fixed
// contracts of their variant.
type Prerendered struct {
	seq  sequencer
	data []byte
}

// NewPrerendered takes exclusive ownership of t. The channel buffer is
// zeroed and the transceiver is not touched until the first Flush.
func NewPrerendered(t Transceiver, opts *Opts) (*Prerendered, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Prerendered{
		seq:  sequencer{t: t, idlePad: opts.MOSIIdleHigh},
		data: make([]byte, opts.NumPixels*channels),
	}, nil
}

func (p *Prerendered) NumPixels() int {
	return len(p.data) / channels
}

// ByteAt returns the raw stored byte at slot i. i must be below
// 3*NumPixels; out of range panics.
func (p *Prerendered) ByteAt(i int) byte {
	return p.data[i]
}

// ColorAt reassembles pixel i from its three slots.
func (p *Prerendered) ColorAt(i int) Color {
	off := i * channels
	return Color{R: p.data[off+1], G: p.data[off], B: p.data[off+2]}
}

// SetColor stores c into pixel i's slots. The transceiver is untouched.
func (p *Prerendered) SetColor(i int, c Color) {
	off := i * channels
	p.data[off] = c.G
	p.data[off+1] = c.R
	p.data[off+2] = c.B
}

// SetAll stores c into every pixel.
func (p *Prerendered) SetAll(c Color) {
	for i := 0; i < p.NumPixels(); i++ {
		p.SetColor(i, c)
	}
}

// Flush clocks the whole strip out once, expanding each stored byte into
// its four waveform bytes inside the send loop. The first transceiver
// error aborts the frame and is returned to the caller.
func (p *Prerendered) Flush() error {
	return p.seq.transmit(func(put func(byte) error) error {
		for _, v := range p.data {
			w := waveform(v)
			for _, b := range w {
				if err := put(b); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
