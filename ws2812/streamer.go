package ws2812

// Streamer renders colors into a scratch buffer as they arrive and
// transmits the filled prefix in the same call. The scratch is sized for
// the worst case up front (four SPI bytes per channel byte for a whole
// strip), so WriteColors never renders twice and never allocates.
//
// Raw channel bytes are mirrored per pixel in red, green, blue slot
// order, the opposite layout from Prerendered. Both orders are fixed
// contracts of their variant.
type Streamer struct {
	seq sequencer
	pix []byte // raw channel bytes, 3 per pixel
	buf []byte // rendered scratch, 4 bytes per channel byte
	n   int    // valid rendered bytes, reset each write cycle
}

// NewStreamer takes exclusive ownership of t. Buffers are zeroed and the
// cursor starts at 0; the transceiver is not touched until the first
// WriteColors.
func NewStreamer(t Transceiver, opts *Opts) (*Streamer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	raw := opts.NumPixels * channels
	return &Streamer{
		seq: sequencer{t: t, idlePad: opts.MOSIIdleHigh},
		pix: make([]byte, raw),
		buf: make([]byte, raw*4),
	}, nil
}

func (s *Streamer) NumPixels() int {
	return len(s.pix) / channels
}

// ByteAt returns the raw stored byte at slot i. i must be below
// 3*NumPixels; out of range panics.
func (s *Streamer) ByteAt(i int) byte {
	return s.pix[i]
}

// SetByteAt stores v at slot i, same precondition as ByteAt.
func (s *Streamer) SetByteAt(i int, v byte) {
	s.pix[i] = v
}

// ColorAt reassembles pixel i from its three slots.
func (s *Streamer) ColorAt(i int) Color {
	off := i * channels
	return Color{R: s.pix[off], G: s.pix[off+1], B: s.pix[off+2]}
}

// WriteColors renders colors in order, green channel first per pixel,
// then transmits exactly the rendered prefix: 12 payload bytes per color
// written, not a full strip's worth. This is the variant's sole
// write+transmit entry point. colors must fit the store's pixel
// capacity; overfilling panics.
func (s *Streamer) WriteColors(colors []Color) error {
	s.n = 0
	for i, c := range colors {
		off := i * channels
		s.pix[off] = c.R
		s.pix[off+1] = c.G
		s.pix[off+2] = c.B
		s.render(c.G)
		s.render(c.R)
		s.render(c.B)
	}
	return s.seq.transmit(func(put func(byte) error) error {
		for _, b := range s.buf[:s.n] {
			if err := put(b); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Streamer) render(v byte) {
	w := waveform(v)
	copy(s.buf[s.n:s.n+4], w[:])
	s.n += 4
}
