package ws2812

// padBytes zero bytes hold the line low after the payload, long enough
// even at MinFreq to cover the strip's latch interval. The MOSIIdleHigh
// lead padding reuses the same count.
const padBytes = 140

// sequencer owns the send/receive handshake shared by both store
// variants. A zero lead byte is queued before the payload so exactly one
// byte is always in transit: peripherals with a single-byte transmit
// buffer report an overrun when two bytes are queued back to back.
type sequencer struct {
	t       Transceiver
	idlePad bool
}

// exchange sends b and drains the matching receive, keeping the transmit
// offset at one byte throughout the frame.
func (s sequencer) exchange(b byte) error {
	if err := s.t.Send(b); err != nil {
		return err
	}
	_, err := s.t.Receive()
	return err
}

// transmit clocks one full frame: the lead byte, optional idle padding,
// the payload produced by fill, the latch padding, and finally the
// receive that retires the lead byte. fill is handed the paired
// send+drain primitive and must push every payload byte through it. The
// first transceiver error aborts the rest of the frame and is returned
// unchanged; nothing is retried.
func (s sequencer) transmit(fill func(put func(byte) error) error) error {
	if err := s.t.Send(0); err != nil {
		return err
	}
	if s.idlePad {
		for i := 0; i < padBytes; i++ {
			if err := s.exchange(0); err != nil {
				return err
			}
		}
	}
	if err := fill(s.exchange); err != nil {
		return err
	}
	for i := 0; i < padBytes; i++ {
		if err := s.exchange(0); err != nil {
			return err
		}
	}
	_, err := s.t.Receive()
	return err
}
