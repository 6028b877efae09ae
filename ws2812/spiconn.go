package ws2812

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPIConn adapts a periph.io SPI port to the Transceiver contract. The
// port is connected in mode 0 (idle-low clock, data sampled on the first
// transition) at 8 bits per word, the configuration the waveform scheme
// assumes. Each Send clocks one full-duplex byte and queues the byte
// read back; Receive pops that queue, so the stores' send/receive
// pairing holds without touching the kernel twice per byte.
type SPIConn struct {
	c       spi.Conn
	tx, rx  [1]byte
	pending []byte
}

// NewSPIConn connects p at f, which must lie within MinFreq..MaxFreq;
// zero selects DefaultFreq.
func NewSPIConn(p spi.Port, f physic.Frequency) (*SPIConn, error) {
	if f == 0 {
		f = DefaultFreq
	}
	if f < MinFreq || f > MaxFreq {
		return nil, fmt.Errorf("ws2812: frequency %s outside %s-%s", f, MinFreq, MaxFreq)
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ws2812: SPI connect: %w", err)
	}
	return &SPIConn{c: c}, nil
}

func (s *SPIConn) Send(b byte) error {
	s.tx[0] = b
	if err := s.c.Tx(s.tx[:], s.rx[:]); err != nil {
		return err
	}
	s.pending = append(s.pending, s.rx[0])
	return nil
}

// Receive pops the byte clocked in by the matching Send. Calling it with
// nothing in flight is a pairing bug in the caller, not a condition to
// wait out.
func (s *SPIConn) Receive() (byte, error) {
	if len(s.pending) == 0 {
		return 0, fmt.Errorf("ws2812: receive with no byte in flight")
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	return b, nil
}
