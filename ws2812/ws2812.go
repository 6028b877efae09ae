// Package ws2812 drives WS2812-family addressable LED strips through a
// general purpose SPI peripheral. The strips speak a single-wire 800kHz
// protocol the MCUs we target have no peripheral for, so the package
// abuses a synchronous serial transmitter instead: every channel byte is
// expanded into four SPI bytes whose bit transitions reproduce the
// protocol's high/low pulse widths when clocked out between 2 and
// 3.8MHz.
//
// Two store variants cover the usual RAM/latency trade-off. Prerendered
// keeps one raw byte per channel and renders the waveform while the
// frame is clocked out; Streamer renders colors into a scratch buffer as
// they arrive and transmits in the same call.
package ws2812

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// SPI clock limits for the two-bits-per-byte waveform scheme. Below
// MinFreq the short pulse overshoots the protocol's maximum high time;
// above MaxFreq a whole bit cell undershoots the minimum bit period.
const (
	MinFreq = 2 * physic.MegaHertz
	MaxFreq = 3800 * physic.KiloHertz
)

// DefaultFreq is used by NewSPIConn when the caller passes zero.
const DefaultFreq = 3 * physic.MegaHertz

// channels is the number of bytes per pixel in the stores' raw buffers.
const channels = 3

// Transceiver is a synchronous duplex byte channel, typically an SPI
// peripheral with a shallow transmit FIFO. Send blocks until the
// peripheral accepts the byte; Receive blocks until the byte clocked in
// by an earlier Send is available. Every Send must eventually be paired
// with exactly one Receive or the receive path overruns. A store takes
// exclusive ownership of its Transceiver for its whole life.
type Transceiver interface {
	Send(b byte) error
	Receive() (byte, error)
}

// Color is one pixel's channel triple.
type Color struct {
	R, G, B uint8
}

// Opts holds the construction parameters shared by both store variants.
type Opts struct {
	// NumPixels sizes the store. Must be at least 1.
	NumPixels int

	// Freq, when non-zero, is checked against MinFreq and MaxFreq. The
	// package never programs the peripheral's clock; pass the rate the
	// transceiver was configured with to have it validated here.
	Freq physic.Frequency

	// MOSIIdleHigh inserts extra idle padding ahead of the payload for
	// peripherals whose data line idles at the wrong level.
	MOSIIdleHigh bool
}

func (o *Opts) validate() error {
	if o == nil || o.NumPixels < 1 {
		return fmt.Errorf("ws2812: invalid pixel count")
	}
	if o.Freq != 0 && (o.Freq < MinFreq || o.Freq > MaxFreq) {
		return fmt.Errorf("ws2812: frequency %s outside %s-%s", o.Freq, MinFreq, MaxFreq)
	}
	return nil
}
