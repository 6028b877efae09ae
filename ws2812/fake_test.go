package ws2812_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeTransceiver records the handshake a store drives. The hardware
// backends hide behind the same minimal interface, which keeps these
// tests free of real SPI plumbing.
type txOp struct {
	send bool
	b    byte
}

type fakeTransceiver struct {
	ops         []txOp
	inFlight    int
	maxInFlight int
	failAt      int // 1-based index into ops to fail on, 0 means never
	err         error
}

func (f *fakeTransceiver) Send(b byte) error {
	f.ops = append(f.ops, txOp{send: true, b: b})
	if f.failAt > 0 && len(f.ops) >= f.failAt {
		return f.err
	}
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	return nil
}

func (f *fakeTransceiver) Receive() (byte, error) {
	f.ops = append(f.ops, txOp{})
	if f.failAt > 0 && len(f.ops) >= f.failAt {
		return 0, f.err
	}
	f.inFlight--
	return 0, nil
}

// sent returns every transmitted byte in order.
func (f *fakeTransceiver) sent() []byte {
	var out []byte
	for _, o := range f.ops {
		if o.send {
			out = append(out, o.b)
		}
	}
	return out
}

// checkHandshake asserts the frame discipline: a lone lead send, strict
// send/receive alternation in between, a lone trailing receive, at most
// two bytes ever in flight and none left at the end.
func checkHandshake(t *testing.T, f *fakeTransceiver) {
	t.Helper()
	require.True(t, f.ops[0].send, "frame must open with the lead send")
	last := len(f.ops) - 1
	require.False(t, f.ops[last].send, "frame must close with a receive")
	for i := 1; i < last; i++ {
		require.Equal(t, i%2 == 1, f.ops[i].send, "op %d breaks alternation", i)
	}
	require.LessOrEqual(t, f.maxInFlight, 2, "transmit queue depth exceeded")
	require.Equal(t, 0, f.inFlight, "unretired bytes at end of frame")
}

// wavetab mirrors the four waveform bytes the encoder may emit.
var wavetab = [4]byte{0x88, 0x8E, 0xE8, 0xEE}

// rendered returns the four SPI bytes expected for one channel byte.
func rendered(v byte) []byte {
	out := make([]byte, 4)
	for i := range out {
		out[i] = wavetab[(v>>(6-2*i))&3]
	}
	return out
}
