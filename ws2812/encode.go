package ws2812

// Each SPI byte carries two source bits, high time first, then low time.
// A 0 bit is the short 0b1000 cell, a 1 bit the long 0b1110 cell. The
// maximum for T0H is 500ns and the minimum bit period is 1063ns; those
// two bounds give the MinFreq/MaxFreq clock window.
var waveforms = [4]byte{0b1000_1000, 0b1000_1110, 0b1110_1000, 0b1110_1110}

// waveform expands one channel byte into its four SPI bytes, most
// significant bit pair first. Total over all 256 inputs.
func waveform(v byte) [4]byte {
	var w [4]byte
	for i := range w {
		w[i] = waveforms[v>>6]
		v <<= 2
	}
	return w
}
