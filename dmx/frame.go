package dmx

// ChannelCount is the size of the single DMX universe this console drives.
const ChannelCount = 512

// Frame is one full universe of output levels. Index 0 is channel 1.
type Frame [ChannelCount]byte

// Set writes a level at a 1-based channel number. Out-of-range channels
// are ignored rather than panicking; a bad channel reference must never
// take down a running show.
func (f *Frame) Set(channel int, value byte) {
	if channel < 1 || channel > ChannelCount {
		return
	}
	f[channel-1] = value
}

// Get reads the level at a 1-based channel number, zero if out of range.
func (f *Frame) Get(channel int) byte {
	if channel < 1 || channel > ChannelCount {
		return 0
	}
	return f[channel-1]
}

// Scale multiplies every channel by m, truncating toward zero. Values
// never wrap or underflow.
func (f *Frame) Scale(m float64) {
	if m < 0 {
		m = 0
	}
	for i, v := range f {
		f[i] = ClampLevel(float64(v) * m)
	}
}

// ClampLevel converts a float level to a byte, clamped to [0,255] and
// truncated toward zero.
func ClampLevel(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// ValidChannel reports whether channel is addressable in this universe.
func ValidChannel(channel int) bool {
	return channel >= 1 && channel <= ChannelCount
}
