package dmx

// BufferValue is a single pending channel level. Channel numbers are
// 1-based, matching how operators address the universe.
type BufferValue struct {
	Chan  int
	Value byte
}

// Buffer holds direct channel overrides entered from the command line or
// fixture controls. It is applied after executor mixing, so its values
// always win. At most one entry exists per channel.
type Buffer struct {
	values []BufferValue
}

// Set inserts or replaces the entry for a channel. Out-of-range channels
// are ignored.
func (b *Buffer) Set(channel int, value byte) {
	if !ValidChannel(channel) {
		return
	}
	for i := range b.values {
		if b.values[i].Chan == channel {
			b.values[i].Value = value
			return
		}
	}
	b.values = append(b.values, BufferValue{Chan: channel, Value: value})
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.values = b.values[:0]
}

// Len returns the number of overridden channels.
func (b *Buffer) Len() int {
	return len(b.values)
}

// Values returns the overrides in insertion order. The returned slice is
// the buffer's backing store; callers must not mutate it.
func (b *Buffer) Values() []BufferValue {
	return b.values
}

// ApplyTo overwrites frame slots with every buffered value.
func (b *Buffer) ApplyTo(frame *Frame) {
	for _, v := range b.values {
		frame.Set(v.Chan, v.Value)
	}
}

// Levels renders the buffer into a full frame, unreferenced channels at
// zero. Used when storing the buffer as a cue snapshot.
func (b *Buffer) Levels() Frame {
	var f Frame
	b.ApplyTo(&f)
	return f
}
