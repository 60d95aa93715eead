package dmx

import "testing"

func TestBufferInsertOrReplace(t *testing.T) {
	var b Buffer
	b.Set(10, 100)
	b.Set(20, 50)
	b.Set(10, 200) // replaces, never duplicates

	if b.Len() != 2 {
		t.Fatalf("Len() = %d after replacing a channel, want 2", b.Len())
	}

	values := b.Values()
	if values[0].Chan != 10 || values[0].Value != 200 {
		t.Errorf("first entry = %+v, want Chan 10 Value 200", values[0])
	}
	if values[1].Chan != 20 || values[1].Value != 50 {
		t.Errorf("second entry = %+v, want Chan 20 Value 50", values[1])
	}
}

func TestBufferIgnoresInvalidChannels(t *testing.T) {
	var b Buffer
	b.Set(0, 100)
	b.Set(513, 100)
	if b.Len() != 0 {
		t.Errorf("Len() = %d after out-of-range sets, want 0", b.Len())
	}
}

func TestBufferClear(t *testing.T) {
	var b Buffer
	b.Set(1, 255)
	b.Set(2, 255)
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", b.Len())
	}
}

func TestBufferApplyTo(t *testing.T) {
	var b Buffer
	b.Set(5, 40)
	b.Set(500, 255)

	var f Frame
	f.Set(5, 10) // overwritten by the buffer
	b.ApplyTo(&f)

	if got := f.Get(5); got != 40 {
		t.Errorf("channel 5 = %d, want 40", got)
	}
	if got := f.Get(500); got != 255 {
		t.Errorf("channel 500 = %d, want 255", got)
	}
}

func TestBufferLevelsSnapshot(t *testing.T) {
	var b Buffer
	b.Set(3, 77)

	levels := b.Levels()
	if levels.Get(3) != 77 {
		t.Errorf("channel 3 = %d, want 77", levels.Get(3))
	}
	for ch := 1; ch <= ChannelCount; ch++ {
		if ch != 3 && levels.Get(ch) != 0 {
			t.Fatalf("channel %d = %d, want 0", ch, levels.Get(ch))
		}
	}
}
