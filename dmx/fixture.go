package dmx

import "fmt"

// Fixture is one patched physical device. Its runtime values (color,
// position, intensity) are translated into raw channel levels through the
// template mode it references.
type Fixture struct {
	ID           int
	Name         string
	StartChannel int // 1-based first DMX channel
	TemplateID   int
	ModeIndex    int

	Intensity byte
	Color     Color
	Pan       uint16
	Tilt      uint16
	Shutter   byte
	Gobo      byte
	Zoom      byte
	Focus     byte

	// Custom holds raw values for channel offsets whose function has no
	// dedicated field (prism, frost, control, ...).
	Custom map[int]byte
}

// NewFixture builds a fixture with movement and beam centered and
// everything else dark.
func NewFixture(id int, name string, startChannel, templateID, modeIndex int) *Fixture {
	return &Fixture{
		ID:           id,
		Name:         name,
		StartChannel: startChannel,
		TemplateID:   templateID,
		ModeIndex:    modeIndex,
		Pan:          128,
		Tilt:         128,
		Zoom:         128,
		Focus:        128,
		Custom:       make(map[int]byte),
	}
}

func (f *Fixture) mode(lib *Library) *Mode {
	t := lib.Template(f.TemplateID)
	if t == nil {
		return nil
	}
	return t.Mode(f.ModeIndex)
}

// channelValue resolves one channel definition against the fixture's
// runtime state.
func (f *Fixture) channelValue(def ChannelDef) byte {
	switch def.Type {
	case ChIntensity:
		return f.Intensity
	case ChRed:
		return f.Color.R
	case ChGreen:
		return f.Color.G
	case ChBlue:
		return f.Color.B
	case ChWhite:
		return f.Color.W
	case ChAmber:
		return f.Color.Amber
	case ChUV:
		return f.Color.UV
	case ChPan:
		return byte(f.Pan >> 8)
	case ChPanFine:
		return byte(f.Pan & 0xFF)
	case ChTilt:
		return byte(f.Tilt >> 8)
	case ChTiltFine:
		return byte(f.Tilt & 0xFF)
	case ChShutter, ChStrobe:
		return f.Shutter
	case ChGoboWheel:
		return f.Gobo
	case ChZoom:
		return f.Zoom
	case ChFocus:
		return f.Focus
	default:
		return f.Custom[def.Offset]
	}
}

// Levels renders the fixture's mode into raw values indexed by offset.
// Unknown template or mode yields nil.
func (f *Fixture) Levels(lib *Library) []byte {
	mode := f.mode(lib)
	if mode == nil {
		return nil
	}
	values := make([]byte, mode.Footprint())
	for _, def := range mode.Channels {
		if def.Offset >= 0 && def.Offset < len(values) {
			values[def.Offset] = f.channelValue(def)
		}
	}
	return values
}

// BufferValues expands the fixture into absolute-channel buffer entries,
// one per channel definition in its mode.
func (f *Fixture) BufferValues(lib *Library) []BufferValue {
	mode := f.mode(lib)
	if mode == nil {
		return nil
	}
	values := make([]BufferValue, 0, len(mode.Channels))
	for _, def := range mode.Channels {
		values = append(values, BufferValue{
			Chan:  f.StartChannel + def.Offset,
			Value: f.channelValue(def),
		})
	}
	return values
}

// IntensityChannel resolves the absolute channel that dims this fixture:
// the mode's intensity channel, or its white channel when the mode has no
// dedicated dimmer (common on RGB-only PARs).
func (f *Fixture) IntensityChannel(lib *Library) (int, error) {
	mode := f.mode(lib)
	if mode == nil {
		return 0, fmt.Errorf("fixture %d: template %d mode %d not found", f.ID, f.TemplateID, f.ModeIndex)
	}
	white := -1
	for _, def := range mode.Channels {
		switch def.Type {
		case ChIntensity:
			return f.StartChannel + def.Offset, nil
		case ChWhite:
			if white < 0 {
				white = f.StartChannel + def.Offset
			}
		}
	}
	if white >= 0 {
		return white, nil
	}
	return 0, fmt.Errorf("fixture %d: mode %q has no intensity or white channel", f.ID, mode.Name)
}

// ColorChannels resolves the absolute channels for the fixture's R/G/B/W
// components. Components the mode lacks are reported as 0 and skipped by
// callers.
func (f *Fixture) ColorChannels(lib *Library) (r, g, b, w int, err error) {
	mode := f.mode(lib)
	if mode == nil {
		return 0, 0, 0, 0, fmt.Errorf("fixture %d: template %d mode %d not found", f.ID, f.TemplateID, f.ModeIndex)
	}
	for _, def := range mode.Channels {
		abs := f.StartChannel + def.Offset
		switch def.Type {
		case ChRed:
			if r == 0 {
				r = abs
			}
		case ChGreen:
			if g == 0 {
				g = abs
			}
		case ChBlue:
			if b == 0 {
				b = abs
			}
		case ChWhite:
			if w == 0 {
				w = abs
			}
		}
	}
	if r == 0 && g == 0 && b == 0 && w == 0 {
		return 0, 0, 0, 0, fmt.Errorf("fixture %d: mode %q has no color channels", f.ID, mode.Name)
	}
	return r, g, b, w, nil
}

// Group treats several fixtures as one unit for patching and control.
type Group struct {
	ID         int
	Name       string
	FixtureIDs []int
}
