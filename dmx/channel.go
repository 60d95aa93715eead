package dmx

// ChannelType identifies the function a fixture channel controls. The set
// is closed; dispatch over it should be exhaustive.
type ChannelType int

const (
	ChIntensity ChannelType = iota
	ChRed
	ChGreen
	ChBlue
	ChWhite
	ChAmber
	ChUV
	ChColorWheel
	ChCTO
	ChCTB
	ChPan
	ChPanFine
	ChTilt
	ChTiltFine
	ChGoboWheel
	ChGoboRotation
	ChGoboWheel2
	ChGoboRotation2
	ChShutter
	ChStrobe
	ChZoom
	ChFocus
	ChPrism
	ChFrost
	ChControl
	ChSpeed
)

var channelTypeNames = map[ChannelType]string{
	ChIntensity:     "Intensity",
	ChRed:           "Red",
	ChGreen:         "Green",
	ChBlue:          "Blue",
	ChWhite:         "White",
	ChAmber:         "Amber",
	ChUV:            "UV",
	ChColorWheel:    "Color Wheel",
	ChCTO:           "CTO (Warm)",
	ChCTB:           "CTB (Cool)",
	ChPan:           "Pan",
	ChPanFine:       "Pan Fine",
	ChTilt:          "Tilt",
	ChTiltFine:      "Tilt Fine",
	ChGoboWheel:     "Gobo Wheel",
	ChGoboRotation:  "Gobo Rotation",
	ChGoboWheel2:    "Gobo Wheel 2",
	ChGoboRotation2: "Gobo Rotation 2",
	ChShutter:       "Shutter",
	ChStrobe:        "Strobe",
	ChZoom:          "Zoom",
	ChFocus:         "Focus",
	ChPrism:         "Prism",
	ChFrost:         "Frost",
	ChControl:       "Control",
	ChSpeed:         "Speed",
}

func (t ChannelType) String() string {
	if name, ok := channelTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// ChannelDef places one channel function within a fixture mode's
// footprint. Offset is 0-based from the fixture's start channel.
type ChannelDef struct {
	Type   ChannelType
	Offset int
	Name   string
}

// Def builds a ChannelDef with its display name derived from the type.
func Def(t ChannelType, offset int) ChannelDef {
	return ChannelDef{Type: t, Offset: offset, Name: t.String()}
}

// Mode is one channel layout for a fixture template (e.g. "4ch (Dimmer)").
type Mode struct {
	Name     string
	Channels []ChannelDef
}

// Footprint returns how many consecutive DMX channels the mode occupies.
func (m *Mode) Footprint() int {
	return len(m.Channels)
}
