package dmx

import "testing"

// Template ids assigned by NewLibrary, in table order.
const (
	tplDimmer  = 1
	tplRGBPar  = 2
	tplRGBWPar = 3
)

func TestFixtureLevels(t *testing.T) {
	lib := NewLibrary()

	f := NewFixture(1, "par", 1, tplRGBPar, 0) // 4ch (Dimmer)
	f.Intensity = 255
	f.Color = Color{R: 10, G: 20, B: 30}

	levels := f.Levels(lib)
	want := []byte{255, 10, 20, 30}
	if len(levels) != len(want) {
		t.Fatalf("len(Levels) = %d, want %d", len(levels), len(want))
	}
	for i, v := range want {
		if levels[i] != v {
			t.Errorf("offset %d = %d, want %d", i, levels[i], v)
		}
	}
}

func TestFixtureLevelsUnknownTemplate(t *testing.T) {
	lib := NewLibrary()
	f := NewFixture(1, "ghost", 1, 999, 0)
	if levels := f.Levels(lib); levels != nil {
		t.Errorf("Levels = %v for unknown template, want nil", levels)
	}
}

func TestFixtureBufferValuesAbsoluteChannels(t *testing.T) {
	lib := NewLibrary()

	f := NewFixture(1, "par", 100, tplRGBPar, 1) // 3ch (RGB) starting at 100
	f.Color = Color{R: 1, G: 2, B: 3}

	values := f.BufferValues(lib)
	want := []BufferValue{
		{Chan: 100, Value: 1},
		{Chan: 101, Value: 2},
		{Chan: 102, Value: 3},
	}
	if len(values) != len(want) {
		t.Fatalf("len(BufferValues) = %d, want %d", len(values), len(want))
	}
	for i, w := range want {
		if values[i] != w {
			t.Errorf("entry %d = %+v, want %+v", i, values[i], w)
		}
	}
}

func TestIntensityChannel(t *testing.T) {
	lib := NewLibrary()

	tests := []struct {
		name     string
		template int
		mode     int
		start    int
		want     int
		wantErr  bool
	}{
		{name: "Dedicated dimmer channel", template: tplRGBPar, mode: 0, start: 10, want: 10},
		{name: "White fallback without dimmer", template: tplRGBWPar, mode: 1, start: 20, want: 23},
		{name: "No dimmer and no white", template: tplRGBPar, mode: 1, start: 30, wantErr: true},
		{name: "Unknown template", template: 999, mode: 0, start: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFixture(1, "f", tt.start, tt.template, tt.mode)
			got, err := f.IntensityChannel(lib)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("IntensityChannel() = %d, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("IntensityChannel() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IntensityChannel() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColorChannels(t *testing.T) {
	lib := NewLibrary()

	f := NewFixture(1, "par", 100, tplRGBWPar, 0) // 5ch (Dimmer)
	r, g, b, w, err := f.ColorChannels(lib)
	if err != nil {
		t.Fatalf("ColorChannels() error: %v", err)
	}
	if r != 101 || g != 102 || b != 103 || w != 104 {
		t.Errorf("ColorChannels() = (%d,%d,%d,%d), want (101,102,103,104)", r, g, b, w)
	}
}

func TestColorChannelsMissingWhite(t *testing.T) {
	lib := NewLibrary()

	f := NewFixture(1, "par", 50, tplRGBPar, 1) // 3ch (RGB), no white
	r, g, b, w, err := f.ColorChannels(lib)
	if err != nil {
		t.Fatalf("ColorChannels() error: %v", err)
	}
	if r != 50 || g != 51 || b != 52 {
		t.Errorf("RGB channels = (%d,%d,%d), want (50,51,52)", r, g, b)
	}
	if w != 0 {
		t.Errorf("white channel = %d, want 0 for a mode without white", w)
	}
}

func TestColorChannelsNoColorAtAll(t *testing.T) {
	lib := NewLibrary()
	f := NewFixture(1, "dimmer", 1, tplDimmer, 0)
	if _, _, _, _, err := f.ColorChannels(lib); err == nil {
		t.Error("ColorChannels() on a plain dimmer succeeded, want error")
	}
}

func TestAddUserTemplate(t *testing.T) {
	lib := NewLibrary()
	before := len(lib.Templates())

	id := lib.AddUserTemplate(Template{
		Name: "House Special", Manufacturer: "Custom",
		Modes: []Mode{{Name: "2ch", Channels: []ChannelDef{Def(ChIntensity, 0), Def(ChStrobe, 1)}}},
	})

	tpl := lib.Template(id)
	if tpl == nil {
		t.Fatalf("Template(%d) = nil after AddUserTemplate", id)
	}
	if !tpl.UserDefined {
		t.Error("user template not flagged UserDefined")
	}
	if len(lib.Templates()) != before+1 {
		t.Errorf("library size = %d, want %d", len(lib.Templates()), before+1)
	}
	if len(lib.UserTemplates()) != 1 {
		t.Errorf("UserTemplates() size = %d, want 1", len(lib.UserTemplates()))
	}
}
