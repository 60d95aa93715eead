package dmx

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{name: "With hash", in: "#FF8000", want: Color{R: 255, G: 128}},
		{name: "Without hash", in: "00ff00", want: Color{G: 255}},
		{name: "Too short", in: "#FFF", wantErr: true},
		{name: "Not hex", in: "zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorFromHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ColorFromHex(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ColorFromHex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ColorFromHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := RGB(255, 128, 0)
	if got := c.Hex(); got != "#FF8000" {
		t.Errorf("Hex() = %q, want %q", got, "#FF8000")
	}
}

func TestHasColor(t *testing.T) {
	if (Color{}).HasColor() {
		t.Error("zero color reports HasColor")
	}
	if !(Color{W: 1}).HasColor() {
		t.Error("white-only color reports no color")
	}
	if (Color{UV: 255}).HasColor() {
		t.Error("UV-only color should not count as visible color")
	}
}
