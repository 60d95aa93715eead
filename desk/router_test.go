package desk

import (
	"testing"

	"github.com/showdesk/showdesk/dmx"
)

func TestRouteOSCMasterVolume(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want float64
	}{
		{name: "Float passes through", args: []any{float32(1.2)}, want: 1.2},
		{name: "Int is percent", args: []any{int32(150)}, want: 1.5},
		{name: "Double is percent", args: []any{float64(75)}, want: 0.75},
		{name: "Long is permille", args: []any{int64(500)}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(1)
			RouteOSC(s, "/MasterVolume", tt.args)
			got := s.MasterVolume
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("MasterVolume = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRouteOSCMasterVolumeRejectsBadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{name: "No arguments", args: nil},
		{name: "Wrong type", args: []any{"loud"}},
		{name: "Float above range", args: []any{float32(1.6)}},
		{name: "Int above range", args: []any{int32(151)}},
		{name: "Negative", args: []any{float32(-0.1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(1)
			s.MasterVolume = 0.7
			RouteOSC(s, "/MasterVolume", tt.args)
			if s.MasterVolume != 0.7 {
				t.Errorf("MasterVolume = %v after bad args, want untouched 0.7", s.MasterVolume)
			}
		})
	}
}

func TestRouteOSCMasterDimmer(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want float64
	}{
		{name: "Float passes through", args: []any{float32(0.5)}, want: 0.5},
		{name: "Int is percent", args: []any{int32(100)}, want: 1.0},
		{name: "Double is percent", args: []any{float64(25)}, want: 0.25},
		{name: "Long is permille", args: []any{int64(1000)}, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(1)
			RouteOSC(s, "/MasterDMX", tt.args)
			got := s.MasterDimmer
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("MasterDimmer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRouteOSCExecutorDimmer(t *testing.T) {
	s := NewState(2)
	var levels dmx.Frame
	s.Executors[1].StoreCue(levels)

	RouteOSC(s, "/Executor2/Dimmer", []any{float32(0.8)})
	if got := s.Executors[1].FaderLevel; got != 0.8 {
		t.Errorf("executor 2 fader = %v, want 0.8", got)
	}
	if got := s.Executors[0].FaderLevel; got != 0 {
		t.Errorf("executor 1 fader = %v, want untouched 0", got)
	}
}

func TestRouteOSCExecutorDimmerFloatOnly(t *testing.T) {
	s := NewState(1)
	var levels dmx.Frame
	s.Executors[0].StoreCue(levels)

	for _, args := range [][]any{
		{int32(80)},
		{float64(0.8)},
		{float32(1.1)},
		nil,
	} {
		RouteOSC(s, "/Executor1/Dimmer", args)
	}
	if got := s.Executors[0].FaderLevel; got != 0 {
		t.Errorf("fader = %v after non-float args, want untouched 0", got)
	}
}

func TestRouteOSCExecutorDimmerIgnoredWhenEmpty(t *testing.T) {
	s := NewState(1)
	RouteOSC(s, "/Executor1/Dimmer", []any{float32(0.8)})
	if got := s.Executors[0].FaderLevel; got != 0 {
		t.Errorf("fader = %v on an empty executor, want ignored 0", got)
	}
}

func TestRouteOSCExecutorGoAndGoBack(t *testing.T) {
	s := NewState(1)
	var levels dmx.Frame
	exec := s.Executors[0]
	exec.StoreCue(levels)
	exec.StoreCue(levels)
	exec.StoreCue(levels)

	RouteOSC(s, "/Executor1/Go", nil)
	if exec.CurrentCueID != 2 {
		t.Fatalf("current cue = %d after Go, want 2", exec.CurrentCueID)
	}
	RouteOSC(s, "/Executor1/GoBack", nil)
	if exec.CurrentCueID != 1 {
		t.Errorf("current cue = %d after GoBack, want 1", exec.CurrentCueID)
	}
}

func TestRouteOSCUnknownAddressIsDropped(t *testing.T) {
	s := NewState(1)
	s.MasterDimmer = 0.9
	RouteOSC(s, "/SomeOtherDesk/Thing", []any{float32(1.0)})
	if s.MasterDimmer != 0.9 {
		t.Errorf("MasterDimmer = %v after unknown address, want untouched", s.MasterDimmer)
	}
}

func TestRouteOSCCustomNaming(t *testing.T) {
	s := NewState(1)
	s.Naming.MasterDimmer = "/grand"
	RouteOSC(s, "/grand", []any{float32(0.25)})
	if s.MasterDimmer != 0.25 {
		t.Errorf("MasterDimmer = %v via custom address, want 0.25", s.MasterDimmer)
	}
}

func TestOSCHistoryBounded(t *testing.T) {
	s := NewState(1)
	for i := 0; i < oscHistoryLimit+10; i++ {
		RouteOSC(s, "/MasterDMX", []any{float32(0.5)})
	}
	if len(s.OSCHistory) != oscHistoryLimit {
		t.Errorf("OSC history = %d entries, want capped at %d", len(s.OSCHistory), oscHistoryLimit)
	}
}
