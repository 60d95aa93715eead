package desk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/showdesk/showdesk/audio"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ExecutorCount != DefaultExecutorCount {
		t.Errorf("ExecutorCount = %d, want %d", cfg.ExecutorCount, DefaultExecutorCount)
	}
	if cfg.OSCListen != "0.0.0.0:8000" {
		t.Errorf("OSCListen = %q, want default", cfg.OSCListen)
	}
	if cfg.Naming.MasterVolume != "/MasterVolume" {
		t.Errorf("Naming.MasterVolume = %q, want stock address", cfg.Naming.MasterVolume)
	}
	if cfg.MasterDimmer != 1.0 || cfg.MasterVolume != 1.0 {
		t.Errorf("masters = %v/%v, want both at 1.0", cfg.MasterDimmer, cfg.MasterVolume)
	}
}

func TestLoadConfigParsesShowFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showdesk.yaml")
	content := `
serial_device: /dev/ttyUSB0
osc_listen: 127.0.0.1:9000
executor_count: 4
master_dimmer: 0.8
master_volume: 1.0
osc_naming:
  master_volume: /vol
  master_dimmer: /dim
  executor_prefix: /Exec
  executor_dimmer: /Fader
  executor_go: /Go
  executor_go_back: /Back
patch:
  - id: 1
    name: front par
    channel: 10
    template: 2
  - id: 2
    name: bad template
    channel: 20
    template: 999
playlist:
  - id: 1
    name: opener
    path: opener.mp3
    fade_in: 2.5
    volume: 0.9
    action: follow
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.SerialDevice != "/dev/ttyUSB0" {
		t.Errorf("SerialDevice = %q", cfg.SerialDevice)
	}
	if cfg.ExecutorCount != 4 {
		t.Errorf("ExecutorCount = %d, want 4", cfg.ExecutorCount)
	}
	if cfg.Naming.ExecutorDimmerAddress(2) != "/Exec2/Fader" {
		t.Errorf("executor address = %q, want /Exec2/Fader", cfg.Naming.ExecutorDimmerAddress(2))
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("{{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestBuildStateSkipsUnresolvablePatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExecutorCount = 2
	cfg.Patch = []PatchEntry{
		{ID: 1, Name: "good", Channel: 10, Template: 2},
		{ID: 2, Name: "bad template", Channel: 20, Template: 999},
		{ID: 3, Name: "bad channel", Channel: 900, Template: 2},
	}
	cfg.Playlist = []TrackConfig{
		{ID: 1, Name: "t", Path: "missing.mp3", Action: "continue", Volume: 0.5},
	}

	s := cfg.BuildState()
	if len(s.Executors) != 2 {
		t.Errorf("executors = %d, want 2", len(s.Executors))
	}
	if len(s.Fixtures) != 1 || s.Fixtures[0].ID != 1 {
		t.Errorf("fixtures = %+v, want only the resolvable one", s.Fixtures)
	}
	if len(s.Tracks) != 1 {
		t.Fatalf("tracks = %d, want 1", len(s.Tracks))
	}
	tr := s.Tracks[0]
	if tr.Action != audio.ActionContinue || tr.Volume != 0.5 {
		t.Errorf("track = %+v, want continue action at volume 0.5", tr)
	}
}

func TestBuildStateDefaultTrackVolume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Playlist = []TrackConfig{{ID: 1, Name: "t", Path: "t.wav"}}
	s := cfg.BuildState()
	if s.Tracks[0].Volume != 1.0 {
		t.Errorf("volume = %v for an unspecified track volume, want 1.0", s.Tracks[0].Volume)
	}
}
