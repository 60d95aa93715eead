package desk

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/showdesk/showdesk/audio"
	"github.com/showdesk/showdesk/dmx"
)

// Config is the on-disk desk setup: where to listen, what to drive, and
// the patched show content.
type Config struct {
	SerialDevice  string `yaml:"serial_device,omitempty"`
	OSCListen     string `yaml:"osc_listen"`
	ExecutorCount int    `yaml:"executor_count"`

	MasterDimmer float64 `yaml:"master_dimmer"`
	MasterVolume float64 `yaml:"master_volume"`

	Naming OSCNaming `yaml:"osc_naming"`

	Patch    []PatchEntry  `yaml:"patch,omitempty"`
	Playlist []TrackConfig `yaml:"playlist,omitempty"`
}

// PatchEntry patches one fixture into the DMX universe.
type PatchEntry struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Channel  int    `yaml:"channel"`
	Template int    `yaml:"template"`
	Mode     int    `yaml:"mode,omitempty"`
}

// TrackConfig is one playlist entry. Times are plain seconds.
type TrackConfig struct {
	ID      int     `yaml:"id"`
	Name    string  `yaml:"name"`
	Path    string  `yaml:"path"`
	FadeIn  float64 `yaml:"fade_in,omitempty"`
	FadeOut float64 `yaml:"fade_out,omitempty"`
	Start   float64 `yaml:"start,omitempty"`
	End     float64 `yaml:"end,omitempty"`
	Volume  float64 `yaml:"volume,omitempty"`
	Action  string  `yaml:"action,omitempty"`
}

// DefaultConfig returns the desk as it powers up with no file: eight
// executors, both masters at full, stock OSC naming, no DMX device.
func DefaultConfig() Config {
	return Config{
		OSCListen:     "0.0.0.0:8000",
		ExecutorCount: DefaultExecutorCount,
		MasterDimmer:  1.0,
		MasterVolume:  1.0,
		Naming:        DefaultNaming(),
	}
}

// LoadConfig reads a YAML config file. A missing file is not an error;
// the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debugf("No config file at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.ExecutorCount < 1 {
		cfg.ExecutorCount = DefaultExecutorCount
	}
	return cfg, nil
}

// BuildState turns a config into a ready console state. Patch and
// playlist entries that do not resolve are skipped with a warning so one
// bad line cannot keep the desk from starting.
func (c Config) BuildState() *State {
	s := NewState(c.ExecutorCount)
	s.MasterDimmer = c.MasterDimmer
	s.MasterVolume = c.MasterVolume
	s.Naming = c.Naming

	for _, p := range c.Patch {
		if s.Templates.Template(p.Template) == nil {
			log.Warnf("Skipping fixture %d: no template with id %d", p.ID, p.Template)
			continue
		}
		if !dmx.ValidChannel(p.Channel) {
			log.Warnf("Skipping fixture %d: invalid start channel %d", p.ID, p.Channel)
			continue
		}
		f := dmx.NewFixture(p.ID, p.Name, p.Channel, p.Template, p.Mode)
		s.Fixtures = append(s.Fixtures, f)
	}

	for _, t := range c.Playlist {
		track := audio.NewTrack(t.ID, t.Name, t.Path)
		track.FadeIn = t.FadeIn
		track.FadeOut = t.FadeOut
		track.Start = t.Start
		track.End = t.End
		if t.Volume > 0 {
			track.Volume = t.Volume
		}
		switch t.Action {
		case "", "none":
			track.Action = audio.ActionNone
		case "follow":
			track.Action = audio.ActionFollow
		case "continue":
			track.Action = audio.ActionContinue
		default:
			log.Warnf("Track %d: unknown action %q, using none", t.ID, t.Action)
		}
		if d, err := audio.TrackDuration(track.Path); err == nil {
			track.Duration = d
		} else {
			log.Warnf("Track %d: cannot read duration: %v", t.ID, err)
		}
		s.Tracks = append(s.Tracks, track)
	}

	return s
}
