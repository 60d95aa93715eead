package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// rampInterval is how often a fade-in ramp re-samples its easing curve.
const rampInterval = 200 * time.Millisecond

// Sink is one live playback handle. The engine and at most one fade ramp
// share a sink; every implementation must make these methods safe to call
// concurrently, and must turn SetGain into a no-op once stopped.
type Sink interface {
	SetGain(gain float64)
	SetPaused(paused bool)
	Paused() bool
	Drained() bool
	Position() time.Duration
	Stop()
}

type activePlayback struct {
	trackID int
	sink    Sink
	volume  float64
	master  float64
	action  Action
}

// EndedTrack records a playback whose source ran dry, carrying the
// post-playback action the show layer acts on.
type EndedTrack struct {
	TrackID int
	Action  Action
}

// Position is one active track's elapsed time, for display only.
type Position struct {
	TrackID int
	Elapsed time.Duration
}

// Engine manages every active playback. All exported methods are safe for
// concurrent use; the active table is the only state shared between the
// tick thread and background fade ramps.
type Engine struct {
	mu     sync.Mutex
	active []*activePlayback
	ended  []EndedTrack

	// openSink is swappable so tests run without an audio device.
	openSink func(t *Track) (Sink, error)
}

// NewEngine brings up the audio device and returns a ready engine.
func NewEngine() (*Engine, error) {
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("audio device: %w", err)
	}
	return &Engine{openSink: openBeepSink}, nil
}

// NewEngineWithOpener builds an engine that opens playback through the
// given opener instead of the audio device. Lets tests run without
// hardware.
func NewEngineWithOpener(open func(t *Track) (Sink, error)) *Engine {
	return &Engine{openSink: open}
}

// Play starts the track, replacing any existing playback with the same
// id. With a fade-in configured the track starts silent and a detached
// ramp eases the gain up to volume x master; the caller never blocks on
// the ramp. Decode or device failures are reported here and nothing is
// added.
func (e *Engine) Play(track *Track, masterVolume float64) error {
	e.Stop(track.ID)

	s, err := e.openSink(track)
	if err != nil {
		return fmt.Errorf("play %s: %w", track, err)
	}

	target := track.Volume * masterVolume
	if track.FadeIn > 0 {
		s.SetGain(0)
		go fadeInRamp(s, target, time.Duration(track.FadeIn*float64(time.Second)))
	} else {
		s.SetGain(target)
	}

	e.mu.Lock()
	e.active = append(e.active, &activePlayback{
		trackID: track.ID,
		sink:    s,
		volume:  track.Volume,
		master:  masterVolume,
		action:  track.Action,
	})
	e.mu.Unlock()

	log.Debug("audio playing", "track", track.ID, "fade_in", track.FadeIn, "gain", target)
	return nil
}

// fadeInRamp eases the gain from silence to target with a sine ease-in/
// ease-out, one step every rampInterval. It holds only its sink and the
// precomputed target; once the sink is stopped its writes are no-ops, so
// no cancellation is needed.
func fadeInRamp(s Sink, target float64, d time.Duration) {
	if d <= 0 {
		s.SetGain(target)
		return
	}
	start := time.Now()
	for {
		time.Sleep(rampInterval)
		elapsed := time.Since(start)
		if elapsed >= d {
			break
		}
		p := float64(elapsed) / float64(d)
		s.SetGain(target * (0.5 - 0.5*math.Cos(math.Pi*p)))
	}
	s.SetGain(target)
}

// Stop halts and discards the playback with the given track id.
func (e *Engine) Stop(trackID int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.active[:0]
	for _, p := range e.active {
		if p.trackID == trackID {
			p.sink.Stop()
			continue
		}
		kept = append(kept, p)
	}
	e.active = kept
}

// StopAll halts every active playback.
func (e *Engine) StopAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.active {
		p.sink.Stop()
	}
	e.active = nil
}

// Update must run once per tick. Paused playbacks are left alone.
// Exhausted playbacks move to the ended queue with their post-action.
// Everything else has volume x master reapplied, so a live master-volume
// change takes effect next tick without restarting playback.
func (e *Engine) Update() {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.active[:0]
	for _, p := range e.active {
		if p.sink.Paused() {
			kept = append(kept, p)
			continue
		}
		if p.sink.Drained() {
			p.sink.Stop()
			e.ended = append(e.ended, EndedTrack{TrackID: p.trackID, Action: p.action})
			continue
		}
		p.sink.SetGain(p.volume * p.master)
		kept = append(kept, p)
	}
	e.active = kept
}

// SetMasterVolume applies a new master volume to every active playback
// immediately.
func (e *Engine) SetMasterVolume(volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.active {
		p.master = volume
		p.sink.SetGain(p.volume * volume)
	}
}

// EndedTracks drains the ended queue. Calling it again with nothing new
// returns nil.
func (e *Engine) EndedTracks() []EndedTrack {
	e.mu.Lock()
	defer e.mu.Unlock()
	ended := e.ended
	e.ended = nil
	return ended
}

// IsPlaying reports whether the track has a live, unpaused, undrained
// playback.
func (e *Engine) IsPlaying(trackID int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.active {
		if p.trackID == trackID && !p.sink.Drained() && !p.sink.Paused() {
			return true
		}
	}
	return false
}

// SetPaused pauses or resumes the track's playback if it is active.
func (e *Engine) SetPaused(trackID int, paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.active {
		if p.trackID == trackID {
			p.sink.SetPaused(paused)
		}
	}
}

// Positions reports each active playback's elapsed time. Display only;
// never used for control decisions.
func (e *Engine) Positions() []Position {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Position, 0, len(e.active))
	for _, p := range e.active {
		out = append(out, Position{TrackID: p.trackID, Elapsed: p.sink.Position()})
	}
	return out
}
