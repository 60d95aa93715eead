package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// engineSampleRate is the fixed rate the speaker mixes at; decoded
// streams at other rates are resampled into it.
const engineSampleRate beep.SampleRate = 44100

var speakerInit struct {
	once sync.Once
	err  error
}

func initSpeaker() error {
	speakerInit.once.Do(func() {
		speakerInit.err = speaker.Init(engineSampleRate, engineSampleRate.N(time.Second/10))
	})
	return speakerInit.err
}

// decode opens and decodes an mp3 or wav file.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, format, err := mp3.Decode(file)
		if err != nil {
			file.Close()
			return nil, beep.Format{}, err
		}
		return stream, format, nil
	case ".wav":
		stream, format, err := wav.Decode(file)
		if err != nil {
			file.Close()
			return nil, beep.Format{}, err
		}
		return stream, format, nil
	default:
		file.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format %q", ext)
	}
}

// TrackDuration decodes just enough of the file to report its total
// length in seconds.
func TrackDuration(path string) (float64, error) {
	stream, format, err := decode(path)
	if err != nil {
		return 0, err
	}
	defer stream.Close()
	return format.SampleRate.D(stream.Len()).Seconds(), nil
}

// beepSink is the production sink: a decoded stream behind a beep.Ctrl
// (pause) and effects.Volume (gain), mixed by the speaker. Gain and pause
// mutations happen under speaker.Lock; the drained flag is set by a
// completion callback on the speaker goroutine, so it is atomic rather
// than lock-guarded.
type beepSink struct {
	stream  beep.StreamSeekCloser
	format  beep.Format
	ctrl    *beep.Ctrl
	volume  *effects.Volume
	drained atomic.Bool
	stopped atomic.Bool
}

// openBeepSink decodes the track, seeks to its start offset, clips it at
// the optional end offset, and hands the result to the speaker, silent.
func openBeepSink(t *Track) (Sink, error) {
	stream, format, err := decode(t.Path)
	if err != nil {
		return nil, err
	}

	if t.Start > 0 {
		n := format.SampleRate.N(time.Duration(t.Start * float64(time.Second)))
		if n < stream.Len() {
			if err := stream.Seek(n); err != nil {
				stream.Close()
				return nil, fmt.Errorf("seek to %.1fs: %w", t.Start, err)
			}
		}
	}

	var src beep.Streamer = stream
	if t.End > t.Start {
		remaining := format.SampleRate.N(time.Duration((t.End - t.Start) * float64(time.Second)))
		src = beep.Take(remaining, src)
	}
	if format.SampleRate != engineSampleRate {
		src = beep.Resample(4, format.SampleRate, engineSampleRate, src)
	}

	s := &beepSink{stream: stream, format: format}
	s.ctrl = &beep.Ctrl{
		Streamer: beep.Seq(src, beep.Callback(func() {
			s.drained.Store(true)
		})),
	}
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: 2, Silent: true}
	speaker.Play(s.volume)
	return s, nil
}

// SetGain applies a linear gain. Writes after Stop are no-ops, which is
// what lets orphaned fade ramps die quietly.
func (s *beepSink) SetGain(gain float64) {
	if s.stopped.Load() {
		return
	}
	speaker.Lock()
	if gain <= 0 {
		s.volume.Silent = true
	} else {
		s.volume.Silent = false
		s.volume.Volume = math.Log2(gain)
	}
	speaker.Unlock()
}

func (s *beepSink) SetPaused(paused bool) {
	if s.stopped.Load() {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = paused
	speaker.Unlock()
}

func (s *beepSink) Paused() bool {
	if s.stopped.Load() {
		return false
	}
	speaker.Lock()
	paused := s.ctrl.Paused
	speaker.Unlock()
	return paused
}

func (s *beepSink) Drained() bool {
	return s.drained.Load()
}

func (s *beepSink) Position() time.Duration {
	if s.stopped.Load() {
		return 0
	}
	speaker.Lock()
	pos := s.stream.Position()
	speaker.Unlock()
	return s.format.SampleRate.D(pos)
}

// Stop detaches the stream from the speaker and closes it. Idempotent.
func (s *beepSink) Stop() {
	if s.stopped.Swap(true) {
		return
	}
	speaker.Lock()
	s.ctrl.Streamer = nil
	s.volume.Silent = true
	speaker.Unlock()
	s.stream.Close()
}
