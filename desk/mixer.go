package desk

import (
	"github.com/charmbracelet/log"

	"github.com/showdesk/showdesk/dmx"
	"github.com/showdesk/showdesk/transport"
)

// Mix runs the output pipeline once. It must run after all command and
// remote-control mutation for the tick, and before anything reads the
// transport status.
//
// Policy: executors write last-write-wins in ascending id order, each
// value clamped; the override buffer then overwrites unconditionally; the
// master dimmer scales the whole frame last, overridden channels
// included. The frame is only transmitted when it differs from the last
// one sent; link health is polled every tick regardless.
func Mix(s *State, link transport.Link) {
	var frame dmx.Frame

	for _, exec := range s.Executors {
		exec.UpdateFade()
		if exec.OutputLevel <= 0 || len(exec.Cues) == 0 {
			continue
		}
		levels := exec.OutputLevels()
		for i, level := range levels {
			if level == 0 {
				continue
			}
			frame[i] = dmx.ClampLevel(float64(level) * exec.OutputLevel)
		}
	}

	s.Buffer.ApplyTo(&frame)

	if s.MasterDimmer < 1.0 {
		frame.Scale(s.MasterDimmer)
	}

	if link == nil {
		s.lastFrame = frame
		s.sentOnce = true
		return
	}

	if !s.sentOnce || frame != s.lastFrame {
		if err := link.SetChannels(frame); err != nil {
			s.setDMXStatus(false, err.Error())
			return
		}
		s.lastFrame = frame
		s.sentOnce = true
	}

	if err := link.Check(); err != nil {
		s.setDMXStatus(false, err.Error())
		return
	}
	s.setDMXStatus(true, "")
}

// setDMXStatus records link health, logging only on state changes so a
// dead link does not flood the log at tick rate.
func (s *State) setDMXStatus(connected bool, message string) {
	if connected != s.DMXConnected {
		if connected {
			log.Info("DMX link up")
		} else {
			log.Warn("DMX link down", "error", message)
		}
	}
	s.DMXConnected = connected
	s.DMXError = message
}

// LastFrame returns the most recently mixed frame, for display.
func (s *State) LastFrame() dmx.Frame {
	return s.lastFrame
}
