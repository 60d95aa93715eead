package desk

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// RouteOSC applies one received OSC message to the console state.
// Addresses are matched exactly against the configured naming; anything
// unmatched, wrongly typed, or out of range is dropped with a log line
// and state stays untouched. Must be called on the tick thread.
func RouteOSC(s *State, address string, args []any) {
	s.recordOSC(address, args)

	switch address {
	case s.Naming.MasterVolume:
		v, ok := scaledArg(args, 1.5, 150, 1500)
		if !ok {
			log.Warnf("Dropping OSC message %s %v: expected a volume argument", address, args)
			return
		}
		s.MasterVolume = v
		if s.Audio != nil {
			s.Audio.SetMasterVolume(v)
		}
		return

	case s.Naming.MasterDimmer:
		v, ok := scaledArg(args, 1.0, 100, 1000)
		if !ok {
			log.Warnf("Dropping OSC message %s %v: expected a dimmer argument", address, args)
			return
		}
		s.MasterDimmer = v
		return
	}

	for i, exec := range s.Executors {
		number := i + 1
		switch address {
		case s.Naming.ExecutorDimmerAddress(number):
			v, ok := unitFloatArg(args)
			if !ok {
				log.Warnf("Dropping OSC message %s %v: expected a fader argument", address, args)
				return
			}
			if len(exec.Cues) == 0 {
				// An empty executor has no cue to flash up; moving its
				// fader remotely would only arm a surprise for later.
				log.Debugf("Ignoring fader for empty executor %d", number)
				return
			}
			exec.FaderLevel = v
			return

		case s.Naming.ExecutorGoAddress(number):
			exec.Go()
			return

		case s.Naming.ExecutorGoBackAddress(number):
			exec.GoBack()
			return
		}
	}

	log.Warnf("Dropping OSC message with unknown address: %s", address)
}

// scaledArg coerces the first OSC argument to a unit-range float. Each
// wire type carries its own scale: float32 and float64 arrive already
// scaled or as percent, int32 as percent, int64 as permille. The maxima
// are in the unscaled wire domain; anything outside is rejected.
func scaledArg(args []any, maxFloat float32, maxInt int32, maxLong int64) (float64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	switch v := args[0].(type) {
	case float32:
		if v < 0 || v > maxFloat {
			return 0, false
		}
		return float64(v), true
	case float64:
		if v < 0 || v > float64(maxInt) {
			return 0, false
		}
		return v / 100, true
	case int32:
		if v < 0 || v > maxInt {
			return 0, false
		}
		return float64(v) / 100, true
	case int64:
		if v < 0 || v > maxLong {
			return 0, false
		}
		return float64(v) / 1000, true
	default:
		return 0, false
	}
}

// unitFloatArg coerces the first OSC argument to a float in [0,1].
// Executor faders take only the float form of the protocol.
func unitFloatArg(args []any) (float64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	v, ok := args[0].(float32)
	if !ok || v < 0 || v > 1 {
		return 0, false
	}
	return float64(v), true
}

// recordOSC appends a message to the bounded remote-control log.
func (s *State) recordOSC(address string, args []any) {
	entry := address
	if len(args) > 0 {
		entry = fmt.Sprintf("%s %v", address, args)
	}
	s.OSCHistory = append(s.OSCHistory, entry)
	if len(s.OSCHistory) > oscHistoryLimit {
		s.OSCHistory = s.OSCHistory[len(s.OSCHistory)-oscHistoryLimit:]
	}
}
