package desk

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/showdesk/showdesk/dmx"
	"github.com/showdesk/showdesk/playback"
)

// ParseErrorKind classifies why a command line failed to parse.
type ParseErrorKind int

const (
	ErrUnknownCommand ParseErrorKind = iota
	ErrInvalidChannel
	ErrInvalidLevel
	ErrInvalidFixture
	ErrMissingArgs
)

// ParseError is a user-facing command failure. Parsing never panics; bad
// input becomes one of these and state stays untouched.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInvalidChannel:
		return fmt.Sprintf("Invalid channel: %s. Must be between 1 and %d", e.Input, dmx.ChannelCount)
	case ErrInvalidLevel:
		return fmt.Sprintf("Invalid level: %s. Must be between 0 and 255", e.Input)
	case ErrInvalidFixture:
		return fmt.Sprintf("Invalid fixture id: %s", e.Input)
	case ErrMissingArgs:
		return fmt.Sprintf("Missing arguments for command: %s", e.Input)
	default:
		return fmt.Sprintf("Unknown command: %s", e.Input)
	}
}

// Command is the closed set of console commands. Dispatch over the
// concrete types is exhaustive; there are no open-ended variants.
type Command interface {
	// String renders the command the way history displays it.
	String() string
}

type DimChannel struct {
	Chan  int
	Value byte
}

func (c DimChannel) String() string { return fmt.Sprintf("Chan %d at %d", c.Chan, c.Value) }

type DimFixture struct {
	FixtureID int
	Value     byte
}

func (c DimFixture) String() string { return fmt.Sprintf("Fix %d at %d", c.FixtureID, c.Value) }

type ColorFixture struct {
	FixtureID  int
	R, G, B, W byte
}

func (c ColorFixture) String() string {
	return fmt.Sprintf("Fix %d color r%d g%d b%d w%d", c.FixtureID, c.R, c.G, c.B, c.W)
}

type Blackout struct{}

func (Blackout) String() string { return "Blackout" }

type Clear struct{}

func (Clear) String() string { return "Clear" }

type MoveExecCue struct {
	ExecFrom int
	CueFrom  int
	ExecTo   int
	CueTo    int
}

func (c MoveExecCue) String() string {
	return fmt.Sprintf("Move Exec %d Cue %d To Exec %d Cue %d", c.ExecFrom, c.CueFrom, c.ExecTo, c.CueTo)
}

type NudgeExecCue struct {
	Exec int
	Cue  int
	Dir  playback.Direction
}

func (c NudgeExecCue) String() string {
	return fmt.Sprintf("Move Exec %d Cue %d %s", c.Exec, c.Cue, c.Dir)
}

// ParseCommand turns one line of console input into a Command. Input is
// case-insensitive and whitespace-trimmed.
func ParseCommand(input string) (Command, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	switch s {
	case "":
		return nil, &ParseError{Kind: ErrMissingArgs, Input: input}
	case "blackout", "b/o", "bo":
		return Blackout{}, nil
	case "clear", "clr":
		return Clear{}, nil
	}

	fields := strings.Fields(s)
	switch fields[0] {
	case "chan":
		// chan {n} at {v}
		if len(fields) < 4 || fields[2] != "at" {
			return nil, &ParseError{Kind: ErrMissingArgs, Input: input}
		}
		ch, err := strconv.Atoi(fields[1])
		if err != nil || !dmx.ValidChannel(ch) {
			return nil, &ParseError{Kind: ErrInvalidChannel, Input: fields[1]}
		}
		value, perr := parseLevel(fields[3])
		if perr != nil {
			return nil, perr
		}
		return DimChannel{Chan: ch, Value: value}, nil

	case "fix":
		if len(fields) < 3 {
			return nil, &ParseError{Kind: ErrMissingArgs, Input: input}
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil || id < 1 {
			return nil, &ParseError{Kind: ErrInvalidFixture, Input: fields[1]}
		}
		switch fields[2] {
		case "at":
			// fix {n} at {v}
			if len(fields) < 4 {
				return nil, &ParseError{Kind: ErrMissingArgs, Input: input}
			}
			value, perr := parseLevel(fields[3])
			if perr != nil {
				return nil, perr
			}
			return DimFixture{FixtureID: id, Value: value}, nil
		case "color":
			// fix {n} color r{v} g{v} b{v} w{v}
			if len(fields) < 7 {
				return nil, &ParseError{Kind: ErrMissingArgs, Input: input}
			}
			components := make(map[byte]byte, 4)
			for _, field := range fields[3:7] {
				if len(field) < 2 {
					return nil, &ParseError{Kind: ErrMissingArgs, Input: input}
				}
				key := field[0]
				if key != 'r' && key != 'g' && key != 'b' && key != 'w' {
					return nil, &ParseError{Kind: ErrUnknownCommand, Input: input}
				}
				value, perr := parseLevel(field[1:])
				if perr != nil {
					return nil, perr
				}
				components[key] = value
			}
			return ColorFixture{
				FixtureID: id,
				R:         components['r'],
				G:         components['g'],
				B:         components['b'],
				W:         components['w'],
			}, nil
		default:
			return nil, &ParseError{Kind: ErrUnknownCommand, Input: input}
		}

	case "move":
		// move exec {n} cue {n} to exec {n} cue {n}
		// move exec {n} cue {n} up|down
		if len(fields) < 6 || fields[1] != "exec" || fields[3] != "cue" {
			return nil, &ParseError{Kind: ErrUnknownCommand, Input: input}
		}
		execFrom, err1 := strconv.Atoi(fields[2])
		cueFrom, err2 := strconv.Atoi(fields[4])
		if err1 != nil || err2 != nil {
			return nil, &ParseError{Kind: ErrUnknownCommand, Input: input}
		}
		switch fields[5] {
		case "up":
			return NudgeExecCue{Exec: execFrom, Cue: cueFrom, Dir: playback.Up}, nil
		case "down":
			return NudgeExecCue{Exec: execFrom, Cue: cueFrom, Dir: playback.Down}, nil
		case "to":
			if len(fields) < 10 || fields[6] != "exec" || fields[8] != "cue" {
				return nil, &ParseError{Kind: ErrMissingArgs, Input: input}
			}
			execTo, err3 := strconv.Atoi(fields[7])
			cueTo, err4 := strconv.Atoi(fields[9])
			if err3 != nil || err4 != nil {
				return nil, &ParseError{Kind: ErrUnknownCommand, Input: input}
			}
			return MoveExecCue{ExecFrom: execFrom, CueFrom: cueFrom, ExecTo: execTo, CueTo: cueTo}, nil
		default:
			return nil, &ParseError{Kind: ErrUnknownCommand, Input: input}
		}
	}

	return nil, &ParseError{Kind: ErrUnknownCommand, Input: input}
}

func parseLevel(s string) (byte, *ParseError) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, &ParseError{Kind: ErrInvalidLevel, Input: s}
	}
	return byte(v), nil
}

// ExecuteCommand parses and applies one console line against the state.
// Parse and addressing failures set s.CommandError and mutate nothing
// else; successful commands are appended to the history and applied.
func ExecuteCommand(s *State, input string) {
	s.CommandError = ""

	cmd, err := ParseCommand(input)
	if err != nil {
		s.CommandError = err.Error()
		return
	}
	if err := applyCommand(s, cmd); err != nil {
		s.CommandError = err.Error()
		return
	}
	s.History = append(s.History, cmd)
}

func applyCommand(s *State, cmd Command) error {
	switch c := cmd.(type) {
	case Blackout:
		s.ToggleBlackout()

	case Clear:
		s.Buffer.Clear()

	case DimChannel:
		s.Buffer.Set(c.Chan, c.Value)

	case DimFixture:
		fixture := s.Fixture(c.FixtureID)
		if fixture == nil {
			return fmt.Errorf("Fixture %d not found", c.FixtureID)
		}
		channel, err := fixture.IntensityChannel(s.Templates)
		if err != nil {
			return err
		}
		s.Buffer.Set(channel, c.Value)

	case ColorFixture:
		fixture := s.Fixture(c.FixtureID)
		if fixture == nil {
			return fmt.Errorf("Fixture %d not found", c.FixtureID)
		}
		r, g, b, w, err := fixture.ColorChannels(s.Templates)
		if err != nil {
			return err
		}
		if r > 0 {
			s.Buffer.Set(r, c.R)
		}
		if g > 0 {
			s.Buffer.Set(g, c.G)
		}
		if b > 0 {
			s.Buffer.Set(b, c.B)
		}
		if w > 0 {
			s.Buffer.Set(w, c.W)
		}
		fixture.Color = dmx.Color{R: c.R, G: c.G, B: c.B, W: c.W}

	case MoveExecCue:
		from := s.Executor(c.ExecFrom)
		to := s.Executor(c.ExecTo)
		if from == nil {
			return fmt.Errorf("Executor %d not found", c.ExecFrom)
		}
		if to == nil {
			return fmt.Errorf("Executor %d not found", c.ExecTo)
		}
		return playback.MoveCue(from, to, c.CueFrom, c.CueTo)

	case NudgeExecCue:
		exec := s.Executor(c.Exec)
		if exec == nil {
			return fmt.Errorf("Executor %d not found", c.Exec)
		}
		return playback.NudgeCue(exec, c.Cue, c.Dir)
	}
	return nil
}
