// Package transport drives the DMX hardware link: 512-byte frame writes
// and a per-tick health poll. The mixer is its only caller and serializes
// all access.
package transport

import "github.com/showdesk/showdesk/dmx"

// Link is the hardware interface the mixer writes frames to.
type Link interface {
	// SetChannels transmits one full universe.
	SetChannels(frame dmx.Frame) error
	// Check polls link health; a nil return means the link is up.
	Check() error
	Close() error
}
