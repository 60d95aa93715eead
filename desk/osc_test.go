package desk

import (
	"testing"
	"time"

	"github.com/hypebeast/go-osc/osc"
)

// sendAndDrain sends one message to the listener and drains until the
// state reflects it or the deadline passes.
func sendAndDrain(t *testing.T, server *OSCServer, s *State, client *osc.Client, msg *osc.Message, applied func() bool) {
	t.Helper()
	if err := client.Send(msg); err != nil {
		t.Fatalf("sending %s: %v", msg.Address, err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		server.Drain(s)
		if applied() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("message %s never reached the state", msg.Address)
}

func TestOSCServerRoundTrip(t *testing.T) {
	const addr = "127.0.0.1:9137"

	server := NewOSCServer(addr)
	if err := server.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer server.Close()

	// Give the listener a moment to bind before sending.
	time.Sleep(100 * time.Millisecond)

	s := NewState(1)
	client := osc.NewClient("127.0.0.1", 9137)

	msg := osc.NewMessage("/MasterDMX")
	msg.Append(float32(0.5))
	sendAndDrain(t, server, s, client, msg, func() bool {
		return s.MasterDimmer == 0.5
	})

	msg = osc.NewMessage("/MasterVolume")
	msg.Append(int32(120))
	sendAndDrain(t, server, s, client, msg, func() bool {
		diff := s.MasterVolume - 1.2
		return diff < 1e-6 && diff > -1e-6
	})

	if len(s.OSCHistory) < 2 {
		t.Errorf("OSC history = %v, want both messages recorded", s.OSCHistory)
	}
}
