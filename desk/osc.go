package desk

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hypebeast/go-osc/osc"
)

// oscQueueDepth bounds how many remote messages can pile up between
// ticks. At 40Hz a full queue means a flooding sender, not a slow desk.
const oscQueueDepth = 256

// OSCMessage is one received remote-control message, queued for the tick
// thread.
type OSCMessage struct {
	Address   string
	Arguments []any
}

// OSCServer listens for remote-control messages and hands them to the
// tick thread through a channel. The server goroutine never touches
// console state.
type OSCServer struct {
	addr     string
	server   *osc.Server
	messages chan OSCMessage
}

// NewOSCServer prepares a listener on the given UDP address, e.g.
// "0.0.0.0:8000".
func NewOSCServer(addr string) *OSCServer {
	return &OSCServer{
		addr:     addr,
		messages: make(chan OSCMessage, oscQueueDepth),
	}
}

// Start begins listening in a background goroutine. Received messages
// are queued; when the queue is full further messages are dropped with a
// warning rather than blocking the network reader.
func (o *OSCServer) Start() error {
	d := osc.NewStandardDispatcher()
	err := d.AddMsgHandler("*", func(msg *osc.Message) {
		log.Debugf("Received OSC message: %s %v", msg.Address, msg.Arguments)
		select {
		case o.messages <- OSCMessage{Address: msg.Address, Arguments: msg.Arguments}:
		default:
			log.Warnf("OSC queue full, dropping message: %s", msg.Address)
		}
	})
	if err != nil {
		return err
	}

	o.server = &osc.Server{
		Addr:       o.addr,
		Dispatcher: d,
	}

	log.Infof("Starting OSC listener on %s", o.addr)
	go func() {
		err := o.server.ListenAndServe()
		if err != nil && !strings.Contains(err.Error(), "use of closed network connection") {
			log.Errorf("OSC listener exited with error: %v", err)
		}
	}()
	return nil
}

// Drain applies every queued message to the state. Called once per tick.
func (o *OSCServer) Drain(s *State) {
	for {
		select {
		case msg := <-o.messages:
			RouteOSC(s, msg.Address, msg.Arguments)
		default:
			return
		}
	}
}

// Close shuts the listener down.
func (o *OSCServer) Close() error {
	if o.server == nil {
		return nil
	}
	return o.server.CloseConnection()
}
