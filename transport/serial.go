package transport

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"go.bug.st/serial"

	"github.com/showdesk/showdesk/dmx"
)

// DMX line parameters for an Open-DMX-style FTDI widget.
const (
	dmxBaudRate  = 250000
	dmxStartCode = 0
	breakTime    = 110 * time.Microsecond
)

// SerialLink sends DMX frames over a serial widget. Each frame is a line
// break followed by the start code and 512 channel bytes.
type SerialLink struct {
	device string
	port   serial.Port
}

// OpenSerial opens the named serial device as a DMX link.
func OpenSerial(device string) (*SerialLink, error) {
	mode := &serial.Mode{
		BaudRate: dmxBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.TwoStopBits,
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, fmt.Errorf("open dmx device %s: %w", device, err)
	}
	log.Info("DMX link opened", "device", device, "baud", dmxBaudRate)
	return &SerialLink{device: device, port: port}, nil
}

// ListPorts enumerates serial devices a DMX widget could be attached to.
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}

// SetChannels writes one full universe to the wire.
func (l *SerialLink) SetChannels(frame dmx.Frame) error {
	if err := l.port.Break(breakTime); err != nil {
		return fmt.Errorf("dmx break on %s: %w", l.device, err)
	}
	packet := make([]byte, 1+dmx.ChannelCount)
	packet[0] = dmxStartCode
	copy(packet[1:], frame[:])
	if _, err := l.port.Write(packet); err != nil {
		return fmt.Errorf("dmx write on %s: %w", l.device, err)
	}
	return nil
}

// Check polls the widget's modem status lines. An error here means the
// hardware has gone away; the mixer records it and retries next tick.
func (l *SerialLink) Check() error {
	if _, err := l.port.GetModemStatusBits(); err != nil {
		return fmt.Errorf("dmx link %s: %w", l.device, err)
	}
	return nil
}

// Close releases the serial port.
func (l *SerialLink) Close() error {
	log.Info("DMX link closing", "device", l.device)
	return l.port.Close()
}
