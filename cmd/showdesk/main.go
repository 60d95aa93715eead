// Command showdesk runs the console headless: it loads the show config,
// opens the DMX link, starts the OSC listener, and drives the 40Hz tick
// loop. Console commands are read from stdin, one per line; `go` and
// `back` drive the audio playlist.
package main

import (
	"bufio"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"github.com/showdesk/showdesk/audio"
	"github.com/showdesk/showdesk/desk"
	"github.com/showdesk/showdesk/transport"
)

// tickInterval is the refresh rate of the mixing loop. 25ms keeps well
// inside the ~44Hz ceiling of a full DMX universe on the wire.
const tickInterval = 25 * time.Millisecond

func main() {
	configPath := flag.String("config", "showdesk.yaml", "path to the desk config file")
	noDMX := flag.Bool("no-dmx", false, "run without a DMX output device")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := desk.LoadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	state := cfg.BuildState()
	engine, err := audio.NewEngine()
	if err != nil {
		log.Fatal("Failed to initialize audio", "error", err)
	}
	state.Audio = engine

	var link transport.Link
	if !*noDMX {
		link = openLink(cfg.SerialDevice)
	}
	if link != nil {
		defer link.Close()
	}

	server := desk.NewOSCServer(cfg.OSCListen)
	if err := server.Start(); err != nil {
		log.Fatal("Failed to start OSC listener", "error", err)
	}
	defer server.Close()

	lines := make(chan string)
	go readCommands(lines)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	log.Info("Desk running",
		"executors", len(state.Executors),
		"fixtures", len(state.Fixtures),
		"tracks", len(state.Tracks),
		"osc", cfg.OSCListen)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			log.Info("Shutting down")
			state.Audio.StopAll()
			return

		case line := <-lines:
			handleLine(state, line)

		case <-ticker.C:
			server.Drain(state)
			state.Audio.Update()
			desk.AdvanceEnded(state)
			desk.Mix(state, link)
		}
	}
}

// handleLine dispatches one stdin line. The playlist shortcuts live here
// rather than in the command interpreter; everything else goes through
// the console grammar.
func handleLine(state *desk.State, line string) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return
	case "go":
		desk.AudioGo(state)
		return
	case "back":
		desk.AudioBack(state)
		return
	}
	desk.ExecuteCommand(state, line)
	if state.CommandError != "" {
		log.Error(state.CommandError)
	}
}

func readCommands(lines chan<- string) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

// openLink opens the configured serial device, or prompts for one when
// the config names none. Returns nil when the operator opts out or the
// open fails; the desk still runs, just dark.
func openLink(device string) transport.Link {
	if device == "" {
		device = pickPort()
	}
	if device == "" {
		log.Warn("No DMX device selected, running without output")
		return nil
	}

	link, err := transport.OpenSerial(device)
	if err != nil {
		log.Error("Failed to open DMX device", "device", device, "error", err)
		return nil
	}
	log.Info("DMX output connected", "device", device)
	return link
}

func pickPort() string {
	ports, err := transport.ListPorts()
	if err != nil {
		log.Error("Failed to list serial ports", "error", err)
		return ""
	}
	if len(ports) == 0 {
		return ""
	}

	options := []huh.Option[string]{huh.NewOption("None (run without DMX)", "")}
	for _, port := range ports {
		options = append(options, huh.NewOption(port, port))
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select the DMX output device").
				Options(options...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		log.Error("Port selection cancelled", "error", err)
		return ""
	}
	return choice
}
