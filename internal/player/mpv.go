package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"
)

// MPV drives an mpv process over its JSON IPC socket and implements
// Resource. mpv runs in idle mode so switching tracks is instant.
type MPV struct {
	mu            sync.Mutex
	cmd           *exec.Cmd
	socketPath    string
	source        string
	loaded        bool
	durationKnown bool
	events        chan Event
	watchStop     chan struct{}
	eventConn     net.Conn
	eventStop     chan struct{}
}

type mpvCommand struct {
	Command   []interface{} `json:"command"`
	RequestID int           `json:"request_id,omitempty"`
}

type mpvResponse struct {
	Data      interface{} `json:"data"`
	RequestID int         `json:"request_id"`
	Error     string      `json:"error"`
}

type mpvEvent struct {
	Event string `json:"event"`
}

func NewMPV() *MPV {
	m := &MPV{
		socketPath: fmt.Sprintf("/tmp/casttivi-mpv-%d", os.Getpid()),
		events:     make(chan Event, 8),
	}

	// Clean up any stale socket from a previous run
	os.Remove(m.socketPath)

	return m
}

// StartIdle launches mpv in idle mode so the first Load is instant.
func (m *MPV) StartIdle() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ensureRunning()
}

func (m *MPV) ensureRunning() error {
	if m.cmd != nil {
		return nil
	}

	os.Remove(m.socketPath)

	m.cmd = exec.Command("mpv",
		"--no-video",
		"--really-quiet",
		"--no-terminal",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--idle",
		"--force-window=no",
		"--keep-open=no",
	)

	if err := m.cmd.Start(); err != nil {
		m.cmd = nil
		return fmt.Errorf("failed to start mpv: %w", err)
	}

	// Wait for mpv to create the socket
	socketReady := false
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(m.socketPath); err == nil {
			socketReady = true
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	if !socketReady {
		m.cmd.Process.Kill()
		m.cmd.Wait()
		m.cmd = nil
		return fmt.Errorf("mpv socket not created after timeout")
	}

	if err := m.startEventListener(); err != nil {
		log.Printf("Warning: failed to start mpv event listener: %v", err)
	}

	return nil
}

// Load points mpv at a new source, paused at position zero. Any watcher
// for a previous source is torn down first so its tick cannot land after
// the switch.
func (m *MPV) Load(source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureRunning(); err != nil {
		return err
	}

	m.stopWatcher()
	m.source = source
	m.loaded = false
	m.durationKnown = false

	if _, err := m.sendCommand(mpvCommand{Command: []interface{}{"loadfile", source}}); err != nil {
		return fmt.Errorf("failed to load %q: %w", source, err)
	}
	if _, err := m.sendCommand(mpvCommand{Command: []interface{}{"set_property", "pause", true}}); err != nil {
		return fmt.Errorf("failed to pause after load: %w", err)
	}

	m.loaded = true
	m.watchStop = make(chan struct{})
	go m.watchProgress(m.watchStop)

	return nil
}

func (m *MPV) Play() error {
	return m.setPause(false)
}

func (m *MPV) Pause() error {
	return m.setPause(true)
}

func (m *MPV) setPause(paused bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		return nil
	}
	if _, err := m.sendCommand(mpvCommand{Command: []interface{}{"set_property", "pause", paused}}); err != nil {
		return fmt.Errorf("failed to set pause=%v: %w", paused, err)
	}
	return nil
}

func (m *MPV) SeekTo(position time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		return nil
	}
	seconds := position.Seconds()
	if _, err := m.sendCommand(mpvCommand{Command: []interface{}{"seek", seconds, "absolute"}}); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	return nil
}

func (m *MPV) SetVolume(percent int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	if m.cmd == nil {
		return nil
	}
	if _, err := m.sendCommand(mpvCommand{Command: []interface{}{"set_property", "volume", percent}}); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}
	return nil
}

// Stop unloads the current source but keeps mpv idling for the next Load.
func (m *MPV) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		return nil
	}

	m.stopWatcher()
	m.loaded = false
	m.source = ""

	if _, err := m.sendCommand(mpvCommand{Command: []interface{}{"stop"}}); err != nil {
		return fmt.Errorf("failed to stop playback: %w", err)
	}
	return nil
}

func (m *MPV) Events() <-chan Event {
	return m.events
}

// Shutdown terminates the mpv process. Called once on application exit.
func (m *MPV) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopWatcher()
	if m.eventStop != nil {
		close(m.eventStop)
		m.eventStop = nil
	}
	if m.eventConn != nil {
		m.eventConn.Close()
		m.eventConn = nil
	}

	if m.cmd != nil && m.cmd.Process != nil {
		m.sendCommand(mpvCommand{Command: []interface{}{"quit"}})

		done := make(chan error, 1)
		go func() {
			done <- m.cmd.Wait()
		}()

		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			log.Printf("Force killing mpv process (pid: %d)", m.cmd.Process.Pid)
			m.cmd.Process.Kill()
			<-done
		}
	}
	m.cmd = nil
	m.loaded = false

	os.Remove(m.socketPath)
}

func (m *MPV) stopWatcher() {
	if m.watchStop != nil {
		close(m.watchStop)
		m.watchStop = nil
	}
}

// sendCommand issues one command over a fresh IPC connection. Callers hold
// the mutex.
func (m *MPV) sendCommand(cmd mpvCommand) (*mpvResponse, error) {
	conn, err := net.Dial("unix", m.socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mpv socket: %w", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(2 * time.Second))

	data, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command: %w", err)
	}
	data = append(data, '\n')

	if _, err := conn.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write command: %w", err)
	}

	reader := bufio.NewReader(conn)
	responseData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var response mpvResponse
	if err := json.Unmarshal(responseData, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if response.Error != "" && response.Error != "success" {
		return &response, fmt.Errorf("mpv error: %s", response.Error)
	}

	return &response, nil
}

// watchProgress polls mpv once a second and turns the answers into
// EventProgress/EventDuration events until the source changes.
func (m *MPV) watchProgress(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var position, duration time.Duration

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			if !m.loaded {
				m.mu.Unlock()
				return
			}

			if resp, err := m.sendCommand(mpvCommand{Command: []interface{}{"get_property", "time-pos"}}); err == nil {
				if pos, ok := resp.Data.(float64); ok && pos >= 0 {
					position = time.Duration(pos * float64(time.Second))
				}
			}

			newDuration := false
			if resp, err := m.sendCommand(mpvCommand{Command: []interface{}{"get_property", "duration"}}); err == nil {
				if dur, ok := resp.Data.(float64); ok && dur > 0 {
					duration = time.Duration(dur * float64(time.Second))
					if !m.durationKnown {
						m.durationKnown = true
						newDuration = true
					}
				}
			}
			m.mu.Unlock()

			if newDuration {
				m.emit(Event{Kind: EventDuration, Position: position, Duration: duration})
			}
			m.emit(Event{Kind: EventProgress, Position: position, Duration: duration})
		}
	}
}

func (m *MPV) emit(ev Event) {
	if ev.Kind == EventEnded {
		// Ended has no follow-up event to correct a miss, so it must land
		// even when the buffer is full of stale ticks. Evict until it fits.
		for {
			select {
			case m.events <- ev:
				return
			default:
				select {
				case <-m.events:
				default:
				}
			}
		}
	}

	select {
	case m.events <- ev:
	default:
		// Drop the tick rather than block the watcher; the next one is a
		// second away.
	}
}

// startEventListener subscribes to mpv's end-file notifications on a
// dedicated connection. Callers hold the mutex.
func (m *MPV) startEventListener() error {
	conn, err := net.Dial("unix", m.socketPath)
	if err != nil {
		return fmt.Errorf("failed to connect for events: %w", err)
	}

	enableCmd := mpvCommand{Command: []interface{}{"enable_event", "end-file"}}
	data, _ := json.Marshal(enableCmd)
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable events: %w", err)
	}

	m.eventConn = conn
	m.eventStop = make(chan struct{})
	go m.handleEvents(conn, m.eventStop)

	return nil
}

func (m *MPV) handleEvents(conn net.Conn, stop chan struct{}) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		select {
		case <-stop:
			return
		default:
			conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))

			line, err := reader.ReadBytes('\n')
			if err != nil {
				if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
					continue
				}
				log.Printf("mpv event reader error: %v", err)
				return
			}

			var event mpvEvent
			if err := json.Unmarshal(line, &event); err != nil {
				continue // Skip malformed events
			}

			if event.Event == "end-file" {
				m.mu.Lock()
				loaded := m.loaded
				m.loaded = false
				m.stopWatcher()
				m.mu.Unlock()

				if loaded {
					m.emit(Event{Kind: EventEnded})
				}
			}
		}
	}
}
