package display

import (
	"fmt"
	"io"
	"log"
	"sync"

	"go.bug.st/serial"

	"github.com/clawdbot/agentface/internal/models"
)

const baudRate = 115200

// openSerial opens the device without toggling DTR/RTS so the board does
// not reset every time the daemon reconnects.
func openSerial(device string) (io.WriteCloser, error) {
	port, err := serial.Open(device, &serial.Mode{BaudRate: baudRate})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	if err := port.SetDTR(false); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to lower DTR on %s: %w", device, err)
	}
	if err := port.SetRTS(false); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to lower RTS on %s: %w", device, err)
	}
	return port, nil
}

// Serial is a Display backed by a USB serial device. The connection is
// lazy: each command opens the port if needed, and a write failure drops
// the connection so the next command retries. Unplugging the board is
// not fatal.
type Serial struct {
	device string
	open   func(device string) (io.WriteCloser, error)

	mu       sync.Mutex
	conn     io.WriteCloser
	warned   bool
	lastLine map[byte]string
}

// NewSerial creates a display for the given serial device. The port is
// opened on first use.
func NewSerial(device string) *Serial {
	return &Serial{device: device, open: openSerial, lastLine: make(map[byte]string)}
}

// send writes one protocol line, reconnecting once if the port went away.
func (s *Serial) send(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		if s.conn == nil {
			conn, err := s.open(s.device)
			if err != nil {
				if !s.warned {
					log.Printf("[display] %v", err)
					s.warned = true
				}
				return
			}
			log.Printf("[display] connected to %s", s.device)
			s.conn = conn
			s.warned = false
		}
		if _, err := io.WriteString(s.conn, line+"\n"); err == nil {
			return
		}
		s.conn.Close()
		s.conn = nil
	}
}

// dedup reports whether the command for the given prefix changed since the
// last send, updating the stored value when it did.
func (s *Serial) dedup(prefix byte, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastLine[prefix] == value {
		return false
	}
	s.lastLine[prefix] = value
	return true
}

func (s *Serial) SetStatus(text string) {
	if !s.dedup('S', text) {
		return
	}
	s.send("S:" + text)
}

func (s *Serial) SetExpression(expr models.Expression) {
	if !s.dedup('E', string(expr)) {
		return
	}
	s.send("E:" + string(expr))
}

func (s *Serial) SetScreen(on bool) {
	state := "OFF"
	if on {
		state = "ON"
	}
	if !s.dedup('B', state) {
		return
	}
	s.send("SCREEN:" + state)
}

func (s *Serial) Clear() {
	s.mu.Lock()
	delete(s.lastLine, 'S')
	s.mu.Unlock()
	s.send("CLEAR")
}

func (s *Serial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
