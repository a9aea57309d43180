// Package swayipctest provides an in-process sway IPC server for tests.
package swayipctest

import (
	"net"
	"path/filepath"
	"sync"
	"testing"

	"pkt.systems/wsnav/internal/swayipc"
)

// Handler answers one request frame.
type Handler func(typ swayipc.MessageType, payload []byte) (swayipc.MessageType, []byte)

// Server is a fake window manager listening on a unix socket in t.TempDir.
type Server struct {
	Path string

	listener net.Listener
	handler  Handler

	mu       sync.Mutex
	commands []string
	wg       sync.WaitGroup
}

// NewServer starts a server answering with handler. The server stops when
// the test ends.
func NewServer(t testing.TB, handler Handler) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ipc.sock")
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := &Server{Path: path, listener: ln, handler: handler}
	s.wg.Add(1)
	go s.serve()
	t.Cleanup(func() {
		_ = ln.Close()
		s.wg.Wait()
	})
	return s
}

// NewSway starts a server that replies with the given GET_WORKSPACES JSON
// and accepts every command except those listed in reject.
func NewSway(t testing.TB, workspaces string, reject ...string) *Server {
	return NewServer(t, SwayHandler(workspaces, reject...))
}

// SwayHandler mimics sway replies.
func SwayHandler(workspaces string, reject ...string) Handler {
	return func(typ swayipc.MessageType, payload []byte) (swayipc.MessageType, []byte) {
		switch typ {
		case swayipc.MessageGetWorkspaces:
			return typ, []byte(workspaces)
		case swayipc.MessageGetVersion:
			return typ, []byte(`{"major":1,"minor":10,"patch":1,"human_readable":"1.10.1","loaded_config_file_name":"/etc/sway/config"}`)
		case swayipc.MessageRunCommand:
			for _, cmd := range reject {
				if string(payload) == cmd {
					return typ, []byte(`[{"success":false,"parse_error":false,"error":"rejected"}]`)
				}
			}
			return typ, []byte(`[{"success":true}]`)
		default:
			return typ, []byte(`{}`)
		}
	}
}

func (s *Server) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			for {
				typ, payload, err := swayipc.ReadMessage(conn)
				if err != nil {
					return
				}
				if typ == swayipc.MessageRunCommand {
					s.mu.Lock()
					s.commands = append(s.commands, string(payload))
					s.mu.Unlock()
				}
				replyType, reply := s.handler(typ, payload)
				if err := swayipc.WriteMessage(conn, replyType, reply); err != nil {
					return
				}
			}
		}()
	}
}

// Commands returns the RUN_COMMAND payloads received so far.
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.commands))
	copy(out, s.commands)
	return out
}
