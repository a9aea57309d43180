package swayipc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/wsnav/internal/logx"
	"pkt.systems/wsnav/schema"
)

// DefaultTimeout bounds a single request when the context has no deadline.
const DefaultTimeout = 2 * time.Second

// Client talks to sway or i3 over its IPC socket. Requests are serialized
// on a single connection.
type Client struct {
	conn       net.Conn
	socketPath string
	timeout    time.Duration
	log        pslog.Logger
	mu         sync.Mutex
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout used when ctx has no deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger attaches a logger to the client.
func WithLogger(logger pslog.Logger) Option {
	return func(c *Client) {
		c.log = logger
	}
}

// Dial connects to the IPC socket at socketPath.
func Dial(ctx context.Context, socketPath string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(socketPath) == "" {
		return nil, fmt.Errorf("%w: socket path is required", schema.ErrTransport)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	c := &Client{socketPath: socketPath, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logx.WithSocket(ctx, socketPath)
	} else {
		c.log = c.log.With("socket", socketPath)
	}

	var dialer net.Dialer
	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	conn, err := dialer.DialContext(dialCtx, "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %w", schema.ErrTransport, socketPath, err)
	}
	c.conn = conn
	c.log.Debug("ipc connected")
	return c, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// SocketPath reports the socket the client is connected to.
func (c *Client) SocketPath() string {
	return c.socketPath
}

func (c *Client) roundTrip(ctx context.Context, typ MessageType, payload []byte) ([]byte, error) {
	if c.conn == nil {
		return nil, fmt.Errorf("%w: client not connected", schema.ErrTransport)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("%w: set deadline: %w", schema.ErrTransport, err)
	}
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetDeadline(time.Now())
	})
	defer stop()

	start := time.Now()
	if err := WriteMessage(c.conn, typ, payload); err != nil {
		return nil, c.transportErr(ctx, "write "+typ.String(), err)
	}
	replyType, reply, err := ReadMessage(c.conn)
	if err != nil {
		return nil, c.transportErr(ctx, "read "+typ.String(), err)
	}
	if replyType != typ {
		return nil, fmt.Errorf("%w: %s reply has type %s", schema.ErrTransport, typ, replyType)
	}
	c.log.Debug("ipc round trip", "type", typ.String(), "bytes", len(reply), "elapsed", time.Since(start))
	return reply, nil
}

func (c *Client) transportErr(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s: %w", schema.ErrTransport, op, ctxErr)
	}
	return fmt.Errorf("%w: %s: %w", schema.ErrTransport, op, err)
}

// Workspaces fetches and validates the workspace snapshot.
func (c *Client) Workspaces(ctx context.Context) (schema.Snapshot, error) {
	reply, err := c.roundTrip(ctx, MessageGetWorkspaces, nil)
	if err != nil {
		return schema.Snapshot{}, err
	}
	var records []workspaceRecord
	if err := json.Unmarshal(reply, &records); err != nil {
		return schema.Snapshot{}, fmt.Errorf("%w: decode workspaces: %w", schema.ErrMalformedRecord, err)
	}
	snap, err := toSnapshot(records)
	if err != nil {
		return schema.Snapshot{}, err
	}
	c.log.Debug("ipc workspaces", "count", snap.Len())
	return snap, nil
}

// Version fetches the window manager version.
func (c *Client) Version(ctx context.Context) (Version, error) {
	reply, err := c.roundTrip(ctx, MessageGetVersion, nil)
	if err != nil {
		return Version{}, err
	}
	var v Version
	if err := json.Unmarshal(reply, &v); err != nil {
		return Version{}, fmt.Errorf("%w: decode version: %w", schema.ErrTransport, err)
	}
	return v, nil
}

// RunCommand sends a command string and fails if any sub-command was rejected.
func (c *Client) RunCommand(ctx context.Context, command string) error {
	reply, err := c.roundTrip(ctx, MessageRunCommand, []byte(command))
	if err != nil {
		return err
	}
	results, err := decodeCommandReply(reply)
	if err != nil {
		return fmt.Errorf("%w: decode %q reply: %w", schema.ErrTransport, command, err)
	}
	var failures []string
	for _, res := range results {
		if res.Success {
			continue
		}
		msg := res.Error
		if msg == "" {
			msg = "command failed"
		}
		failures = append(failures, msg)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%w: %q: %s", schema.ErrTransport, command, strings.Join(failures, "; "))
	}
	c.log.Debug("ipc command", "command", command)
	return nil
}

// decodeCommandReply accepts both the list form and the single-object form
// some i3 versions send for parse errors.
func decodeCommandReply(reply []byte) ([]commandResult, error) {
	var results []commandResult
	if err := json.Unmarshal(reply, &results); err == nil {
		return results, nil
	}
	var single commandResult
	if err := json.Unmarshal(reply, &single); err != nil {
		return nil, err
	}
	return []commandResult{single}, nil
}

// FocusWorkspace switches to workspace num, creating it if needed.
func (c *Client) FocusWorkspace(ctx context.Context, num int) error {
	return c.RunCommand(ctx, FocusCommand(num))
}

// MoveToWorkspace moves the focused container to workspace num.
func (c *Client) MoveToWorkspace(ctx context.Context, num int) error {
	return c.RunCommand(ctx, MoveCommand(num))
}

// FocusCommand renders the command that focuses workspace num.
func FocusCommand(num int) string {
	return fmt.Sprintf("workspace number %d", num)
}

// MoveCommand renders the command that moves the focused container to workspace num.
// sway and i3 read "move workspace" as "move container to workspace".
func MoveCommand(num int) string {
	return fmt.Sprintf("move workspace number %d", num)
}
