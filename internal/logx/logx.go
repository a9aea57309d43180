package logx

import (
	"context"

	"pkt.systems/pslog"
	"pkt.systems/wsnav/schema"
)

type contextKey int

const (
	actionKey contextKey = iota
	socketKey
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithAction annotates the logger with the navigation action if present.
func WithAction(log pslog.Logger, action schema.Action) pslog.Logger {
	if action != "" {
		log = log.With("action", string(action))
	}
	return log
}

// WithWorkspace annotates the logger with the workspace number and output.
func WithWorkspace(log pslog.Logger, ws schema.Workspace) pslog.Logger {
	log = log.With("workspace", ws.Num)
	if ws.Output != "" {
		log = log.With("output", string(ws.Output))
	}
	return log
}

// WithSocket annotates the context logger with the IPC socket path, skipping
// the field when the context already carries it.
func WithSocket(ctx context.Context, socketPath string) pslog.Logger {
	log := pslog.Ctx(ctx)
	if socketPath == "" {
		return log
	}
	if current, ok := ctx.Value(socketKey).(string); ok && current == socketPath {
		return log
	}
	return log.With("socket", socketPath)
}

// ContextWithSocket stores the socket marker on the context for log de-duplication.
func ContextWithSocket(ctx context.Context, socketPath string) context.Context {
	if ctx == nil || socketPath == "" {
		return ctx
	}
	return context.WithValue(ctx, socketKey, socketPath)
}

// ContextWithSocketLogger attaches the logger and socket marker to the context.
func ContextWithSocketLogger(ctx context.Context, log pslog.Logger, socketPath string) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	return ContextWithSocket(ctx, socketPath)
}

// ContextWithAction attaches an action-annotated logger to the context.
func ContextWithAction(ctx context.Context, action schema.Action) context.Context {
	if ctx == nil || action == "" {
		return ctx
	}
	if current, ok := ctx.Value(actionKey).(schema.Action); ok && current == action {
		return ctx
	}
	ctx = pslog.ContextWithLogger(ctx, WithAction(pslog.Ctx(ctx), action))
	return context.WithValue(ctx, actionKey, action)
}
