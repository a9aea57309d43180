package core

import (
	"context"
	"io"

	"pkt.systems/pslog"
	"pkt.systems/wsnav/schema"
)

// SnapshotSource fetches the current workspace snapshot from the window manager.
type SnapshotSource interface {
	Workspaces(ctx context.Context) (schema.Snapshot, error)
}

// CommandSink issues workspace commands to the window manager.
type CommandSink interface {
	MoveToWorkspace(ctx context.Context, num int) error
	FocusWorkspace(ctx context.Context, num int) error
}

// SwitcherDeps captures the collaborators of a Switcher.
type SwitcherDeps struct {
	Source SnapshotSource
	Sink   CommandSink
	Output io.Writer
	Logger pslog.Logger
}
