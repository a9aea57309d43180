package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"pkt.systems/pslog"
	"pkt.systems/wsnav/internal/logx"
	"pkt.systems/wsnav/schema"
)

// SwitchRequest describes one invocation of the switcher.
type SwitchRequest struct {
	Action    schema.Action
	SkipEmpty bool
	Move      bool
	NoFocus   bool
	Stdout    bool
}

// SwitchResult reports what a switch computed and which commands ran.
type SwitchResult struct {
	From    schema.Workspace
	Request schema.NavigationRequest
	Target  int
	Moved   bool
	Focused bool
	Printed bool
}

// Switcher fetches a snapshot, navigates and applies the result.
type Switcher struct {
	source SnapshotSource
	sink   CommandSink
	out    io.Writer
	logger pslog.Logger
}

// NewSwitcher constructs a Switcher. Source is required; Sink is only
// required for requests that move or focus, Output only for Stdout requests.
func NewSwitcher(deps SwitcherDeps) (*Switcher, error) {
	if deps.Source == nil {
		return nil, errors.New("snapshot source is required")
	}
	return &Switcher{
		source: deps.Source,
		sink:   deps.Sink,
		out:    deps.Output,
		logger: deps.Logger,
	}, nil
}

func (s *Switcher) log(ctx context.Context, action schema.Action) pslog.Logger {
	if s.logger != nil {
		return logx.WithAction(s.logger, action)
	}
	return logx.Ctx(logx.ContextWithAction(ctx, action))
}

// Switch runs the request: move first, then focus, then print.
// Any failure aborts the remaining steps.
func (s *Switcher) Switch(ctx context.Context, req SwitchRequest) (SwitchResult, error) {
	if !req.Action.Valid() {
		return SwitchResult{}, fmt.Errorf("%w: %q", schema.ErrInvalidAction, req.Action)
	}
	if (req.Move || !req.NoFocus) && s.sink == nil {
		return SwitchResult{}, errors.New("command sink is required to move or focus")
	}
	if req.Stdout && s.out == nil {
		return SwitchResult{}, errors.New("output writer is required for stdout")
	}
	log := s.log(ctx, req.Action)

	snap, err := s.source.Workspaces(ctx)
	if err != nil {
		log.Warn("switch snapshot failed", "err", err)
		return SwitchResult{}, err
	}
	from, _ := snap.Focused()
	navReq, target, err := Plan(snap, req.Action, req.SkipEmpty)
	if err != nil {
		return SwitchResult{}, err
	}
	log = logx.WithWorkspace(log, from)
	log.Debug("switch planned", "target", target, "scope", navReq.Scope.String(), "skip_empty", navReq.SkipEmpty, "workspaces", snap.Len())

	result := SwitchResult{From: from, Request: navReq, Target: target}
	if req.Move {
		if err := s.sink.MoveToWorkspace(ctx, target); err != nil {
			log.Warn("switch move failed", "target", target, "err", err)
			return result, err
		}
		result.Moved = true
	}
	if !req.NoFocus {
		if err := s.sink.FocusWorkspace(ctx, target); err != nil {
			log.Warn("switch focus failed", "target", target, "err", err)
			return result, err
		}
		result.Focused = true
	}
	if req.Stdout {
		if _, err := io.WriteString(s.out, strconv.Itoa(target)); err != nil {
			return result, err
		}
		result.Printed = true
	}
	log.Debug("switch done", "target", target, "moved", result.Moved, "focused", result.Focused)
	return result, nil
}
