package core

import (
	"fmt"
	"slices"

	"pkt.systems/wsnav/schema"
)

// lowestWorkspace is the lower bound for numeric navigation, independent of
// which numbers currently exist.
const lowestWorkspace = 1

// Navigate computes the target workspace number for req over snap.
// It performs no I/O and only fails when snap is empty.
func Navigate(snap schema.Snapshot, req schema.NavigationRequest) (int, error) {
	if snap.Len() == 0 {
		return 0, fmt.Errorf("%w: %w", schema.ErrInvalidSnapshot, schema.ErrEmptySnapshot)
	}
	workspaces := snap.Workspaces()
	switch req.Scope {
	case schema.ScopeSameOutput:
		return findOnOutput(workspaces, req), nil
	case schema.ScopeOtherOutput:
		return findOutput(workspaces, req), nil
	default:
		return findBy(workspaces, req), nil
	}
}

// Plan resolves action against the focused workspace of snap.
func Plan(snap schema.Snapshot, action schema.Action, skipEmpty bool) (schema.NavigationRequest, int, error) {
	if !action.Valid() {
		return schema.NavigationRequest{}, 0, fmt.Errorf("%w: %q", schema.ErrInvalidAction, action)
	}
	current, ok := snap.Focused()
	if !ok {
		return schema.NavigationRequest{}, 0, fmt.Errorf("%w: %w", schema.ErrInvalidSnapshot, schema.ErrNoFocusedWorkspace)
	}
	req := schema.NavigationRequest{
		Current:   current.Num,
		Step:      action.Step(),
		Scope:     action.Scope(),
		SkipEmpty: skipEmpty,
		Output:    current.Output,
	}
	target, err := Navigate(snap, req)
	if err != nil {
		return req, 0, err
	}
	return req, target, nil
}

func findBy(workspaces []schema.Workspace, req schema.NavigationRequest) int {
	existing := numbers(workspaces, func(schema.Workspace) bool { return true })
	if req.SkipEmpty {
		return nearestExisting(existing, req.Current, req.Step)
	}

	next := req.Current + req.Step
	highest := slices.Max(existing)
	switch {
	case req.Current == highest && req.Step > 0:
		return highest + req.Step
	case next < lowestWorkspace:
		return lowestWorkspace
	case next > highest:
		return highest
	default:
		return next
	}
}

func findOnOutput(workspaces []schema.Workspace, req schema.NavigationRequest) int {
	own, other := partitionByOutput(workspaces, req.Output)
	if req.SkipEmpty {
		return nearestExisting(own, req.Current, req.Step)
	}

	next := req.Current + req.Step

	lower := lowestWorkspace
	if below := filter(other, func(n int) bool { return n < req.Current }); len(below) > 0 {
		lower = slices.Max(below) + 1
	}
	upper := next
	if above := filter(other, func(n int) bool { return n > req.Current }); len(above) > 0 {
		upper = slices.Min(above) - 1
	}

	switch {
	case next < lower:
		return lower
	case next > upper:
		return upper
	default:
		return next
	}
}

func findOutput(workspaces []schema.Workspace, req schema.NavigationRequest) int {
	candidates := numbers(workspaces, func(ws schema.Workspace) bool {
		return ws.Output != req.Output && ws.Visible
	})
	switch {
	case req.Step > 0:
		if above := filter(candidates, func(n int) bool { return n > req.Current }); len(above) > 0 {
			return slices.Min(above)
		}
	case req.Step < 0:
		if below := filter(candidates, func(n int) bool { return n < req.Current }); len(below) > 0 {
			return slices.Max(below)
		}
	}
	return req.Current
}

// nearestExisting picks the closest existing number in the step direction,
// staying at current when there is none.
func nearestExisting(existing []int, current, step int) int {
	bound := current + step
	if step >= 0 {
		if nexts := filter(existing, func(n int) bool { return n >= bound }); len(nexts) > 0 {
			return slices.Min(nexts)
		}
		return current
	}
	if prevs := filter(existing, func(n int) bool { return n <= bound }); len(prevs) > 0 {
		return slices.Max(prevs)
	}
	return current
}

func partitionByOutput(workspaces []schema.Workspace, output schema.OutputName) (own, other []int) {
	for _, ws := range workspaces {
		if ws.Output == output {
			own = append(own, ws.Num)
		} else {
			other = append(other, ws.Num)
		}
	}
	return own, other
}

func numbers(workspaces []schema.Workspace, keep func(schema.Workspace) bool) []int {
	out := make([]int, 0, len(workspaces))
	for _, ws := range workspaces {
		if keep(ws) {
			out = append(out, ws.Num)
		}
	}
	return out
}

func filter(nums []int, keep func(int) bool) []int {
	var out []int
	for _, n := range nums {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}
