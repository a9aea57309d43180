package schema

import "fmt"

// Snapshot is a validated, immutable set of workspaces taken in one query.
// Use NewSnapshot to build one; the zero value is empty and rejected by navigation.
type Snapshot struct {
	workspaces []Workspace
	focused    int
}

// NewSnapshot validates workspaces and returns a snapshot preserving their order.
// It requires at least one workspace, exactly one focused workspace and unique
// workspace numbers.
func NewSnapshot(workspaces []Workspace) (Snapshot, error) {
	if len(workspaces) == 0 {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrEmptySnapshot)
	}
	seen := make(map[int]struct{}, len(workspaces))
	focused := -1
	for i, ws := range workspaces {
		if _, ok := seen[ws.Num]; ok {
			return Snapshot{}, fmt.Errorf("%w: %w %d", ErrInvalidSnapshot, ErrDuplicateWorkspace, ws.Num)
		}
		seen[ws.Num] = struct{}{}
		if !ws.Focused {
			continue
		}
		if focused >= 0 {
			return Snapshot{}, fmt.Errorf("%w: %w (%d and %d)", ErrInvalidSnapshot, ErrMultipleFocused, workspaces[focused].Num, ws.Num)
		}
		focused = i
	}
	if focused < 0 {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, ErrNoFocusedWorkspace)
	}
	out := make([]Workspace, len(workspaces))
	copy(out, workspaces)
	return Snapshot{workspaces: out, focused: focused}, nil
}

// Len reports the number of workspaces.
func (s Snapshot) Len() int {
	return len(s.workspaces)
}

// Workspaces returns a copy of the workspaces in snapshot order.
func (s Snapshot) Workspaces() []Workspace {
	out := make([]Workspace, len(s.workspaces))
	copy(out, s.workspaces)
	return out
}

// Focused returns the focused workspace. ok is false for an empty snapshot.
func (s Snapshot) Focused() (Workspace, bool) {
	if len(s.workspaces) == 0 {
		return Workspace{}, false
	}
	return s.workspaces[s.focused], true
}

// Numbers returns all workspace numbers in snapshot order.
func (s Snapshot) Numbers() []int {
	nums := make([]int, 0, len(s.workspaces))
	for _, ws := range s.workspaces {
		nums = append(nums, ws.Num)
	}
	return nums
}
