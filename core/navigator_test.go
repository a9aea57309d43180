package core

import (
	"errors"
	"testing"

	"pkt.systems/wsnav/schema"
)

func mustSnapshot(t *testing.T, workspaces ...schema.Workspace) schema.Snapshot {
	t.Helper()
	snap, err := schema.NewSnapshot(workspaces)
	if err != nil {
		t.Fatalf("new snapshot: %v", err)
	}
	return snap
}

// singleOutput builds workspaces on output "A"; the focused number is also the visible one.
func singleOutput(t *testing.T, focused int, nums ...int) schema.Snapshot {
	t.Helper()
	workspaces := make([]schema.Workspace, 0, len(nums))
	for _, n := range nums {
		workspaces = append(workspaces, schema.Workspace{
			Num:     n,
			Output:  "A",
			Focused: n == focused,
			Visible: n == focused,
		})
	}
	return mustSnapshot(t, workspaces...)
}

func unscoped(current, step int, skipEmpty bool) schema.NavigationRequest {
	return schema.NavigationRequest{Current: current, Step: step, Scope: schema.ScopeUnscoped, SkipEmpty: skipEmpty, Output: "A"}
}

func TestNavigateUnscoped(t *testing.T) {
	cases := []struct {
		name    string
		nums    []int
		current int
		step    int
		want    int
	}{
		{"escape-past-highest", []int{1, 2, 3, 4, 5}, 5, 1, 6},
		{"clamp-at-one", []int{1, 2, 3, 4, 5}, 1, -1, 1},
		{"interior-next", []int{1, 2, 3}, 2, 1, 3},
		{"interior-prev", []int{1, 2, 3}, 2, -1, 1},
		{"gap-is-filled", []int{1, 3, 7}, 1, 1, 2},
		{"lower-bound-ignores-minimum", []int{4, 5}, 4, -1, 3},
		{"below-range-clamps-to-one", []int{5, 6}, 0, -1, 1},
		{"above-highest-clamps", []int{1, 2}, 5, -1, 2},
		{"highest-prev", []int{1, 3, 7}, 7, -1, 6},
	}
	for _, tc := range cases {
		snap := singleOutput(t, tc.nums[0], tc.nums...)
		got, err := Navigate(snap, unscoped(tc.current, tc.step, false))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: Navigate(%v, current=%d, step=%d) = %d, want %d", tc.name, tc.nums, tc.current, tc.step, got, tc.want)
		}
	}
}

func TestNavigateUnscopedSkipEmpty(t *testing.T) {
	cases := []struct {
		name    string
		nums    []int
		current int
		step    int
		want    int
	}{
		{"forward-to-next-existing", []int{1, 3, 7}, 1, 1, 3},
		{"forward-none-stays", []int{1, 3, 7}, 7, 1, 7},
		{"backward-to-previous-existing", []int{1, 3, 7}, 7, -1, 3},
		{"backward-none-stays", []int{1, 3, 7}, 1, -1, 1},
		{"unordered-input-picks-smallest", []int{9, 7, 3, 1}, 1, 1, 3},
		{"unordered-input-picks-largest", []int{1, 9, 3, 7}, 9, -1, 7},
	}
	for _, tc := range cases {
		snap := singleOutput(t, tc.current, tc.nums...)
		got, err := Navigate(snap, unscoped(tc.current, tc.step, true))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: Navigate(%v, current=%d, step=%d, skip) = %d, want %d", tc.name, tc.nums, tc.current, tc.step, got, tc.want)
		}
	}
}

func twoOutputs(t *testing.T, focused int) schema.Snapshot {
	t.Helper()
	return mustSnapshot(t,
		schema.Workspace{Num: 1, Output: "A", Focused: focused == 1, Visible: focused == 1},
		schema.Workspace{Num: 2, Output: "A", Focused: focused == 2, Visible: focused != 1},
		schema.Workspace{Num: 3, Output: "B", Focused: focused == 3, Visible: focused == 3},
		schema.Workspace{Num: 4, Output: "B", Focused: focused == 4, Visible: focused != 3},
	)
}

func TestNavigateSameOutput(t *testing.T) {
	cases := []struct {
		name    string
		snap    schema.Snapshot
		current int
		output  schema.OutputName
		step    int
		want    int
	}{
		{"wall-blocks-next", twoOutputs(t, 2), 2, "A", 1, 2},
		{"interior-prev", twoOutputs(t, 2), 2, "A", -1, 1},
		{"lower-wall-from-other-output", twoOutputs(t, 3), 3, "B", -1, 3},
		{"open-top-creates", twoOutputs(t, 4), 4, "B", 1, 5},
		{"no-wall-below-clamps-to-one", twoOutputs(t, 1), 1, "A", -1, 1},
		{"no-other-output-creates", singleOutput(t, 2, 1, 2), 2, "A", 1, 3},
	}
	for _, tc := range cases {
		got, err := Navigate(tc.snap, schema.NavigationRequest{
			Current: tc.current,
			Step:    tc.step,
			Scope:   schema.ScopeSameOutput,
			Output:  tc.output,
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNavigateSameOutputGapBetweenWalls(t *testing.T) {
	snap := mustSnapshot(t,
		schema.Workspace{Num: 2, Output: "B", Visible: true},
		schema.Workspace{Num: 4, Output: "A", Focused: true, Visible: true},
		schema.Workspace{Num: 8, Output: "B"},
	)
	cases := []struct {
		step int
		want int
	}{
		{1, 5},
		{-1, 3},
	}
	for _, tc := range cases {
		got, err := Navigate(snap, schema.NavigationRequest{Current: 4, Step: tc.step, Scope: schema.ScopeSameOutput, Output: "A"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Fatalf("step %d: got %d, want %d", tc.step, got, tc.want)
		}
	}

	pinned := mustSnapshot(t,
		schema.Workspace{Num: 3, Output: "B", Visible: true},
		schema.Workspace{Num: 4, Output: "A", Focused: true, Visible: true},
		schema.Workspace{Num: 5, Output: "B"},
	)
	for _, step := range []int{1, -1} {
		got, err := Navigate(pinned, schema.NavigationRequest{Current: 4, Step: step, Scope: schema.ScopeSameOutput, Output: "A"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 4 {
			t.Fatalf("step %d: expected to stay on 4 between walls, got %d", step, got)
		}
	}
}

func TestNavigateSameOutputSkipEmpty(t *testing.T) {
	snap := mustSnapshot(t,
		schema.Workspace{Num: 1, Output: "A", Focused: true, Visible: true},
		schema.Workspace{Num: 2, Output: "B", Visible: true},
		schema.Workspace{Num: 5, Output: "A"},
		schema.Workspace{Num: 6, Output: "B"},
	)
	cases := []struct {
		name    string
		current int
		step    int
		want    int
	}{
		{"forward-skips-other-output", 1, 1, 5},
		{"forward-none-stays", 5, 1, 5},
		{"backward-skips-other-output", 5, -1, 1},
		{"backward-none-stays", 1, -1, 1},
	}
	for _, tc := range cases {
		got, err := Navigate(snap, schema.NavigationRequest{
			Current:   tc.current,
			Step:      tc.step,
			Scope:     schema.ScopeSameOutput,
			SkipEmpty: true,
			Output:    "A",
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNavigateOtherOutput(t *testing.T) {
	snap := mustSnapshot(t,
		schema.Workspace{Num: 1, Output: "A", Focused: true, Visible: true},
		schema.Workspace{Num: 2, Output: "A"},
		schema.Workspace{Num: 3, Output: "B"},
		schema.Workspace{Num: 4, Output: "B", Visible: true},
		schema.Workspace{Num: 7, Output: "C", Visible: true},
	)
	cases := []struct {
		name    string
		current int
		output  schema.OutputName
		step    int
		skip    bool
		want    int
	}{
		{"hop-to-nearest-visible", 1, "A", 1, false, 4},
		{"skip-empty-ignored", 1, "A", 1, true, 4},
		{"hop-forward-again", 4, "B", 1, false, 7},
		{"no-further-output-stays", 7, "C", 1, false, 7},
		{"hop-back", 7, "C", -1, false, 4},
		{"no-previous-output-stays", 1, "A", -1, false, 1},
		{"zero-step-stays", 4, "B", 0, false, 4},
	}
	for _, tc := range cases {
		got, err := Navigate(snap, schema.NavigationRequest{
			Current:   tc.current,
			Step:      tc.step,
			Scope:     schema.ScopeOtherOutput,
			SkipEmpty: tc.skip,
			Output:    tc.output,
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestNavigateOtherOutputRepeatedHopStays(t *testing.T) {
	first := mustSnapshot(t,
		schema.Workspace{Num: 1, Output: "A", Focused: true, Visible: true},
		schema.Workspace{Num: 4, Output: "B", Visible: true},
	)
	_, target, err := Plan(first, schema.ActionNextOutput, false)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if target != 4 {
		t.Fatalf("expected hop to 4, got %d", target)
	}
	second := mustSnapshot(t,
		schema.Workspace{Num: 1, Output: "A", Visible: true},
		schema.Workspace{Num: 4, Output: "B", Focused: true, Visible: true},
	)
	_, target, err = Plan(second, schema.ActionNextOutput, false)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if target != 4 {
		t.Fatalf("expected to stay on 4, got %d", target)
	}
}

func TestNavigateRoundTrip(t *testing.T) {
	nums := []int{1, 2, 3, 4, 5}
	for _, start := range []int{2, 3, 4} {
		for _, skip := range []bool{false, true} {
			snap := singleOutput(t, start, nums...)
			next, err := Navigate(snap, unscoped(start, 1, skip))
			if err != nil {
				t.Fatalf("next: %v", err)
			}
			back, err := Navigate(snap, unscoped(next, -1, skip))
			if err != nil {
				t.Fatalf("prev: %v", err)
			}
			if back != start {
				t.Fatalf("start %d skip=%v: next=%d prev=%d, want round trip", start, skip, next, back)
			}
		}
	}
}

func TestNavigateEmptySnapshot(t *testing.T) {
	for _, scope := range []schema.Scope{schema.ScopeUnscoped, schema.ScopeSameOutput, schema.ScopeOtherOutput} {
		_, err := Navigate(schema.Snapshot{}, schema.NavigationRequest{Current: 1, Step: 1, Scope: scope})
		if !errors.Is(err, schema.ErrInvalidSnapshot) {
			t.Fatalf("scope %v: expected ErrInvalidSnapshot, got %v", scope, err)
		}
	}
}

func TestPlanUsesFocusedWorkspace(t *testing.T) {
	snap := mustSnapshot(t,
		schema.Workspace{Num: 1, Output: "A", Visible: true},
		schema.Workspace{Num: 2, Output: "A", Focused: true},
		schema.Workspace{Num: 3, Output: "B", Visible: true},
	)
	cases := []struct {
		action schema.Action
		skip   bool
		want   int
	}{
		{schema.ActionNext, false, 3},
		{schema.ActionPrev, false, 1},
		{schema.ActionNextOnOutput, false, 2},
		{schema.ActionPrevOnOutput, false, 1},
		{schema.ActionNextOutput, false, 3},
		{schema.ActionPrevOutput, false, 2},
		{schema.ActionNextOnOutput, true, 2},
	}
	for _, tc := range cases {
		req, target, err := Plan(snap, tc.action, tc.skip)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.action, err)
		}
		if req.Current != 2 || req.Output != "A" {
			t.Fatalf("%s: expected request from focused workspace, got %+v", tc.action, req)
		}
		if target != tc.want {
			t.Fatalf("%s skip=%v: got %d, want %d", tc.action, tc.skip, target, tc.want)
		}
	}
}

func TestPlanRejectsInvalidInput(t *testing.T) {
	if _, _, err := Plan(schema.Snapshot{}, schema.ActionNext, false); !errors.Is(err, schema.ErrInvalidSnapshot) {
		t.Fatalf("expected ErrInvalidSnapshot, got %v", err)
	}
	snap := singleOutput(t, 1, 1)
	if _, _, err := Plan(snap, schema.Action("up"), false); !errors.Is(err, schema.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}
