package schema

import (
	"fmt"
	"strings"
)

// Action selects a navigation direction and scope.
type Action string

const (
	ActionNext         Action = "next"
	ActionPrev         Action = "prev"
	ActionNextOutput   Action = "next-output"
	ActionPrevOutput   Action = "prev-output"
	ActionNextOnOutput Action = "next-on-output"
	ActionPrevOnOutput Action = "prev-on-output"
)

// Actions lists every supported action in help order.
var Actions = []Action{
	ActionNext,
	ActionPrev,
	ActionNextOutput,
	ActionPrevOutput,
	ActionNextOnOutput,
	ActionPrevOnOutput,
}

// ParseAction normalizes a user supplied action name.
// Underscores are accepted in place of dashes.
func ParseAction(value string) (Action, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	trimmed = strings.ReplaceAll(trimmed, "_", "-")
	for _, action := range Actions {
		if string(action) == trimmed {
			return action, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, value)
}

// Scope reports the strategy the action dispatches to.
func (a Action) Scope() Scope {
	switch a {
	case ActionNextOnOutput, ActionPrevOnOutput:
		return ScopeSameOutput
	case ActionNextOutput, ActionPrevOutput:
		return ScopeOtherOutput
	default:
		return ScopeUnscoped
	}
}

// Step reports the direction of the action: +1 or -1.
func (a Action) Step() int {
	switch a {
	case ActionPrev, ActionPrevOutput, ActionPrevOnOutput:
		return -1
	default:
		return 1
	}
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	for _, action := range Actions {
		if action == a {
			return true
		}
	}
	return false
}

// ActionNames returns the action names as strings.
func ActionNames() []string {
	names := make([]string, 0, len(Actions))
	for _, action := range Actions {
		names = append(names, string(action))
	}
	return names
}
