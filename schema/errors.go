package schema

import "errors"

var (
	// ErrInvalidSnapshot indicates the workspace snapshot cannot be navigated.
	ErrInvalidSnapshot = errors.New("invalid workspace snapshot")
	// ErrEmptySnapshot indicates the snapshot holds no workspaces.
	ErrEmptySnapshot = errors.New("snapshot has no workspaces")
	// ErrNoFocusedWorkspace indicates no workspace is marked focused.
	ErrNoFocusedWorkspace = errors.New("no focused workspace")
	// ErrMultipleFocused indicates more than one workspace is marked focused.
	ErrMultipleFocused = errors.New("more than one focused workspace")
	// ErrDuplicateWorkspace indicates two workspaces share a number.
	ErrDuplicateWorkspace = errors.New("duplicate workspace number")
	// ErrMalformedRecord indicates a workspace record is missing a field.
	ErrMalformedRecord = errors.New("malformed workspace record")
	// ErrTransport indicates the window manager could not be reached or refused a command.
	ErrTransport = errors.New("window manager transport failure")
	// ErrInvalidAction indicates an unknown navigation action.
	ErrInvalidAction = errors.New("invalid action")
)
