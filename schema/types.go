package schema

// OutputName identifies a physical output (monitor) as reported by the window manager.
type OutputName string

// Workspace is a single workspace entry of a snapshot.
type Workspace struct {
	Num     int
	Name    string
	Output  OutputName
	Focused bool
	Visible bool
}

// Scope restricts which workspaces a navigation may land on.
type Scope int

const (
	// ScopeUnscoped navigates across every workspace regardless of output.
	ScopeUnscoped Scope = iota
	// ScopeSameOutput keeps navigation within the focused output.
	ScopeSameOutput
	// ScopeOtherOutput hops to the visible workspace of a neighbouring output.
	ScopeOtherOutput
)

func (s Scope) String() string {
	switch s {
	case ScopeUnscoped:
		return "unscoped"
	case ScopeSameOutput:
		return "same-output"
	case ScopeOtherOutput:
		return "other-output"
	default:
		return "unknown"
	}
}

// NavigationRequest describes one navigation step from the current workspace.
type NavigationRequest struct {
	Current   int
	Step      int
	Scope     Scope
	SkipEmpty bool
	Output    OutputName
}
