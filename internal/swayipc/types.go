package swayipc

import (
	"fmt"

	"pkt.systems/wsnav/schema"
)

// unnumbered is the num reported for named workspaces without a number.
const unnumbered = -1

// workspaceRecord mirrors one GET_WORKSPACES entry. Pointer fields detect
// missing keys.
type workspaceRecord struct {
	Num     *int    `json:"num"`
	Name    string  `json:"name"`
	Output  *string `json:"output"`
	Focused *bool   `json:"focused"`
	Visible *bool   `json:"visible"`
}

func (r workspaceRecord) toWorkspace(index int) (schema.Workspace, error) {
	var missing []string
	if r.Num == nil {
		missing = append(missing, "num")
	}
	if r.Output == nil {
		missing = append(missing, "output")
	}
	if r.Focused == nil {
		missing = append(missing, "focused")
	}
	if r.Visible == nil {
		missing = append(missing, "visible")
	}
	if len(missing) > 0 {
		return schema.Workspace{}, fmt.Errorf("%w: entry %d (%q) missing %v", schema.ErrMalformedRecord, index, r.Name, missing)
	}
	return schema.Workspace{
		Num:     *r.Num,
		Name:    r.Name,
		Output:  schema.OutputName(*r.Output),
		Focused: *r.Focused,
		Visible: *r.Visible,
	}, nil
}

// toSnapshot validates records and builds a snapshot. Unnumbered workspaces
// are dropped unless focused, so several named workspaces do not collide.
func toSnapshot(records []workspaceRecord) (schema.Snapshot, error) {
	workspaces := make([]schema.Workspace, 0, len(records))
	for i, rec := range records {
		ws, err := rec.toWorkspace(i)
		if err != nil {
			return schema.Snapshot{}, err
		}
		if ws.Num == unnumbered && !ws.Focused {
			continue
		}
		workspaces = append(workspaces, ws)
	}
	return schema.NewSnapshot(workspaces)
}

// commandResult is one entry of a RUN_COMMAND reply.
type commandResult struct {
	Success    bool   `json:"success"`
	ParseError bool   `json:"parse_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Version is the GET_VERSION reply.
type Version struct {
	Major            int    `json:"major"`
	Minor            int    `json:"minor"`
	Patch            int    `json:"patch"`
	HumanReadable    string `json:"human_readable"`
	LoadedConfigFile string `json:"loaded_config_file_name"`
}
