package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pkt.systems/wsnav/schema"
)

func newWorkspacesCmd(globals *globalFlags) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "Print the workspace snapshot as seen by wsnav",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(cmd, *globals, nil)
			if err != nil {
				return err
			}
			ctx, client, err := sess.dial(sess.ctx)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			snap, err := client.Workspaces(ctx)
			if err != nil {
				return err
			}
			if asJSON {
				return writeWorkspacesJSON(cmd.OutOrStdout(), snap)
			}
			return writeWorkspacesTable(cmd.OutOrStdout(), snap)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

type workspaceView struct {
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Output  string `json:"output"`
	Focused bool   `json:"focused"`
	Visible bool   `json:"visible"`
}

func writeWorkspacesJSON(w io.Writer, snap schema.Snapshot) error {
	views := make([]workspaceView, 0, snap.Len())
	for _, ws := range snap.Workspaces() {
		views = append(views, workspaceView{
			Num:     ws.Num,
			Name:    ws.Name,
			Output:  string(ws.Output),
			Focused: ws.Focused,
			Visible: ws.Visible,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

func writeWorkspacesTable(w io.Writer, snap schema.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NUM\tNAME\tOUTPUT\tSTATE")
	for _, ws := range snap.Workspaces() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", ws.Num, ws.Name, ws.Output, workspaceState(ws))
	}
	return tw.Flush()
}

func workspaceState(ws schema.Workspace) string {
	switch {
	case ws.Focused:
		return "focused"
	case ws.Visible:
		return "visible"
	default:
		return "-"
	}
}
