package main

import (
	"github.com/spf13/cobra"

	"pkt.systems/wsnav/core"
	"pkt.systems/wsnav/internal/logx"
	"pkt.systems/wsnav/schema"
)

func newDoctorCmd(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the IPC connection and dry-run every action",
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
			logger := logx.Ctx(ctx)

			version, err := client.Version(ctx)
			if err != nil {
				return err
			}
			logger.Info("doctor window manager ok", "version", version.HumanReadable, "config", version.LoadedConfigFile)

			snap, err := client.Workspaces(ctx)
			if err != nil {
				return err
			}
			focused, _ := snap.Focused()
			logx.WithWorkspace(logger, focused).Info("doctor snapshot ok", "workspaces", snap.Len())

			for _, action := range schema.Actions {
				for _, skipEmpty := range []bool{false, true} {
					_, target, err := core.Plan(snap, action, skipEmpty)
					if err != nil {
						return err
					}
					logx.WithAction(logger, action).Info("doctor plan", "skip_empty", skipEmpty, "target", target)
				}
			}
			return nil
		},
	}
}
