package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"
	"pkt.systems/wsnav/core"
	"pkt.systems/wsnav/internal/logx"
	"pkt.systems/wsnav/schema"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("wsnav command failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var globals globalFlags
	var sw switchFlags
	root := &cobra.Command{
		Use:   "wsnav <action>",
		Short: "Switch sway/i3 workspaces with optional output awareness",
		Long: "Switch to the next or previous workspace, optionally staying on the focused output\n" +
			"or hopping to the visible workspace of a neighbouring output.\n\n" +
			"Actions: " + strings.Join(schema.ActionNames(), ", "),
		Args:          cobra.ExactArgs(1),
		ValidArgs:     schema.ActionNames(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := schema.ParseAction(args[0])
			if err != nil {
				return fmt.Errorf("%w (expected one of %s)", err, strings.Join(schema.ActionNames(), ", "))
			}
			return runSwitch(cmd, globals, sw, action)
		},
	}
	globals.register(root)
	sw.register(root)

	root.AddCommand(newWorkspacesCmd(&globals))
	root.AddCommand(newDoctorCmd(&globals))
	root.AddCommand(newConfigCmd(&globals))
	root.AddCommand(newVersionCmd())

	return root
}

func runSwitch(cmd *cobra.Command, globals globalFlags, sw switchFlags, action schema.Action) error {
	sess, err := openSession(cmd, globals, &sw)
	if err != nil {
		return err
	}
	ctx := logx.ContextWithAction(sess.ctx, action)

	ctx, client, err := sess.dial(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	switcher, err := core.NewSwitcher(core.SwitcherDeps{
		Source: client,
		Sink:   client,
		Output: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	_, err = switcher.Switch(ctx, core.SwitchRequest{
		Action:    action,
		SkipEmpty: sess.cfg.SkipEmpty,
		Move:      sess.cfg.Move,
		NoFocus:   sess.cfg.NoFocus,
		Stdout:    sess.cfg.Stdout,
	})
	return err
}
