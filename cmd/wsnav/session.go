package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pkt.systems/pslog"
	"pkt.systems/wsnav/internal/appconfig"
	"pkt.systems/wsnav/internal/logx"
	"pkt.systems/wsnav/internal/swayipc"
)

// globalFlags are shared by every command that talks to the window manager.
type globalFlags struct {
	configPath string
	socketPath string
	timeout    time.Duration
	verbose    bool
}

func (g *globalFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&g.configPath, "config", "c", "", "path to config file")
	flags.StringVarP(&g.socketPath, "sock", "s", "", "sway/i3 IPC socket path (default $SWAYSOCK, then $I3SOCK)")
	flags.DurationVar(&g.timeout, "timeout", 0, "IPC timeout (default from config, 2s)")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
}

// switchFlags mirror the switch behaviour toggles of the config file.
type switchFlags struct {
	move      bool
	noFocus   bool
	stdout    bool
	skipEmpty bool
}

func (s *switchFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.BoolVarP(&s.move, "move", "m", false, "move the focused container to the target workspace")
	flags.BoolVarP(&s.noFocus, "no-focus", "n", false, "do not focus the target workspace")
	flags.BoolVarP(&s.stdout, "stdout", "o", false, "print the target workspace number to stdout")
	flags.BoolVarP(&s.skipEmpty, "skip-empty", "e", false, "skip empty workspaces")
}

// applyFlagOverrides copies explicitly set flags over config values.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *appconfig.Config, globals globalFlags, sw *switchFlags) {
	if flags.Changed("sock") {
		cfg.SocketPath = globals.socketPath
	}
	if flags.Changed("timeout") && globals.timeout > 0 {
		cfg.IPC.TimeoutMS = int(globals.timeout / time.Millisecond)
	}
	if flags.Changed("verbose") {
		cfg.Logging.Verbose = globals.verbose
	}
	if sw == nil {
		return
	}
	if flags.Changed("move") {
		cfg.Move = sw.move
	}
	if flags.Changed("no-focus") {
		cfg.NoFocus = sw.noFocus
	}
	if flags.Changed("stdout") {
		cfg.Stdout = sw.stdout
	}
	if flags.Changed("skip-empty") {
		cfg.SkipEmpty = sw.skipEmpty
	}
}

type session struct {
	ctx context.Context
	cfg appconfig.Config
}

// openSession loads config, applies flag overrides and prepares the logger.
func openSession(cmd *cobra.Command, globals globalFlags, sw *switchFlags) (*session, error) {
	cfg, err := appconfig.Load(globals.configPath)
	if err != nil {
		return nil, err
	}
	applyFlagOverrides(cmd.Flags(), &cfg, globals, sw)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Logging.Verbose {
		ctx = pslog.ContextWithLogger(ctx, pslog.NewWithOptions(cmd.ErrOrStderr(), pslog.Options{
			Mode:     pslog.ModeConsole,
			MinLevel: pslog.DebugLevel,
		}))
	}
	return &session{ctx: ctx, cfg: cfg}, nil
}

// socketPath returns the configured socket or discovers one in XDG_RUNTIME_DIR.
func (s *session) socketPath() (string, error) {
	if s.cfg.SocketPath != "" {
		return s.cfg.SocketPath, nil
	}
	return swayipc.DiscoverSocket(os.Getenv("XDG_RUNTIME_DIR"), os.Getuid())
}

// dial connects to the window manager and returns a context whose logger
// carries the socket path.
func (s *session) dial(ctx context.Context) (context.Context, *swayipc.Client, error) {
	path, err := s.socketPath()
	if err != nil {
		return ctx, nil, err
	}
	ctx = logx.ContextWithSocketLogger(ctx, logx.Ctx(ctx).With("socket", path), path)
	client, err := swayipc.Dial(ctx, path, swayipc.WithTimeout(s.cfg.IPC.Timeout()))
	if err != nil {
		return ctx, nil, err
	}
	return ctx, client, nil
}
