package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/poset/config"
	"github.com/katalvlaran/poset/internal/script"
	"github.com/katalvlaran/poset/logging"
	"github.com/katalvlaran/poset/registry"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// NewRootCmd creates the posetctl command tree.
func NewRootCmd() *cobra.Command {
	var (
		trace  bool
		format string
		logger zerolog.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "posetctl",
		Short: "Run scripts against an in-memory poset registry",
		Long: `posetctl executes poset command scripts: one command per line, creating
posets, inserting elements and recording or dropping order relations.
Set POSET_TRACE=1 (or pass --trace) to log every operation to stderr.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if trace {
				cfg.Trace = true
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = format
			}
			logger, err = logging.New(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger.Debug().Str("command", cmd.Name()).Msg("command started")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&trace, "trace", "v", false, "log every poset operation to stderr")
	rootCmd.PersistentFlags().StringVar(&format, "log-format", config.FormatConsole, `trace format, "console" or "json"`)

	rootCmd.AddCommand(newRunCmd(func() zerolog.Logger { return logger }))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newRunCmd builds "run [file]". The logger is looked up when the command
// executes, after the persistent pre-run has configured it.
func newRunCmd(logger func() zerolog.Logger) *cobra.Command {
	var echo bool

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a script from file, or stdin when omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}

			l := logger()
			reg := registry.New(registry.WithLogger(logging.Component(l, "registry")))
			in := script.New(reg, cmd.OutOrStdout(),
				script.WithEcho(echo),
				script.WithLogger(logging.Component(l, "script")),
			)

			return in.Run(cmd.Context(), src)
		},
	}
	cmd.Flags().BoolVarP(&echo, "echo", "e", false, "print each command before its result")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "posetctl %s\n", Version)
			return err
		},
	}
}
