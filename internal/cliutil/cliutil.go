// Package cliutil holds the plumbing shared by the stackci binaries: process
// entry, exit codes, common flags and environment/config binding.
package cliutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/example/stackci/internal/logging"
	"github.com/example/stackci/internal/version"
	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrUsage marks flag and argument errors; the process exits with status 2.
var ErrUsage = errors.New("usage")

// Main executes root with a signal-aware context and exits with the mapped code.
func Main(root *cobra.Command) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	cancel()
	os.Exit(ExitCode(root.ErrOrStderr(), err))
}

// ExitCode reports err on w and maps it to a process exit status.
func ExitCode(w io.Writer, err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if errors.Is(err, ErrUsage) {
		return 2
	}
	fmt.Fprintf(w, "Error: %s\n", err)
	return 1
}

// Common holds the flags every stackci command accepts.
type Common struct {
	LogLevel string
	NoColor  bool
}

// NewRoot builds a single-command root with the shared conventions applied:
// silenced usage, a version flag, the common persistent flags and flag errors
// mapped to ErrUsage. run receives a logger configured from --log-level.
func NewRoot(use, short string, common *Common, run func(cmd *cobra.Command, log logr.Logger) error) *cobra.Command {
	if common.LogLevel == "" {
		common.LogLevel = "info"
	}
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: unexpected arguments %q (%s takes flags only)\n", args, cmd.Name())
				return ErrUsage
			}
			return nil
		},
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if common.NoColor {
				color.NoColor = true
			}
			log, err := logging.New(common.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return ErrUsage
			}
			return run(cmd, log)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&common.LogLevel, "log-level", common.LogLevel, "Log level for diagnostics on stderr (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&common.NoColor, "no-color", common.NoColor, "Disable colored output")
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", err, cmd.UsageString())
		}
		return ErrUsage
	})
	return cmd
}

// Finalize wires flag values from the environment and config file and checks
// required flags before the command runs. Call it once all flags are
// registered. A missing required flag is a usage error.
func Finalize(cmd *cobra.Command, required ...string) *cobra.Command {
	for _, name := range required {
		if err := cmd.MarkFlagRequired(name); err != nil {
			cobra.CheckErr(err)
		}
	}
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if err := ApplyViper(cmd, os.Getenv(ConfigEnv)); err != nil {
			return err
		}
		var missing []string
		for _, name := range required {
			if f := cmd.Flags().Lookup(name); f != nil && !f.Changed {
				missing = append(missing, "--"+name)
			}
		}
		if len(missing) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: required flag(s) %s not set\n\n%s", strings.Join(missing, ", "), cmd.UsageString())
			return ErrUsage
		}
		return nil
	}
	return cmd
}
