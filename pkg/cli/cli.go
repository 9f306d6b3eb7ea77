package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Version may be overridden at build-time with -ldflags "-X github.com/jlrickert/verlaunch/pkg/cli.Version=..."
var Version = "dev"

// Run executes the command line in args against rt and returns the process
// exit code.
func Run(ctx context.Context, rt *toolkit.Runtime, args []string) (int, error) {
	return RunWithDeps(ctx, &Deps{Runtime: rt}, args)
}

// RunWithDeps is Run with injectable collaborators.
func RunWithDeps(ctx context.Context, deps *Deps, args []string) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetIn(deps.in())
	cmd.SetOut(deps.out())
	cmd.SetErr(deps.errOut())
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	err := cmd.ExecuteContext(ctx)
	if deps.shutdown != nil {
		_ = deps.shutdown()
	}
	if err != nil {
		fmt.Fprintln(deps.errOut(), "error:", renderUserError(err, deps))
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, err
	}
	return 0, nil
}
