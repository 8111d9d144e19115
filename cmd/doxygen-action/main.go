package main

import (
	"errors"
	"os"

	"github.com/vertti/doxygen-action/pkg/config"
	"github.com/vertti/doxygen-action/pkg/forward"
	"github.com/vertti/doxygen-action/pkg/output"
)

func main() {
	cfg := config.Load()

	fwd := forward.New(os.Args[0])
	fwd.Binary = cfg.Binary
	fwd.PropagateExit = cfg.PropagateExit
	fwd.Log = output.NewLogger(os.Stderr, cfg.Debug)

	if err := newRootCmd(fwd).Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error from the root command to a process exit status.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return forward.ExitFailure
}
