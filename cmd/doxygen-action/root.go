package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/doxygen-action/pkg/forward"
)

// exitError carries a non-zero exit status out of cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd(fwd *forward.Forwarder) *cobra.Command {
	return &cobra.Command{
		Use:   "doxygen-action DOXYFILEPATH [args...]",
		Short: "Run doxygen as a build step, skipping it when doxygen is not installed",
		Long: "doxygen-action forwards its arguments to doxygen unchanged. " +
			"A missing doxygen is not an error.",
		// Every flag belongs to doxygen.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			fwd.Stdio = forward.Stdio{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}
			if code := fwd.Run(args); code != forward.ExitSuccess {
				return &exitError{code: code}
			}
			return nil
		},
	}
}
