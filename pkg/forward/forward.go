// Package forward runs an external documentation tool on behalf of a build
// step, passing arguments through untouched.
package forward

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultBinary is the executable looked up when none is configured.
const DefaultBinary = "doxygen"

// Exit statuses returned by Run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var (
	// ErrUsage is returned when no arguments were supplied.
	ErrUsage = errors.New("missing DOXYFILEPATH argument")
	// ErrNotFound is returned when the binary cannot be located or started.
	ErrNotFound = errors.New("executable not found")
)

// ExitError reports a child that ran and exited with a non-zero status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exited with status %d", e.Code)
}

// ExitCode returns the child's exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// exitCoder is satisfied by *exec.ExitError and *ExitError.
type exitCoder interface {
	error
	ExitCode() int
}

// Forwarder invokes Binary with the caller's arguments.
type Forwarder struct {
	Program       string // name printed in the usage line
	Binary        string
	PropagateExit bool
	Runner        Runner
	Stdio         Stdio
	Log           zerolog.Logger
}

// New returns a Forwarder that runs doxygen as a real child process with the
// current process's standard streams.
func New(program string) *Forwarder {
	return &Forwarder{
		Program: program,
		Binary:  DefaultBinary,
		Runner:  &RealRunner{},
		Stdio:   OSStdio(),
		Log:     zerolog.Nop(),
	}
}

// Run forwards args and maps the outcome to a process exit status.
//
// A missing binary is not an error. The child's own exit status is ignored
// unless PropagateExit is set.
func (f *Forwarder) Run(args []string) int {
	err := f.Forward(args)
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) {
		return ExitFailure
	}
	if errors.Is(err, ErrNotFound) {
		return ExitSuccess
	}

	var ec exitCoder
	if errors.As(err, &ec) {
		if !f.PropagateExit {
			return ExitSuccess
		}
		// -1 means the child was terminated by a signal.
		if code := ec.ExitCode(); code > 0 {
			return code
		}
		return ExitFailure
	}

	return ExitFailure
}

// Forward validates args and runs the binary, blocking until it exits.
func (f *Forwarder) Forward(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(f.Stdio.Stderr, "usage: %s DOXYFILEPATH\n", f.Program)
		return ErrUsage
	}

	binary := f.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	path, err := f.Runner.LookPath(binary)
	if err != nil {
		f.Log.Debug().Err(err).Str("binary", binary).Msg("binary not found, skipping")
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	argv := make([]string, 0, len(args)+1)
	argv = append(argv, binary)
	argv = append(argv, args...)

	f.Log.Debug().Str("path", path).Strs("args", args).Msg("running")
	err = f.Runner.Run(path, argv, f.Stdio)
	if err == nil {
		return nil
	}

	var ec exitCoder
	if errors.As(err, &ec) {
		f.Log.Debug().Int("code", ec.ExitCode()).Msg("child exited with non-zero status")
		return &ExitError{Code: ec.ExitCode()}
	}

	f.Log.Debug().Err(err).Str("path", path).Msg("failed to start, skipping")
	return fmt.Errorf("%w: %w", ErrNotFound, err)
}
