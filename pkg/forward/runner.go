package forward

import (
	"io"
	"os"
	"os/exec"
)

// Stdio holds the streams handed to the child process.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OSStdio returns the current process's standard streams.
func OSStdio() Stdio {
	return Stdio{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Runner abstracts process execution for testability.
type Runner interface {
	LookPath(file string) (string, error)
	Run(path string, argv []string, stdio Stdio) error
}

// RealRunner implements Runner using actual OS processes.
type RealRunner struct{}

// LookPath searches for an executable in PATH.
func (r *RealRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run starts the binary at path and waits for it to exit.
// argv[0] is the program name seen by the child.
func (r *RealRunner) Run(path string, argv []string, stdio Stdio) error {
	// #nosec G204 -- forwarding caller-supplied arguments is the whole point.
	cmd := exec.Command(path, argv[1:]...)
	cmd.Args = argv
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr
	return cmd.Run()
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	LookPathFunc func(file string) (string, error)
	RunFunc      func(path string, argv []string, stdio Stdio) error
}

// LookPath calls the mock function.
func (m *MockRunner) LookPath(file string) (string, error) {
	return m.LookPathFunc(file)
}

// Run calls the mock function.
func (m *MockRunner) Run(path string, argv []string, stdio Stdio) error {
	return m.RunFunc(path, argv, stdio)
}
