package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes a single child process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // working directory; empty means the current directory
}

// String renders the command line for status and error messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes commands to completion.
type Runner interface {
	// Run starts the command and waits for it to exit. A non-zero exit is
	// reported as *ExitError.
	Run(ctx context.Context, cmd Command) error
}

// ExitError reports a child process that ran but exited non-zero.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.Code)
}

// ExecRunner runs commands with os/exec, wired to the operator's terminal.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; defaults to the
	// process's own standard streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run resolves the binary on PATH, then executes it with the terminal
// inherited so interactive generators can prompt the operator.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return fmt.Errorf("%s is required but was not found on PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Command: c, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", c, err)
	}
	return nil
}

// Output runs the command and returns its trimmed stdout. It is used for
// version probes, where nothing is shown to the operator.
func Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{Command: Command{Name: name, Args: args}, Code: exitErr.ExitCode()}
		}
		return "", fmt.Errorf("running %s: %w", name, err)
	}
	return strings.TrimSpace(string(out)), nil
}
