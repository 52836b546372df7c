package sensor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"desktopmonitor/entity"
)

// ErrNoOutput is returned when a command succeeded but printed nothing.
var ErrNoOutput = errors.New("no output")

// Executor runs an external command and returns everything it wrote to stdout.
type Executor interface {
	Execute(ctx context.Context, cmd entity.Command) (string, error)
}

// CommandError is returned for every command that could not be started,
// exited with a non-zero status or produced no output.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	reason := strings.TrimSpace(e.Stderr)
	if reason == "" && e.Err != nil {
		reason = e.Err.Error()
	}
	return fmt.Sprintf("%s did not run successfully: %s", e.Command, reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status of the failed command or -1 if it never ran.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type ShellExecutor struct{}

func NewShellExecutor() *ShellExecutor {
	return &ShellExecutor{}
}

func (s ShellExecutor) Execute(ctx context.Context, command entity.Command) (string, error) {
	if command.IsZero() {
		return "", &CommandError{Err: errors.New("empty command")}
	}
	var stdout, stderr bytes.Buffer
	//nolint:gosec
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", &CommandError{Command: command.String(), Stderr: stderr.String(), Err: err}
	}
	if strings.TrimSpace(stdout.String()) == "" {
		return "", &CommandError{Command: command.String(), Stderr: stderr.String(), Err: ErrNoOutput}
	}
	return stdout.String(), nil
}
