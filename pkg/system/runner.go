package system

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// pipeGrace bounds how long Run waits for output pipes after the command has
// exited. xsel and xclip fork a selection owner that inherits them.
const pipeGrace = 250 * time.Millisecond

// Result is what a finished command left behind
type Result struct {
	Stdout     string
	ExitStatus int
}

// ExecRunner runs external commands synchronously with fully buffered I/O.
type ExecRunner struct{}

// Run executes argv and waits for it to exit. When stdin is non-nil its
// contents are written to the child's standard input.
//
// A command that starts but exits non-zero is not an error: the status is
// reported in Result.ExitStatus. An error is returned only when the command
// could not be run at all.
func (ExecRunner) Run(argv []string, stdin *string) (Result, error) {
	if len(argv) == 0 {
		return Result{}, fmt.Errorf("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if stdin != nil {
		cmd.Stdin = strings.NewReader(*stdin)
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.WaitDelay = pipeGrace

	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		err = nil
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{Stdout: stdout.String(), ExitStatus: exitErr.ExitCode()}, nil
		}
		return Result{}, fmt.Errorf("failed to run %s: %w", argv[0], err)
	}

	return Result{Stdout: stdout.String()}, nil
}

// CommandLine renders argv the way a user would type it.
func CommandLine(argv []string) string {
	return strings.Join(argv, " ")
}
