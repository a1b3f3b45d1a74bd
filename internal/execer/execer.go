// SPDX-License-Identifier: MPL-2.0

// Package execer spawns the yt-dlp process described by a materialized
// invocation. It is the process-execution collaborator of pkg/ytdlp: the
// builder produces an argv-style record, this package turns it into a running
// process and maps its termination into a Result.
package execer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"

	"ytdlpcmd/pkg/ytdlp"
)

type (
	// ExecutionContext contains everything needed to run one invocation.
	ExecutionContext struct {
		// Context is the Go context for cancellation.
		Context context.Context
		// Invocation is the materialized command to run.
		Invocation ytdlp.Invocation
		// Stdout is where to write standard output.
		Stdout io.Writer
		// Stderr is where to write standard error.
		Stderr io.Writer
		// Stdin is where to read standard input.
		Stdin io.Reader
		// WorkDir overrides the working directory.
		WorkDir string
		// ExtraEnv contains additional environment variables as KEY=VALUE.
		ExtraEnv []string
		// Verbose enables diagnostic logging of the spawned command.
		Verbose bool
	}

	// Runner executes invocations on the host system.
	Runner struct {
		logger *log.Logger
	}
)

// NewRunner creates a Runner logging to stderr.
func NewRunner() *Runner {
	return &Runner{
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "ytdlpcmd",
		}),
	}
}

// Validate checks whether the invocation can be executed: the executable must
// resolve to something runnable before a process is spawned.
func (r *Runner) Validate(ctx *ExecutionContext) error {
	if ctx.Invocation.BaseCommand == "" {
		return fmt.Errorf("invocation has no executable")
	}
	if _, err := exec.LookPath(ctx.Invocation.BaseCommand); err != nil {
		return fmt.Errorf("executable not found: %w", err)
	}
	return nil
}

// Exec runs the invocation, streaming output to the context's writers.
// Args are passed to the process as an argv list, never through a shell, so
// the builder's unquoted tokens reach yt-dlp verbatim.
func (r *Runner) Exec(ctx *ExecutionContext) *Result {
	cmd := r.prepare(ctx)
	cmd.Stdout = ctx.Stdout
	cmd.Stderr = ctx.Stderr
	cmd.Stdin = ctx.Stdin

	if ctx.Verbose {
		r.logger.Info("running", "command", ctx.Invocation.CompleteCommand)
	}

	return r.run(cmd, nil)
}

// ExecCapture runs the invocation and captures stdout/stderr into the Result.
func (r *Runner) ExecCapture(ctx *ExecutionContext) *Result {
	cmd := r.prepare(ctx)
	captured := &capturedOutput{}
	cmd.Stdout = &captured.stdout
	cmd.Stderr = &captured.stderr
	cmd.Stdin = ctx.Stdin

	if ctx.Verbose {
		r.logger.Info("running (captured)", "command", ctx.Invocation.CompleteCommand)
	}

	return r.run(cmd, captured)
}

func (r *Runner) prepare(ctx *ExecutionContext) *exec.Cmd {
	goCtx := ctx.Context
	if goCtx == nil {
		goCtx = context.Background()
	}

	cmd := exec.CommandContext(goCtx, ctx.Invocation.BaseCommand, ctx.Invocation.Args...)
	if ctx.WorkDir != "" {
		cmd.Dir = ctx.WorkDir
	}
	cmd.Env = append(os.Environ(), ctx.ExtraEnv...)
	return cmd
}

func (r *Runner) run(cmd *exec.Cmd, captured *capturedOutput) *Result {
	result := resultFor(cmd.Run())
	if captured != nil {
		result.Output = captured.stdout.String()
		result.ErrOutput = captured.stderr.String()
	}
	return result
}

// resultFor maps a cmd.Run outcome into a Result.
func resultFor(err error) *Result {
	if err == nil {
		return NewSuccessResult()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The process ran and exited non-zero; that is yt-dlp's verdict,
		// not an infrastructure failure.
		return NewExitCodeResult(ExitCode(exitErr.ExitCode()))
	}

	return NewErrorResult(ExitError, fmt.Errorf("failed to execute command: %w", err))
}
