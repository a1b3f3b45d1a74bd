// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"ytdlpcmd/internal/execer"
	"ytdlpcmd/internal/issue"

	"github.com/spf13/cobra"
)

var (
	runFlags   buildFlags
	runWorkDir string

	runCmd = &cobra.Command{
		Use:   "run [url]",
		Short: "Build and execute a yt-dlp command",
		Long: `Build a yt-dlp command from config defaults, flags and the target URL,
then execute it with output streamed to the terminal.

The yt-dlp exit code is propagated: 0 on success, 1 on error, 2 on user
error, 100 when yt-dlp must restart after an update, 101 when canceled
by a download limit such as --max-downloads.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) > 0 {
				url = args[0]
			}

			c, err := buildCommand(currentConfig(), &runFlags, url)
			if err != nil {
				return err
			}

			runner := execer.NewRunner()
			inv := c.Build()
			execCtx := &execer.ExecutionContext{
				Context:    cmd.Context(),
				Invocation: inv,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
				Stdin:      os.Stdin,
				WorkDir:    runWorkDir,
				Verbose:    verbose,
			}

			if err := runner.Validate(execCtx); err != nil {
				return issue.NewErrorContext().
					WithOperation("locate yt-dlp executable").
					WithResource(inv.BaseCommand).
					WithSuggestion("Install yt-dlp or add it to PATH").
					WithSuggestion("Set the executable path in the config file or via 'ytdlpcmd config show'").
					Wrap(err).
					BuildError()
			}

			if verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), VerboseStyle.Render("Executing: ")+VerboseHighlightStyle.Render(inv.CompleteCommand))
			}

			return resultError(runner.Exec(execCtx))
		},
	}
)

// resultError maps an execution result to the command's return error,
// preserving yt-dlp's exit code. User errors (exit code 2) get actionable
// context since they usually mean a bad URL or option value.
func resultError(result *execer.Result) error {
	if result.ExitCode.IsSuccess() {
		return nil
	}

	err := result.Error
	if result.ExitCode.IsUserError() {
		err = issue.NewErrorContext().
			WithOperation("run yt-dlp").
			WithSuggestion("Check the URL and the option values passed through").
			WithSuggestion("Re-run with --verbose to see the assembled command").
			Wrap(fmt.Errorf("yt-dlp reported a user error (exit code %s)", result.ExitCode)).
			BuildError()
	}
	return &ExitError{Code: result.ExitCode, Err: err}
}

func init() {
	registerBuildFlags(runCmd, &runFlags)
	runCmd.Flags().StringVar(&runWorkDir, "workdir", "", "working directory for the yt-dlp process")
}
