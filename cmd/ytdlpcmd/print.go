// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"ytdlpcmd/pkg/ytdlp"

	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/syntax"
)

var (
	printFlags  buildFlags
	printQuoted bool
	printJSON   bool

	printCmd = &cobra.Command{
		Use:   "print [url]",
		Short: "Print the yt-dlp command that would run",
		Long: `Print the yt-dlp command assembled from config defaults, flags and
the target URL, without executing anything.

By default tokens are joined with single spaces, which is ambiguous when
values contain spaces. Use --quoted for a shell-safe rendering or --json
for a structured one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := ""
			if len(args) > 0 {
				url = args[0]
			}

			c, err := buildCommand(currentConfig(), &printFlags, url)
			if err != nil {
				return err
			}

			out, err := renderInvocation(c.Build(), printQuoted, printJSON)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
)

func init() {
	registerBuildFlags(printCmd, &printFlags)
	printCmd.Flags().BoolVar(&printQuoted, "quoted", false, "quote tokens for POSIX shells")
	printCmd.Flags().BoolVar(&printJSON, "json", false, "print the invocation as JSON")
	printCmd.MarkFlagsMutuallyExclusive("quoted", "json")
}

// renderInvocation formats an invocation as plain text, shell-quoted text,
// or JSON.
func renderInvocation(inv ytdlp.Invocation, quoted, asJSON bool) (string, error) {
	switch {
	case asJSON:
		data, err := json.MarshalIndent(inv, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode invocation: %w", err)
		}
		return string(data), nil

	case quoted:
		tokens := make([]string, 0, len(inv.Args)+1)
		for _, tok := range append([]string{inv.BaseCommand}, inv.Args...) {
			q, err := syntax.Quote(tok, syntax.LangPOSIX)
			if err != nil {
				return "", fmt.Errorf("failed to quote %q: %w", tok, err)
			}
			tokens = append(tokens, q)
		}
		return strings.Join(tokens, " "), nil

	default:
		return inv.CompleteCommand, nil
	}
}
