// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"ytdlpcmd/internal/config"
	"ytdlpcmd/pkg/ytdlp"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	optionsPlain bool

	optionsCmd = &cobra.Command{
		Use:   "options",
		Short: "Show the supported yt-dlp options",
		Long: `Show the yt-dlp options ytdlpcmd can assemble, with their flag
spelling, how many values each takes, and whether repeating one is
rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			md := optionsMarkdown(ytdlp.Options())

			if optionsPlain {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}

			rendered, err := renderMarkdown(md, currentConfig().UI.ColorScheme)
			if err != nil {
				// Fall back to raw markdown when the terminal renderer fails.
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
)

func init() {
	optionsCmd.Flags().BoolVar(&optionsPlain, "plain", false, "print raw markdown without terminal styling")
}

// optionsMarkdown builds a markdown reference table for the option catalog.
func optionsMarkdown(specs []ytdlp.OptionSpec) string {
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })

	var sb strings.Builder
	sb.WriteString("# Supported Options\n\n")
	sb.WriteString("| Option | Flag | Values | Repeatable |\n")
	sb.WriteString("|--------|------|--------|------------|\n")

	for _, spec := range specs {
		flag := spec.Flag
		if flag == "" {
			flag = "(positional)"
		}
		repeatable := "yes"
		if spec.SingleUse {
			repeatable = "no"
		}
		fmt.Fprintf(&sb, "| %s | `%s` | %d | %s |\n", spec.ID, flag, spec.Arity, repeatable)
	}

	return sb.String()
}

// renderMarkdown renders markdown for the terminal, honoring the configured
// color scheme.
func renderMarkdown(md string, scheme config.ColorScheme) (string, error) {
	var styleOpt glamour.TermRendererOption
	switch scheme {
	case config.ColorSchemeDark:
		styleOpt = glamour.WithStandardStyle("dark")
	case config.ColorSchemeLight:
		styleOpt = glamour.WithStandardStyle("light")
	default:
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(0))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return renderer.Render(md)
}
