// ABOUTME: Text subcommands for htmltool
// ABOUTME: Wraps HTML truncation, tag stripping and plain-text conversion

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"realtorist-web/api/dto/requests"
	"realtorist-web/pkg/utils/html"
)

func newTruncateCommand() *cobra.Command {
	var (
		maxChars  int
		trailing  string
		mode      string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "truncate [html]",
		Short: "Shorten HTML or text to a visible character budget",
		Long: `Truncate shortens its input.

Modes:
  html       keep tags balanced and cut at a word boundary (default)
  text       hard cut of plain text
  words      cut plain text at a word boundary
  delimiter  cut HTML at --delimiter and close open tags`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if mode != requests.ModeDelimiter && maxChars < 1 {
				return fmt.Errorf("--max must be at least 1")
			}

			var out string
			switch mode {
			case requests.ModeHTML:
				out = html.TruncateHTMLWithTrailing(input, maxChars, trailing)
			case requests.ModeText:
				out = html.Truncate(input, maxChars, trailing)
			case requests.ModeWords:
				out = html.TruncateWords(input, maxChars, trailing)
			case requests.ModeDelimiter:
				out = html.TruncateHTMLByDelimiter(input, delimiter)
			default:
				return fmt.Errorf("unknown mode %q", mode)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVarP(&maxChars, "max", "n", 0, "visible characters to keep")
	cmd.Flags().StringVarP(&trailing, "trailing", "t", html.DefaultTrailingText, "marker appended when text is cut")
	cmd.Flags().StringVarP(&mode, "mode", "m", requests.ModeHTML, "html, text, words or delimiter")
	cmd.Flags().StringVar(&delimiter, "delimiter", requests.DefaultDelimiter, "cut marker for delimiter mode")

	return cmd
}

func newStripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [html]",
		Short: "Remove every HTML tag, leaving entities untouched",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html.StripHTML(input))
			return err
		},
	}
}

func newPlainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plain [html]",
		Short: "Convert HTML to plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html.HTMLToPlainText(input))
			return err
		},
	}
}
