// ABOUTME: Root cobra command for htmltool
// ABOUTME: Registers the text subcommands and reads their input

package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the htmltool command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "htmltool",
		Short: "Truncate, strip and convert HTML fragments",
		Long: `htmltool applies the listing site's text helpers to an HTML fragment.

The fragment is taken from the arguments when given, otherwise from stdin.

Examples:
  htmltool truncate --max 20 '<p>Hello <b>World</b></p>'
  cat description.html | htmltool truncate --mode words --max 140
  htmltool plain < description.html
  htmltool url --catalog data/catalog.yaml C1234`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTruncateCommand())
	root.AddCommand(newStripCommand())
	root.AddCommand(newPlainCommand())
	root.AddCommand(newURLCommand())

	return root
}

// readInput joins args, or reads all of stdin when there are none
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
