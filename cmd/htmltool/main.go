// ABOUTME: Entry point for htmltool, a CLI over the HTML text helpers
// ABOUTME: Truncates, strips and converts HTML read from arguments or stdin

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"realtorist-web/cmd/htmltool/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cmd.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
