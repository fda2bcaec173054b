package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tunegrab/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		// Missing dependencies exit 2 so scripts can tell "install
		// yt-dlp" apart from failed downloads.
		if services.Fatal(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
