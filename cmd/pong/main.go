package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --terminal          Play in the terminal instead of a window")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound effects")
	fmt.Fprintln(os.Stderr, "  --log-file <path>   Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --log-level <lvl>   debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "  --debug             Human-readable logs")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W / S               Left paddle")
	fmt.Fprintln(os.Stderr, "  Up / Down           Right paddle")
	fmt.Fprintln(os.Stderr, "  Close the window (or q / Esc in the terminal) to quit")
}
