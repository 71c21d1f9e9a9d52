package config

import (
	"errors"
	"flag"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Default values for configuration
const (
	DefaultLogLevel = "info"
)

// Config holds the application configuration. Game rules are fixed and
// not part of it.
type Config struct {
	Terminal bool
	Mute     bool
	LogFile  string
	LogLevel string
	Debug    bool
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("pong", flag.ContinueOnError)

	terminal := fs.Bool("terminal", false, "play in the terminal instead of a window")
	mute := fs.Bool("mute", false, "disable sound effects")
	logFile := fs.String("log-file", "", "write logs to this file")
	logLevel := fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	debug := fs.Bool("debug", false, "human-readable development logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate log level
	if _, err := zapcore.ParseLevel(*logLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q", *logLevel)
	}

	// Validate: a log file flag with an empty value is a mistake
	if isSet(fs, "log-file") && *logFile == "" {
		return nil, errors.New("--log-file needs a path")
	}

	cfg := &Config{
		Terminal: *terminal,
		Mute:     *mute,
		LogFile:  *logFile,
		LogLevel: *logLevel,
		Debug:    *debug,
	}

	return cfg, nil
}

func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
