package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"torus-life/internal/app"
	"torus-life/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments for the named program. Values come
// from the defaults, then the -config file if given, then explicitly set
// flags. It reports whether the program should exit cleanly (help was
// requested), or an *ExitError.
func Parse(name string, args []string, output io.Writer, env map[string]string, extra func(*flag.FlagSet)) (*app.Config, bool, error) {
	probe := app.NewConfig()
	fs := newFlagSet(name, output, probe, extra)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if probe.File == "" {
		return validated(probe)
	}

	settings, err := config.Load(probe.File, config.Default(), env)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg := &app.Config{Settings: settings}
	// Parse again over the file's values so only explicit flags override them.
	fs = newFlagSet(name, io.Discard, cfg, extra)
	if err := fs.Parse(args); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return validated(cfg)
}

func newFlagSet(name string, output io.Writer, cfg *app.Config, extra func(*flag.FlagSet)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage of %s:\n", name)
		fs.PrintDefaults()
	}
	cfg.Bind(fs)
	if extra != nil {
		extra(fs)
	}
	return fs
}

func validated(cfg *app.Config) (*app.Config, bool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid configuration: " + err.Error()}
	}
	return cfg, false, nil
}
