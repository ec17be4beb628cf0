package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/slnkit/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("slnkit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
slnkit - A parser, validator, and formatter for solution manifest files.

Usage:
  slnkit [options] SLN_PATH

Arguments:
  SLN_PATH
    Path to a single .sln file or a directory containing .sln files.

Options:
`)
		flagSet.PrintDefaults()
	}

	checkFlag := flagSet.Bool("check", false, "Parse and validate only; no output is produced.")
	listFlag := flagSet.Bool("list", false, "Print one line per project: name, path, GUID, type.")
	writeFlag := flagSet.Bool("write", false, "Rewrite each solution file in place with its normalized form.")
	outputFlag := flagSet.String("o", "", "Write formatted output to this file instead of stdout.")
	configFlag := flagSet.String("config", "", "Path to an optional slnkit.hcl tool config file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Solution path determined.", "path", path)

	if path == "" {
		slog.Debug("No solution path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	mode, err := selectMode(*checkFlag, *listFlag, *writeFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.", "mode", mode)

	config, err := app.NewConfig(app.Config{
		Path:       path,
		ConfigPath: *configFlag,
		OutputPath: *outputFlag,
		Mode:       mode,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// selectMode maps the mutually exclusive mode flags onto an app.Mode.
func selectMode(check, list, write bool) (app.Mode, error) {
	set := 0
	mode := app.ModeFormat
	if check {
		set++
		mode = app.ModeCheck
	}
	if list {
		set++
		mode = app.ModeList
	}
	if write {
		set++
		mode = app.ModeWrite
	}
	if set > 1 {
		return "", fmt.Errorf("-check, -list, and -write are mutually exclusive")
	}
	return mode, nil
}
