package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/dyegen/internal/app"
	"github.com/specialistvlad/dyegen/internal/emitter"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dyegen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
dyegen - generates blockstate and model JSON for a palette of dyed blocks.

Usage:
  dyegen [options] [OUTPUT_DIR]

Arguments:
  OUTPUT_DIR
    Resource pack directory the documents are written into.

Options:
`)
		flagSet.PrintDefaults()
	}

	var configPaths []string
	outFlag := flagSet.String("out", "", "Output directory.")
	oFlag := flagSet.String("o", "", "Output directory (shorthand).")
	flagSet.Func("config", "Palette file, directory or glob (.hcl, .yaml). Repeatable.", func(s string) error {
		configPaths = append(configPaths, s)
		return nil
	})
	namespaceFlag := flagSet.String("namespace", "", "Override the namespace declared by the palette.")
	targetRootFlag := flagSet.String("target-root", emitter.DefaultTargetRoot, "Directory inside OUTPUT_DIR that receives the namespaces.")
	workersFlag := flagSet.Int("workers", 8, "Number of concurrent writers.")
	forceFlag := flagSet.Bool("force", false, "Rewrite files even when their content is unchanged.")
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
	if *outFlag != "" {
		path = *outFlag
	} else if *oFlag != "" {
		path = *oFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Output path determined.", "path", path)

	if path == "" {
		slog.Debug("No output path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args()[1:])}
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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		OutputDir:   path,
		ConfigPaths: configPaths,
		Namespace:   *namespaceFlag,
		TargetRoot:  *targetRootFlag,
		Force:       *forceFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WorkerCount: *workersFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
