// SPDX-License-Identifier: MIT

package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/deliveryroute/route"
)

// Exit codes.
const (
	ExitUsage   = 2
	ExitNoRoute = 3
	ExitFailure = 1
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the parsed command line.
type Options struct {
	GridFile  string
	URL       string
	From, To  string
	Strategy  route.Strategy
	Symmetric bool
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the parsed Options, a
// boolean indicating the program should exit cleanly (help requested), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("routefind", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
routefind - cheapest route between two grid positions.

Usage:
  routefind [options] -from A1 -to G4

Without -grid or -url an 8x8 grid with unit weights between orthogonal
neighbours is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	gridFlag := flagSet.String("grid", "", "Path to a JSON adjacency file.")
	urlFlag := flagSet.String("url", "", "URL serving a JSON adjacency.")
	fromFlag := flagSet.String("from", "", "Start position, e.g. A1.")
	toFlag := flagSet.String("to", "", "Destination position, e.g. G4.")
	strategyFlag := flagSet.String("strategy", "heap", "Working-set strategy: 'heap' or 'scan'.")
	symmetricFlag := flagSet.Bool("symmetric", false, "Mirror every connection before searching.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	if *gridFlag != "" && *urlFlag != "" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "-grid and -url are mutually exclusive"}
	}
	if *fromFlag == "" || *toFlag == "" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "-from and -to are required"}
	}

	strategy, err := route.ParseStrategy(*strategyFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Options{
		GridFile:  *gridFlag,
		URL:       *urlFlag,
		From:      *fromFlag,
		To:        *toFlag,
		Strategy:  strategy,
		Symmetric: *symmetricFlag,
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}, false, nil
}
