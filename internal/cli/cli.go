package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/histgen/internal/app"
	"github.com/specialistvlad/histgen/internal/apperr"
)

// positionalCount is the number of required positional arguments.
const positionalCount = 9

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `
histgen - render a column of numbers as a histogram PNG.

Usage:
  histgen [options] <data_file_path> <output_image_path> <bin_count> <log_scale:true|false>
          <constrain_x_min:true|false> <x_min:float> <constrain_x_max:true|false>
          <x_max:float> <grid_lines:true|false>

Arguments:
  data_file_path      Text file with one number per line; blank lines are ignored.
  output_image_path   Where to write the PNG.
  bin_count           Number of equal-width bins (positive integer).
  log_scale           Logarithmic frequency axis.
  constrain_x_min     Drop values below x_min (x_min is ignored otherwise).
  constrain_x_max     Drop values above x_max (x_max is ignored otherwise).
  grid_lines          Dashed grid lines on both axes.

Options:
`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an error.
// Missing positional arguments print usage and yield an ExitError with code 1.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("histgen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	styleFlag := flagSet.String("style", "", "Optional .hcl, .yaml or .yml file overriding the default theme.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	pos := flagSet.Args()
	if len(pos) < positionalCount {
		slog.Debug("Not enough positional arguments, printing usage.", "got", len(pos))
		flagSet.Usage()
		return nil, false, &ExitError{
			Code:    1,
			Message: fmt.Sprintf("expected %d arguments, got %d", positionalCount, len(pos)),
		}
	}
	if len(pos) > positionalCount {
		slog.Warn("Ignoring extra arguments.", "extra", pos[positionalCount:])
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

	opts, err := parseRenderOptions(pos)
	if err != nil {
		return nil, false, err
	}
	slog.Debug("Arguments parsed successfully.")

	config, err := app.NewConfig(app.Config{
		DataPath:   pos[0],
		OutputPath: pos[1],
		StylePath:  *styleFlag,
		Render:     opts,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, err
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseRenderOptions converts positional arguments 2..8 into typed options.
// x_min and x_max are only parsed when their constraint flag is set.
func parseRenderOptions(pos []string) (app.RenderOptions, error) {
	var opts app.RenderOptions

	bins, err := strconv.Atoi(strings.TrimSpace(pos[2]))
	if err != nil {
		return opts, apperr.Parse("bin_count", fmt.Errorf("%q is not an integer", pos[2]))
	}
	opts.BinCount = bins

	if opts.LogScale, err = parseBool("log_scale", pos[3]); err != nil {
		return opts, err
	}

	constrainMin, err := parseBool("constrain_x_min", pos[4])
	if err != nil {
		return opts, err
	}
	if constrainMin {
		if opts.XMin, err = parseFloat("x_min", pos[5]); err != nil {
			return opts, err
		}
	}

	constrainMax, err := parseBool("constrain_x_max", pos[6])
	if err != nil {
		return opts, err
	}
	if constrainMax {
		if opts.XMax, err = parseFloat("x_max", pos[7]); err != nil {
			return opts, err
		}
	}

	if opts.ShowGrid, err = parseBool("grid_lines", pos[8]); err != nil {
		return opts, err
	}
	return opts, nil
}

func parseBool(name, s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, apperr.Parse(name, fmt.Errorf("%q is not 'true' or 'false'", s))
}

func parseFloat(name, s string) (*float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, apperr.Parse(name, fmt.Errorf("%q is not a number", s))
	}
	return &v, nil
}
