package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/mapvendor/internal/app"
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

// defaultGroups is the selection used when no group names and no --all are
// given: the core map assets plus the most commonly wanted plugin.
var defaultGroups = []string{"leaflet", "heatmap"}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("mapvendor", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
mapvendor - Download map-rendering assets for offline use.

Usage:
  mapvendor [options] [GROUP ...]

Arguments:
  GROUP
    Names of asset groups to vendor (case-insensitive), e.g. leaflet,
    heatmap, markercluster, draw. Defaults to "leaflet heatmap".

Options:
`)
		flagSet.PrintDefaults()
	}

	forceFlag := flagSet.Bool("force", false, "Overwrite files that are already cached.")
	fFlag := flagSet.Bool("f", false, "Overwrite files that are already cached (shorthand).")
	allFlag := flagSet.Bool("all", false, "Vendor every known asset group.")
	checkFlag := flagSet.Bool("check", false, "After vendoring, report which assets resolve locally.")
	cacheDirFlag := flagSet.String("cache-dir", app.DefaultCacheDir(), "Directory the assets are cached in.")
	manifestsFlag := flagSet.String("manifests", "", "Path to a directory or file with extra group manifests (.hcl).")
	workersFlag := flagSet.Int("workers", 4, "Number of concurrent download workers.")
	timeoutFlag := flagSet.Duration("timeout", 30*time.Second, "Per-request download timeout.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

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

	groups := flagSet.Args()
	if len(groups) == 0 && !*allFlag {
		groups = defaultGroups
		slog.Debug("No groups requested, using defaults.", "groups", groups)
	}

	config, err := app.NewConfig(app.Config{
		Groups:       groups,
		All:          *allFlag,
		Force:        *forceFlag || *fFlag,
		Check:        *checkFlag,
		CacheDir:     *cacheDirFlag,
		ManifestPath: *manifestsFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Workers:      *workersFlag,
		Timeout:      *timeoutFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
