package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init installs the process-wide slog handler and returns the logger, tagged
// with the service name. LOG_FORMAT selects "json" (default) or "text";
// anything else falls back to JSON with a warning.
func Init(service, format string) *slog.Logger {
	format = strings.ToLower(strings.TrimSpace(format))

	var handler slog.Handler
	var unknown bool
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, nil)
	case "", "json":
		handler = slog.NewJSONHandler(os.Stdout, nil)
	default:
		unknown = true
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}

	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)

	if unknown {
		logger.Warn("unknown log format, defaulting to json", "format", format)
	}
	return logger
}
