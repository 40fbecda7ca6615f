package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jellyname/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// Writer receives log lines; stderr when nil.
	Writer io.Writer
}

// New constructs a slog logger using the provided options. Debug level also
// records the source location.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}
	addSource := level <= slog.LevelDebug

	var handler slog.Handler
	switch format := strings.ToLower(strings.TrimSpace(opts.Format)); format {
	case "json":
		handler = newJSONHandler(writer, levelVar, addSource)
	case "console", "":
		handler = newConsoleHandler(writer, levelVar, addSource)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
	return slog.New(handler), nil
}

// NewFromConfig creates a logger from the [logging] and [paths] sections.
// Console lines go to w (stderr when nil) so prompts on stdout stay readable.
// When paths.log_dir is set, every record is also written as JSON to a
// per-run file there and run logs older than logging.retention_days are
// pruned. The returned close func flushes that file; it is never nil.
func NewFromConfig(cfg *config.Config, w io.Writer, runID string) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if w == nil {
		w = os.Stderr
	}
	if cfg == nil {
		logger, err := New(Options{Level: "info", Format: "console", Writer: w})
		return logger, noop, err
	}

	logger, err := New(Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: w,
	})
	if err != nil {
		return nil, noop, err
	}

	dir := strings.TrimSpace(cfg.Paths.LogDir)
	if dir == "" {
		return logger, noop, nil
	}
	path := RunLogPath(dir, runID, time.Now())
	file, err := openRunLog(path)
	if err != nil {
		return nil, noop, err
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(cfg.Logging.Level))
	logger = TeeLogger(logger, newJSONHandler(file, levelVar, false))

	CleanupOldLogs(logger, dir, cfg.Logging.RetentionDays, path)
	return logger, func() error { return closeRunLog(file) }, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openRunLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}

func closeRunLog(file *os.File) error {
	syncErr := file.Sync()
	if err := file.Close(); err != nil {
		return fmt.Errorf("close log file %s: %w", file.Name(), err)
	}
	if syncErr != nil {
		return fmt.Errorf("sync log file %s: %w", file.Name(), syncErr)
	}
	return nil
}

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
				}
			case slog.LevelKey:
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return attr
		},
	})
}
