package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// runLogPattern matches the per-run files written by NewFromConfig.
const runLogPattern = "jellyname-*.log"

// RunLogPath returns the JSON log file used for one invocation.
func RunLogPath(dir, runID string, started time.Time) string {
	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	name := "jellyname-" + started.UTC().Format("20060102T150405Z")
	if short != "" {
		name += "-" + short
	}
	return filepath.Join(dir, name+".log")
}

// CleanupOldLogs removes run logs in dir older than retentionDays, keeping
// the file at current. A retentionDays value of 0 disables pruning.
func CleanupOldLogs(logger *slog.Logger, dir string, retentionDays int, current string) {
	if retentionDays <= 0 || dir == "" {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	matches, err := filepath.Glob(filepath.Join(dir, runLogPattern))
	if err != nil {
		return
	}
	for _, path := range matches {
		if path == current {
			continue
		}
		info, err := os.Lstat(path)
		if err != nil || !info.Mode().IsRegular() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			WarnWithContext(logger, "log retention remove failed; file remains", "log_retention_failed",
				String("path", path),
				Error(err),
				String(FieldErrorHint, "check file permissions and log_dir ownership"),
				String(FieldImpact, "old log file remains on disk"),
			)
			continue
		}
		if logger != nil {
			logger.Debug("log pruned", String("path", path), String(FieldEventType, "log_pruned"))
		}
	}
}
