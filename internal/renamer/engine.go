package renamer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"jellyname/internal/episodetag"
	"jellyname/internal/logging"
)

// Options is the resolved configuration for one traversal.
type Options struct {
	Pattern     string
	Directory   string
	Recursive   bool
	AutoApprove bool
	// DryRun plans renames without asking for approval or touching files.
	DryRun bool
}

// Engine renames episode files according to Options.
type Engine struct {
	logger     *slog.Logger
	approver   Approver
	extensions ExtensionSet
	rename     func(source, destination string) error
}

// NewEngine builds an engine. A nil approver declines every rename that is
// not auto-approved; empty extensions select DefaultVideoExtensions.
func NewEngine(logger *slog.Logger, approver Approver, extensions []string) *Engine {
	if approver == nil {
		approver = DeclineAll
	}
	return &Engine{
		logger:     logging.NewComponentLogger(logger, "renamer"),
		approver:   approver,
		extensions: NewExtensionSet(extensions),
		rename:     renameNoReplace,
	}
}

// Process walks opts.Directory and applies the rename policy to every entry.
// Only an invalid pattern, an unavailable root directory, an approver error or
// context cancellation produce an error; the Summary is valid in every case.
func (e *Engine) Process(ctx context.Context, opts Options) (Summary, error) {
	var summary Summary
	if err := ValidatePattern(opts.Pattern); err != nil {
		return summary, err
	}
	logger := logging.WithContext(ctx, e.logger)
	logger.Debug("traversal started",
		logging.String("directory", opts.Directory),
		logging.Bool("recursive", opts.Recursive),
		logging.Bool("auto_approve", opts.AutoApprove),
		logging.Bool("dry_run", opts.DryRun),
	)
	err := e.processDirectory(ctx, logger, opts, opts.Directory, &summary)
	logger.Debug("traversal finished",
		logging.Int("matched", summary.Matched),
		logging.Int("renamed", summary.Renamed),
		logging.Int("failed", summary.Failed),
	)
	return summary, err
}

func (e *Engine) processDirectory(ctx context.Context, logger *slog.Logger, opts Options, dir string, summary *Summary) error {
	entries, err := listDirectory(dir)
	if err != nil {
		return err
	}
	summary.Directories++

	for _, name := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if name == "." || name == ".." {
			continue
		}

		entry, err := e.inspect(dir, name)
		if err != nil {
			summary.Skipped++
			logging.WarnWithContext(logger, "skipping entry",
				entryEventType(err),
				logging.String("path", dir),
				logging.String("entry", name),
				logging.Error(err),
				logging.String(logging.FieldImpact, "entry was not evaluated"),
			)
			continue
		}

		switch {
		case entry.IsRegular:
			summary.Scanned++
			if err := e.processFile(ctx, logger, opts, dir, entry, summary); err != nil {
				return err
			}
		case entry.IsDir && opts.Recursive:
			err := e.processDirectory(ctx, logger, opts, entry.Path, summary)
			if err == nil {
				continue
			}
			if ctx.Err() != nil || !isDirectoryError(err) {
				return err
			}
			summary.Skipped++
			logging.WarnWithContext(logger, "skipping subdirectory",
				"subdirectory_unavailable",
				logging.String("path", entry.Path),
				logging.Error(err),
				logging.String(logging.FieldImpact, "files below this directory were not renamed"),
			)
		}
	}
	return nil
}

// listDirectory reads every entry name up front so renames performed while
// processing cannot show up again in the same listing. Names keep the order
// the filesystem returned them in.
func listDirectory(dir string) ([]string, error) {
	handle, err := os.Open(dir)
	if err != nil {
		return nil, wrap(ErrDirectoryUnavailable, "open", dir, err)
	}
	defer handle.Close()

	info, err := handle.Stat()
	if err != nil {
		return nil, wrap(ErrDirectoryUnavailable, "stat", dir, err)
	}
	if !info.IsDir() {
		return nil, wrap(ErrDirectoryUnavailable, "open", dir, fmt.Errorf("not a directory"))
	}

	names, err := handle.Readdirnames(-1)
	if err != nil {
		return nil, wrap(ErrDirectoryUnavailable, "list", dir, err)
	}
	return names, nil
}

func (e *Engine) inspect(dir, name string) (FileEntry, error) {
	path, err := JoinEntryPath(dir, name)
	if err != nil {
		return FileEntry{}, err
	}
	info, err := os.Lstat(path)
	if err != nil {
		return FileEntry{}, wrap(ErrMetadataUnavailable, "lstat", path, err)
	}
	mode := info.Mode()
	return FileEntry{
		Name:      name,
		Path:      path,
		IsRegular: mode.IsRegular(),
		IsDir:     mode.IsDir(),
	}, nil
}

func (e *Engine) processFile(ctx context.Context, logger *slog.Logger, opts Options, dir string, entry FileEntry, summary *Summary) error {
	if !e.extensions.Match(entry.Name) {
		return nil
	}
	tag, ok := episodetag.ExtractAfterPrefix(entry.Name, opts.Pattern)
	if !ok {
		logger.Debug("no episode tag", logging.String("path", entry.Path))
		return nil
	}
	summary.Matched++

	plan := Plan{
		Source:          entry.Path,
		SourceName:      entry.Name,
		DestinationName: episodetag.CanonicalName(opts.Pattern, tag),
		Tag:             tag,
	}
	destination, err := JoinEntryPath(dir, plan.DestinationName)
	if err != nil {
		e.fail(logger, plan, err, summary)
		return nil
	}
	plan.Destination = destination

	if plan.DestinationName == plan.SourceName {
		summary.record(Outcome{Plan: plan, Status: StatusUnchanged})
		logger.Debug("already canonical", logging.String("path", plan.Source))
		return nil
	}

	if opts.DryRun {
		summary.record(Outcome{Plan: plan, Status: StatusPlanned})
		logger.Info("rename planned",
			logging.String("from", plan.SourceName),
			logging.String("to", plan.DestinationName),
			logging.String("path", dir),
		)
		return nil
	}

	approved := opts.AutoApprove
	if !approved {
		approved, err = e.approver.Approve(ctx, plan)
		if err != nil {
			return fmt.Errorf("approve rename of %s: %w", plan.Source, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !approved {
		summary.record(Outcome{Plan: plan, Status: StatusDeclined})
		logger.Info("rename declined", logging.String("path", plan.Source))
		return nil
	}

	if err := e.rename(plan.Source, plan.Destination); err != nil {
		e.fail(logger, plan, classifyRenameError(plan.Source, plan.Destination, err), summary)
		return nil
	}
	summary.record(Outcome{Plan: plan, Status: StatusRenamed})
	logger.Info("renamed",
		logging.String("from", plan.SourceName),
		logging.String("to", plan.DestinationName),
		logging.String("path", dir),
	)
	return nil
}

func (e *Engine) fail(logger *slog.Logger, plan Plan, err error, summary *Summary) {
	summary.record(Outcome{Plan: plan, Status: StatusFailed, Err: err})
	logging.WarnWithContext(logger, "rename failed",
		"rename_failed",
		logging.String("from", plan.Source),
		logging.String("to", plan.DestinationName),
		logging.String("reason", FailureReason(err)),
		logging.Error(err),
		logging.String(logging.FieldImpact, "file keeps its original name"),
	)
}

func entryEventType(err error) string {
	if errors.Is(err, ErrPathTooLong) {
		return "entry_path_too_long"
	}
	return "entry_metadata_unavailable"
}

func isDirectoryError(err error) bool {
	return errors.Is(err, ErrDirectoryUnavailable)
}
