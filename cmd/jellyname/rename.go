package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"jellyname/internal/config"
	"jellyname/internal/logging"
	"jellyname/internal/prompt"
	"jellyname/internal/renamer"
	"jellyname/internal/runlock"
	"jellyname/internal/textutil"
)

type renameFlags struct {
	autoApprove bool
	recursive   bool
	dryRun      bool
}

func runRename(cmd *cobra.Command, ctx *commandContext, flags renameFlags, pattern, directory string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	opts := resolveOptions(cmd, cfg, flags, pattern, directory)
	if err := renamer.ValidatePattern(opts.Pattern); err != nil {
		return err
	}

	runID := uuid.NewString()
	logger, closeLog, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr(), runID)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "jellyname:", err)
		}
	}()

	lock, err := runlock.Acquire(cfg.Paths.StateDir, opts.Directory)
	if err != nil {
		if errors.Is(err, runlock.ErrLocked) {
			return fmt.Errorf("another jellyname run is active for %s", opts.Directory)
		}
		return err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			logger.Warn("release run lock", logging.Error(err))
		}
	}()

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = logging.WithRunID(runCtx, runID)

	var approver renamer.Approver = renamer.AutoApprove
	if !opts.AutoApprove {
		approver = prompt.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	engine := renamer.NewEngine(logger, approver, cfg.Naming.Extensions)
	summary, runErr := engine.Process(runCtx, opts)

	if cfg.Output.Summary && len(summary.Outcomes) > 0 {
		fmt.Fprint(cmd.OutOrStdout(), renderSummary(summary))
	}
	logRunFinished(runCtx, logger, opts, summary, runErr)

	if runErr != nil && errors.Is(runErr, context.Canceled) && runCtx.Err() != nil {
		return context.Canceled
	}
	return runErr
}

// resolveOptions merges config defaults with the flags that were set
// explicitly on the command line.
func resolveOptions(cmd *cobra.Command, cfg *config.Config, flags renameFlags, pattern, directory string) renamer.Options {
	opts := renamer.Options{
		Pattern:     pattern,
		Directory:   directory,
		Recursive:   cfg.Behavior.Recursive,
		AutoApprove: cfg.Behavior.AutoApprove,
		DryRun:      flags.dryRun,
	}
	if cmd.Flags().Changed("recursive") {
		opts.Recursive = flags.recursive
	}
	if cmd.Flags().Changed("yes") {
		opts.AutoApprove = flags.autoApprove
	}
	if cfg.Naming.SanitizePattern {
		opts.Pattern = textutil.SanitizeFileName(opts.Pattern)
	}
	return opts
}

func logRunFinished(ctx context.Context, logger *slog.Logger, opts renamer.Options, summary renamer.Summary, err error) {
	logger = logging.WithContext(ctx, logger)
	attrs := []logging.Attr{
		logging.String("directory", opts.Directory),
		logging.Int("processed", summary.Processed()),
		logging.Int("renamed", summary.Renamed),
		logging.Int("declined", summary.Declined),
		logging.Int("failed", summary.Failed),
	}
	if err != nil {
		logger.Error("run aborted", logging.Args(append(attrs, logging.Error(err))...)...)
		return
	}
	logger.Info(textutil.Ternary(opts.DryRun, "dry run finished", "run finished"), logging.Args(attrs...)...)
}
