package renamer

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"syscall"
)

var (
	ErrDirectoryUnavailable = errors.New("directory unavailable")
	ErrMetadataUnavailable  = errors.New("metadata unavailable")
	ErrRenameFailed         = errors.New("rename failed")
	ErrPathTooLong          = errors.New("path too long")
	ErrInvalidPattern       = errors.New("invalid naming pattern")
)

// Rename failure refinements. All of them match ErrRenameFailed with errors.Is.
var (
	ErrDestinationExists = fmt.Errorf("%w: destination already exists", ErrRenameFailed)
	ErrCrossDevice       = fmt.Errorf("%w: source and destination are on different filesystems", ErrRenameFailed)
	ErrPermission        = fmt.Errorf("%w: permission denied", ErrRenameFailed)
)

// wrap tags err with marker and a short operation/path detail so callers can
// classify failures with errors.Is while still seeing the OS error text.
func wrap(marker error, operation, path string, err error) error {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if path != "" {
		parts = append(parts, path)
	}
	detail := strings.Join(parts, " ")
	if detail == "" {
		detail = "renamer"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func classifyRenameError(source, destination string, err error) error {
	detail := source + " -> " + destination
	switch {
	case errors.Is(err, fs.ErrExist):
		return wrap(ErrDestinationExists, "rename", detail, err)
	case errors.Is(err, syscall.EXDEV):
		return wrap(ErrCrossDevice, "rename", detail, err)
	case errors.Is(err, fs.ErrPermission):
		return wrap(ErrPermission, "rename", detail, err)
	default:
		return wrap(ErrRenameFailed, "rename", detail, err)
	}
}

// FailureReason returns a short label for a recorded failure, suitable for
// summaries.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDestinationExists):
		return "destination exists"
	case errors.Is(err, ErrCrossDevice):
		return "cross-device"
	case errors.Is(err, ErrPermission):
		return "permission denied"
	case errors.Is(err, ErrPathTooLong):
		return "path too long"
	case errors.Is(err, ErrRenameFailed):
		return "rename failed"
	default:
		return err.Error()
	}
}
