//go:build linux

package renamer

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace renames atomically and fails with EEXIST instead of
// replacing an existing destination. Filesystems without RENAME_NOREPLACE
// fall back to a checked rename.
func renameNoReplace(source, destination string) error {
	err := unix.Renameat2(unix.AT_FDCWD, source, unix.AT_FDCWD, destination, unix.RENAME_NOREPLACE)
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EOPNOTSUPP) {
		return renameChecked(source, destination)
	}
	return &os.LinkError{Op: "rename", Old: source, New: destination, Err: err}
}
