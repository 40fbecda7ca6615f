package renamer

import (
	"io/fs"
	"os"
)

// renameChecked refuses to replace an existing destination, then renames.
// The check and the rename are two steps, so a destination created in between
// can still be replaced; renameNoReplace avoids that where the OS allows it.
func renameChecked(source, destination string) error {
	if _, err := os.Lstat(destination); err == nil {
		return &os.LinkError{Op: "rename", Old: source, New: destination, Err: fs.ErrExist}
	}
	return os.Rename(source, destination)
}
