//go:build !linux

package renamer

func renameNoReplace(source, destination string) error {
	return renameChecked(source, destination)
}
