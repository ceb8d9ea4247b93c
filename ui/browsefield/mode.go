package browsefield

import (
	"fmt"
	"strings"
)

// FileMode controls what a FileDialog lets the user select.
type FileMode uint8

const (
	// AnyFile accepts any file name, existing or not.
	AnyFile FileMode = iota
	// ExistingFile accepts a single existing file.
	ExistingFile
	// Directory accepts a directory.
	Directory
	// ExistingFiles accepts one or more existing files.
	ExistingFiles
)

var fileModeNames = map[FileMode]string{
	AnyFile:       "any-file",
	ExistingFile:  "existing-file",
	Directory:     "directory",
	ExistingFiles: "existing-files",
}

func (m FileMode) String() string {
	if name, ok := fileModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("FileMode(%d)", uint8(m))
}

// Valid reports whether m is one of the known modes.
func (m FileMode) Valid() bool {
	_, ok := fileModeNames[m]
	return ok
}

// ParseFileMode parses the names returned by FileMode.String. Matching is
// case-insensitive and accepts underscores in place of dashes.
func ParseFileMode(s string) (FileMode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for mode, n := range fileModeNames {
		if n == name {
			return mode, nil
		}
	}
	return AnyFile, fmt.Errorf("%w: %q", ErrInvalidFileMode, s)
}

// mustExist reports whether the mode only accepts paths that exist.
func (m FileMode) mustExist() bool {
	return m == ExistingFile || m == ExistingFiles || m == Directory
}
