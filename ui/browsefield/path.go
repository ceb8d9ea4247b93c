package browsefield

import "path/filepath"

// NormalizePath cleans p lexically: repeated separators, "." and ".."
// elements are collapsed and, on Windows, slashes become backslashes. The
// filesystem is not consulted.
func NormalizePath(p string) string {
	return filepath.Clean(p)
}

// splitSeed returns the directory a dialog should open in and the file name
// it should pre-select for the normalized path p.
func splitSeed(p string, mode FileMode) (dir, file string) {
	if mode == Directory {
		return p, ""
	}
	_, file = filepath.Split(p)
	return filepath.Dir(p), file
}
