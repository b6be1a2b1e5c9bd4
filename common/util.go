package common

import (
	"path/filepath"
	"strings"
)

// BaseName returns the file name of path with its extension removed: the
// stem used to name every output file of a compilation
func BaseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
