package core

import (
	"os"
	"path/filepath"
	"strings"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// Getwd tries to find the project root, the closest parent directory holding a go.mod file.
// go-test changes the working directory to the test package being run,
// see: https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
// An empty string is returned when no project root is found (e.g. installed binaries).
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == currDir {
			return ""
		}
		currDir = newDir
	}
}
