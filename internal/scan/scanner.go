package scan

import (
	"os"
	"path/filepath"
)

// TargetName is the directory name the scanner looks for.
const TargetName = "node_modules"

// Scanner discovers node_modules directories under a root path.
type Scanner struct {
	warnings []string
}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Warnings returns any warnings accumulated during the last Find.
func (s *Scanner) Warnings() []string {
	return append([]string(nil), s.warnings...)
}

func (s *Scanner) addWarning(msg string) {
	if len(s.warnings) < 500 {
		s.warnings = append(s.warnings, msg)
	}
}

// Find returns the paths of all directories named node_modules under root,
// in depth-first pre-order. A matched directory is recorded and never
// descended into, so a dependency's own nested node_modules stays invisible.
// Directories that cannot be listed are treated as empty; Find never fails.
func (s *Scanner) Find(root string) []string {
	s.warnings = nil
	var matches []string
	s.walk(filepath.Clean(root), &matches)
	return matches
}

func (s *Scanner) walk(dir string, matches *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.addWarning("cannot read " + dir + ": " + err.Error())
		return
	}

	for _, e := range entries {
		// Symlinks report as non-directories here, so they are never followed.
		if !e.IsDir() {
			continue
		}
		child := filepath.Join(dir, e.Name())
		if e.Name() == TargetName {
			*matches = append(*matches, child)
			continue
		}
		s.walk(child, matches)
	}
}

// DirSize returns the total byte size of all regular files under path,
// recursing with unbounded depth. Unreadable directories and unstat-able
// entries contribute zero rather than aborting the computation.
func DirSize(path string) int64 {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	var total int64
	for _, e := range entries {
		child := filepath.Join(path, e.Name())
		if e.IsDir() {
			total += DirSize(child)
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
	}
	return total
}

// SubdirCount returns the number of immediate subdirectories of path.
// A listing failure counts as zero.
func SubdirCount(path string) int {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	count := 0
	for _, e := range entries {
		if e.IsDir() {
			count++
		}
	}
	return count
}
