// Package config parses and normalizes the settings the CLI collects before
// any worker starts: thread count, key index list, and paths. Log-level
// parsing lives in package diag (ParseLevel).
//
// Every function here is a pure normalization step over already-parsed flag
// values — none of it depends on the filesystem or the input file's
// contents, so it is fully unit-testable in isolation from the splitter.
package config

import (
	"sort"
	"strconv"
	"strings"
)

// Config holds the fully-resolved settings the Splitter needs to run.
type Config struct {
	InputPath  string
	OutputDir  string
	HeaderMode bool
	Threads    int
	KeyIndices []int
	Manifest   bool
}

// ClampThreads enforces the "at least one worker" floor described in the
// spec; a non-positive request (e.g. a misconfigured hardware-concurrency
// probe) still produces a working single-threaded run.
func ClampThreads(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// ParseKeyIndices splits a comma-separated list of 1-based field indices,
// drops anything that isn't a positive integer, de-duplicates, sorts
// ascending, and falls back to []int{1} if nothing valid remains.
func ParseKeyIndices(s string) []int {
	var out []int
	seen := make(map[int]bool)

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}

	if len(out) == 0 {
		return []int{1}
	}
	sort.Ints(out)
	return out
}

// NormalizeDir appends a trailing slash if one is missing, and falls back to
// def if s is empty.
func NormalizeDir(s, def string) string {
	if s == "" {
		s = def
	}
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s
}
