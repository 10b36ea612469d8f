// Package stacktrace condenses raw goroutine dumps to the frames that belong
// to this repository.
package stacktrace

import "strings"

// InternalPaths extracts the internal/... source locations from a debug.Stack
// dump. Frames outside this module are dropped so panic logs stay readable.
func InternalPaths(stack []byte) []string {
	var paths []string

	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "/internal/")
		if idx < 0 || !strings.Contains(line, ".go:") {
			continue
		}

		frame := line[idx+1:]
		if cut := strings.IndexByte(frame, ' '); cut > 0 {
			frame = frame[:cut]
		}
		paths = append(paths, frame)
	}

	return paths
}
