package calculation

import (
	"fmt"
	"strings"
	"sync"
)

// recordingLogger keeps every formatted line, prefixed with its level
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) record(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...interface{}) {
	r.record("DEBUG", format, args...)
}
func (r *recordingLogger) Infof(format string, args ...interface{}) {
	r.record("INFO", format, args...)
}
func (r *recordingLogger) Warnf(format string, args ...interface{}) {
	r.record("WARN", format, args...)
}
func (r *recordingLogger) Errorf(format string, args ...interface{}) {
	r.record("ERROR", format, args...)
}

func (r *recordingLogger) contains(level, substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range r.lines {
		if strings.HasPrefix(line, level+" ") && strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
