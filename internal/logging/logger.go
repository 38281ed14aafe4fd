// file: internal/logging/logger.go
// version: 1.0.0
// guid: 785764c8-f739-4eef-97c6-4edb16d7ea6e

package logging

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

// LogLevel represents the severity of a log message
type LogLevel int32

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var minLevel atomic.Int32

func init() {
	minLevel.Store(int32(InfoLevel))
}

// SetLevel sets the lowest level that is written.
func SetLevel(level LogLevel) {
	minLevel.Store(int32(level))
}

// Level returns the current minimum level.
func Level() LogLevel {
	return LogLevel(minLevel.Load())
}

func enabled(level LogLevel) bool {
	return level >= Level()
}

func Debugf(format string, args ...any) {
	if enabled(DebugLevel) {
		log.Printf("[DEBUG] "+format, args...)
	}
}

func Infof(format string, args ...any) {
	if enabled(InfoLevel) {
		log.Printf("[INFO] "+format, args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled(WarnLevel) {
		log.Printf("[WARN] "+format, args...)
	}
}

func Errorf(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}

// RunLogger tags every line of one invocation with its run id.
type RunLogger struct {
	runID     string
	operation string
	startTime time.Time
}

// NewRunLogger creates a logger with a fresh ULID run id.
func NewRunLogger(operation string) *RunLogger {
	return &RunLogger{
		runID:     ulid.Make().String(),
		operation: operation,
		startTime: time.Now(),
	}
}

// RunID returns the run identifier.
func (rl *RunLogger) RunID() string {
	return rl.runID
}

// LogStart logs the start of the run
func (rl *RunLogger) LogStart(target string) {
	Infof("[START] %s %s [run-id: %s]", rl.operation, target, rl.runID)
}

// LogSuccess logs the completion of the run with a short summary
func (rl *RunLogger) LogSuccess(summary string) {
	Infof("[SUCCESS] %s in %v: %s [run-id: %s]", rl.operation, time.Since(rl.startTime), summary, rl.runID)
}

// LogError logs a failure that ended the run
func (rl *RunLogger) LogError(err error) {
	Errorf("%s failed after %v: %v [run-id: %s]", rl.operation, time.Since(rl.startTime), err, rl.runID)
}

// Debug logs a debug message
func (rl *RunLogger) Debug(format string, args ...any) {
	Debugf("%s: %s [run-id: %s]", rl.operation, fmt.Sprintf(format, args...), rl.runID)
}
