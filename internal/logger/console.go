// Package logger provides the leveled console logger used by the find-folder
// command.
//
// Lines are written as "[HH:MM:SS] [LEVEL] message". Levels below the
// configured one are discarded. Level names are colored when writing to a
// terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelTrace int = iota
	levelDebug
	levelInfo
	levelWarn
	levelError
)

var levels = map[string]int{
	"trace": levelTrace,
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

var levelColors = map[string]*color.Color{
	"TRACE": color.New(color.FgHiBlack),
	"DEBUG": color.New(color.FgCyan),
	"INFO":  color.New(color.FgBlue),
	"WARN":  color.New(color.FgYellow),
	"ERROR": color.New(color.FgRed),
}

// ConsoleLogger is safe for concurrent use.
type ConsoleLogger struct {
	writer      io.Writer
	level       int
	mutex       sync.Mutex
	colorOutput bool
	now         func() time.Time
}

// NewConsoleLogger creates a logger writing to writer. A nil writer discards
// everything. Unknown or empty levels fall back to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		level:       parseLevel(logLevel),
		colorOutput: isTerminal(writer),
		now:         time.Now,
	}
}

// ValidLevel reports whether level names a known log level.
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(strings.TrimSpace(level))]
	return ok
}

func parseLevel(level string) int {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l
	}
	return levelInfo
}

// isTerminal reports whether w is stdout or stderr with color enabled.
// color.NoColor already accounts for TTY detection and NO_COLOR.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		return !color.NoColor
	}
	return false
}

// Enabled reports whether messages at level would be written.
func (cl *ConsoleLogger) Enabled(level string) bool {
	return cl.writer != nil && parseLevel(level) >= cl.level
}

func (cl *ConsoleLogger) Tracef(format string, args ...any) { cl.logf("TRACE", format, args...) }
func (cl *ConsoleLogger) Debugf(format string, args ...any) { cl.logf("DEBUG", format, args...) }
func (cl *ConsoleLogger) Infof(format string, args ...any)  { cl.logf("INFO", format, args...) }
func (cl *ConsoleLogger) Warnf(format string, args ...any)  { cl.logf("WARN", format, args...) }
func (cl *ConsoleLogger) Errorf(format string, args ...any) { cl.logf("ERROR", format, args...) }

func (cl *ConsoleLogger) logf(level, format string, args ...any) {
	if !cl.Enabled(level) {
		return
	}

	message := fmt.Sprintf(format, args...)

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	label := level
	if cl.colorOutput {
		label = levelColors[level].Sprint(level)
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", cl.now().Format("15:04:05"), label, message)
}
