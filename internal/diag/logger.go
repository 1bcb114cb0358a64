package diag

import (
	"fmt"
	"os"
	"time"
)

// CoordinatorTID is the logical tid used for log lines that originate from
// the coordinator rather than any one worker, so they stand out from the
// 0-based worker ids in a run's log file.
const CoordinatorTID = -1

// Logger formats and dispatches leveled log lines. Every line follows the
// pattern "<tid> [HH:MM:SS.ffffff] (<level>) <message>", mirroring the
// spdlog pattern the original tool configured.
//
// Go has no public API for the OS/goroutine thread id a native build would
// use for "<tid>" (spdlog's %t), so callers pass their own logical id — each
// worker uses its 0-based slice index, the coordinator uses CoordinatorTID.
type Logger struct {
	level Level
	sink  Sink
}

// New builds a Logger writing through sink, filtering out anything below
// level. A nil sink falls back to stderr.
func New(sink Sink, level Level) *Logger {
	return &Logger{level: level, sink: sink}
}

func (l *Logger) log(tid int, lvl Level, msg string) {
	if lvl < l.level {
		return
	}
	line := fmt.Sprintf("%d [%s] (%s) %s", tid, time.Now().Format("15:04:05.000000"), lvl, msg)
	if l.sink == nil {
		fmt.Fprintln(os.Stderr, line)
		return
	}
	if err := l.sink.WriteLine(line); err != nil {
		fmt.Fprintf(os.Stderr, "diag: sink write failed: %v\n", err)
		fmt.Fprintln(os.Stderr, line)
	}
}

func (l *Logger) Trace(tid int, msg string)    { l.log(tid, Trace, msg) }
func (l *Logger) Debug(tid int, msg string)    { l.log(tid, Debug, msg) }
func (l *Logger) Info(tid int, msg string)     { l.log(tid, Info, msg) }
func (l *Logger) Warning(tid int, msg string)  { l.log(tid, Warning, msg) }
func (l *Logger) Error(tid int, msg string)    { l.log(tid, Error, msg) }
func (l *Logger) Critical(tid int, msg string) { l.log(tid, Critical, msg) }

func (l *Logger) Tracef(tid int, format string, args ...interface{}) {
	l.log(tid, Trace, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(tid int, format string, args ...interface{}) {
	l.log(tid, Debug, fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(tid int, format string, args ...interface{}) {
	l.log(tid, Info, fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(tid int, format string, args ...interface{}) {
	l.log(tid, Warning, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(tid int, format string, args ...interface{}) {
	l.log(tid, Error, fmt.Sprintf(format, args...))
}

func (l *Logger) Criticalf(tid int, format string, args ...interface{}) {
	l.log(tid, Critical, fmt.Sprintf(format, args...))
}
