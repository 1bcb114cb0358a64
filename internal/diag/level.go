// Package diag provides the splitter's leveled, file-backed logger.
//
// There is no structured-logging library anywhere in the surrounding
// ecosystem this tool was built alongside, so the logger here is hand-rolled
// the same way the rest of that ecosystem does it: a small Level type, a
// mutex-protected sink, and a thin formatter on top.
package diag

import "strings"

// Level orders the splitter's log levels from most to least verbose.
type Level int

const (
	Trace Level = iota
	Debug
	Info
	Warning
	Error
	Critical
	Off
)

func (l Level) String() string {
	switch l {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Critical:
		return "critical"
	case Off:
		return "off"
	default:
		return "trace"
	}
}

// ParseLevel resolves a level name to a Level. The bool result is false when
// the name is unrecognized, in which case the caller should fall back to the
// default level (Trace) and log a warning through whatever logger it ends up
// building.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return Trace, true
	case "debug":
		return Debug, true
	case "info":
		return Info, true
	case "warning":
		return Warning, true
	case "error":
		return Error, true
	case "critical":
		return Critical, true
	case "off":
		return Off, true
	default:
		return Trace, false
	}
}
