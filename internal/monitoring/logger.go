package monitoring

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// EnvLogLevel names the environment variable that selects the log level.
const EnvLogLevel = "ISOBENCH_LOG"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Level gates the leveled helpers below. Logf itself is never gated.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

var levelNames = map[Level]string{
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelOff:   "off",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int32(l))
}

// ParseLevel maps a level name (case-insensitive) to a Level.
// "warning" and "trace" are accepted as aliases for warn and debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level emitted by Debugf/Infof/Warnf/Errorf.
func SetLevel(l Level) { current.Store(int32(l)) }

// CurrentLevel returns the active level.
func CurrentLevel() Level { return Level(current.Load()) }

// Enabled reports whether messages at l are emitted.
func Enabled(l Level) bool {
	return l != LevelOff && l >= CurrentLevel()
}

// InitFromEnv reads EnvLogLevel and applies it. An unknown value leaves the
// level at info and is reported through Logf.
func InitFromEnv() Level {
	l, err := ParseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		Logf("monitoring: %v, using %s", err, LevelInfo)
	}
	SetLevel(l)
	return l
}

func Debugf(format string, v ...interface{}) { logAt(LevelDebug, format, v...) }
func Infof(format string, v ...interface{})  { logAt(LevelInfo, format, v...) }
func Warnf(format string, v ...interface{})  { logAt(LevelWarn, format, v...) }
func Errorf(format string, v ...interface{}) { logAt(LevelError, format, v...) }

func logAt(l Level, format string, v ...interface{}) {
	if !Enabled(l) {
		return
	}
	Logf("["+l.String()+"] "+format, v...)
}
