// Package logger implements namespace-scoped debug logging in the style
// of the npm debug package. Loggers print to stderr, are switched on
// through the DEBUG environment variable, and show the time elapsed
// since the previous message of the same namespace.
package logger

import (
	"fmt"
	"hash/fnv"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/flowlint/flowlint/pkg/timeutil"
	"github.com/flowlint/flowlint/pkg/tty"
)

// Logger is a debug logger bound to one namespace. Its enabled state and
// color are fixed at construction.
type Logger struct {
	namespace string
	enabled   bool
	color     string
	mu        sync.Mutex
	lastLog   time.Time
}

var (
	// DEBUG environment variable, read once at startup.
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS=0 switches namespace colors off.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	// Colors are only emitted when stderr is a terminal.
	isTTY = tty.IsStderrTerminal()

	// 256-color codes that stay legible on light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;26m",  // blue
		"\033[38;5;36m",  // teal
		"\033[38;5;70m",  // green
		"\033[38;5;92m",  // violet
		"\033[38;5;130m", // orange
		"\033[38;5;160m", // red
		"\033[38;5;97m",  // mauve
		"\033[38;5;31m",  // steel blue
		"\033[38;5;64m",  // olive
		"\033[38;5;133m", // plum
	}
)

const colorReset = "\033[0m"

// New creates a Logger for the given namespace. Whether it is enabled is
// decided once from the DEBUG patterns in effect at construction, using
// the syntax of https://www.npmjs.com/package/debug:
//
//	DEBUG=*                     everything
//	DEBUG=expression:*          one namespace prefix
//	DEBUG=cli:lint,workflow:*   a comma-separated list
//	DEBUG=*,-workflow:*         exclusions (leading -) win
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		color:     selectColor(namespace),
		lastLog:   time.Now(),
	}
}

// Enabled reports whether this logger emits output.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted message when the logger is enabled. The
// namespace leads the line and the elapsed time since the previous
// message is appended, npm-debug style.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs a message when the logger is enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	elapsed := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	name := l.namespace
	if l.color != "" {
		name = l.color + l.namespace + colorReset
	}
	fmt.Fprintf(os.Stderr, "%s %s +%s\n", name, message, timeutil.FormatDuration(elapsed))
}

// selectColor hashes the namespace into the palette so a namespace keeps
// its color across runs.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(namespace))
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled evaluates the comma-separated DEBUG patterns for a
// namespace. Exclusion patterns take precedence over matches.
func computeEnabled(namespace string) bool {
	enabled := false
	for pattern := range strings.SplitSeq(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern matches a namespace against a pattern holding at most one
// * wildcard.
func matchPattern(namespace, pattern string) bool {
	prefix, suffix, found := strings.Cut(pattern, "*")
	if !found {
		return namespace == pattern
	}
	return strings.HasPrefix(namespace, prefix) &&
		strings.HasSuffix(namespace[len(prefix):], suffix)
}
