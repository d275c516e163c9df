package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultLevel is used when no log level is given
const DefaultLevel = "warn"

// Options configures NewLogger
type Options struct {
	Level      string
	JSONFormat bool
	Output     io.Writer
}

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, opts Options) hclog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	// Add prefix for non-JSON output
	if !opts.JSONFormat {
		output = NewPrefixWriter("💾 ", output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      ParseLevel(opts.Level),
		JSONFormat: opts.JSONFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel maps a level name to an hclog level, falling back to
// DefaultLevel for empty or unknown names.
func ParseLevel(level string) hclog.Level {
	l := hclog.LevelFromString(strings.TrimSpace(level))
	if l == hclog.NoLevel {
		return hclog.LevelFromString(DefaultLevel)
	}
	return l
}

// ValidLevel reports whether level names a known log level
func ValidLevel(level string) bool {
	return hclog.LevelFromString(strings.TrimSpace(level)) != hclog.NoLevel
}
