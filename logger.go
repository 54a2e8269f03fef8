package gramkit

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Logger receives structured debug output from the client. Arguments after
// the message are alternating key/value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// DebugConfig gates what the client logs. Logging only happens when Enabled
// is true and a Logger is configured.
type DebugConfig struct {
	Enabled      bool
	LogRequests  bool
	LogResponses bool
	LogErrors    bool
	RequestIDGen func() string
}

// DefaultDebugConfig returns a config that logs everything once enabled,
// with UUID request IDs.
func DefaultDebugConfig() *DebugConfig {
	return &DebugConfig{
		Enabled:      false,
		LogRequests:  true,
		LogResponses: true,
		LogErrors:    true,
		RequestIDGen: DefaultRequestIDGenerator,
	}
}

// DefaultRequestIDGenerator returns a fresh UUID per request.
func DefaultRequestIDGenerator() string {
	return uuid.NewString()
}

// SimpleLogger writes key=value formatted lines to stderr. Intended for
// development use; production callers plug in their own Logger (see
// NewZapLogger).
type SimpleLogger struct {
	logger *log.Logger
}

// NewSimpleLogger creates a console logger.
func NewSimpleLogger() *SimpleLogger {
	return &SimpleLogger{
		logger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *SimpleLogger) Debug(msg string, keysAndValues ...any) { l.print("DEBUG", msg, keysAndValues) }
func (l *SimpleLogger) Info(msg string, keysAndValues ...any)  { l.print("INFO", msg, keysAndValues) }
func (l *SimpleLogger) Warn(msg string, keysAndValues ...any)  { l.print("WARN", msg, keysAndValues) }
func (l *SimpleLogger) Error(msg string, keysAndValues ...any) { l.print("ERROR", msg, keysAndValues) }

func (l *SimpleLogger) print(level, msg string, keysAndValues []any) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(msg)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		b.WriteString(fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1]))
	}
	l.logger.Println(b.String())
}
