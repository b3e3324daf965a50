package bootfmt

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's diagnostic logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's diagnostic logger. Formatted output
// never goes through it; it only reports degraded operation such as
// allocation fallbacks and argument mismatches.
// This must be called before any formatting.
func SetLogger(l *zap.Logger) {
	logger = l
}
