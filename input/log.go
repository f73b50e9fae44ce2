package input

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(os.Stderr, "input: ", log.LstdFlags))
}

// SetLogger redirects binding diagnostics. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger.Store(l)
}

func logf(format string, args ...any) {
	logger.Load().Printf(format, args...)
}
