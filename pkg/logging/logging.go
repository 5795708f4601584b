package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the application-wide structured logger
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

var mu sync.Mutex

// Init sets the log level and output. An unknown level falls back to info;
// a nil writer means stderr with human-readable formatting.
func Init(level string, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if out == nil {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
