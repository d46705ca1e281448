package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// RedirectLog points l at the configured log destination: LogFile when set,
// nowhere for the terminal front-end, unchanged otherwise. The returned
// restore func puts the previous writer back and closes the log file; it is
// safe to call more than once, so callers can restore before reporting a
// fatal error and still defer it.
func (c Config) RedirectLog(l *log.Logger) (restore func(), err error) {
	prev := l.Writer()
	var file *os.File

	switch {
	case c.LogFile != "":
		file, err = os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return func() {}, fmt.Errorf("failed to open log file: %w", err)
		}
		l.SetOutput(file)
	case c.Frontend == FrontendTerminal:
		l.SetOutput(io.Discard)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.SetOutput(prev)
			if file != nil {
				file.Close()
			}
		})
	}, nil
}
