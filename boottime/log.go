package boottime

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/bjaus/bootfmt"
	"go.uber.org/zap"
)

// Entry is one recorded boot event.
type Entry struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Millis  int64  `json:"ms" yaml:"ms"`
	Message string `json:"message" yaml:"message"`
}

// Log records boot events with the time elapsed since it was created.
// It is safe for concurrent use.
type Log struct {
	printer *bootfmt.Printer
	now     func() time.Time
	start   time.Time

	mu      sync.Mutex
	entries []Entry
}

// New returns a Log that formats messages with p, or with a default
// Printer when p is nil, and reads the time from now, or [time.Now].
func New(p *bootfmt.Printer, now func() time.Time) *Log {
	if p == nil {
		p = &bootfmt.Printer{}
	}
	if now == nil {
		now = time.Now
	}
	return &Log{printer: p, now: now, start: now()}
}

// Record appends an entry for file and line. The message is formatted into
// an exactly sized allocation; when the Printer's allocator refuses it the
// event is dropped.
func (l *Log) Record(file string, line int, format string, args ...any) {
	elapsed := l.now().Sub(l.start)
	msg, err := l.printer.Asprintf(format, args...)
	if err != nil {
		bootfmt.Logger().Debug("boot time event dropped",
			zap.String("file", file),
			zap.Int("line", line),
			zap.Error(err))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{
		File:    file,
		Line:    line,
		Millis:  elapsed.Milliseconds(),
		Message: msg,
	})
}

// Mark is Record with the caller's file and line.
func (l *Log) Mark(format string, args ...any) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "???"
	}
	l.Record(filepath.Base(file), line, format, args...)
}

// Entries returns a copy of the recorded entries in order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
