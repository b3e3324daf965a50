package bootfmt

import (
	"io"
	"os"

	"go.uber.org/zap"
)

// scratchSize is the stack buffer [Printer.Fprintf] renders into before it
// turns to the heap. Output that does not fit, terminator included, is
// rendered again into an exact allocation.
const scratchSize = 256

// ellipsis replaces the tail of truncated console output.
const ellipsis = "..."

// Printer holds the collaborators formatting depends on. The zero value is
// ready to use: it writes to standard output, allocates from the Go heap
// and has no extension.
type Printer struct {
	// Console receives Printf output.
	Console io.Writer

	// Input is read for a key press by Fatalf. Nil skips the prompt.
	Input io.Reader

	// Alloc gates heap allocations. Nil means [Heap].
	Alloc Allocator

	// Extension formats platform-specific conversions. Nil disables them.
	Extension Extension

	// Debug is the word list consulted by DebugEnabled.
	Debug string

	// Exit ends the process after Fatalf. Nil means [os.Exit].
	Exit func(code int)
}

var std Printer

func (p *Printer) allocator() Allocator {
	if p.Alloc == nil {
		return Heap
	}
	return p.Alloc
}

func (p *Printer) console() io.Writer {
	if p.Console == nil {
		return os.Stdout
	}
	return p.Console
}

// prepare runs the two resolving passes over format and extracts args into
// t. Argument problems are logged, never returned; see [Printer.Check].
func (p *Printer) prepare(t *table, format string, args []any) {
	t.init(countArgs(format, p.Extension), p.allocator())
	resolveKinds(format, p.Extension, t.slots)
	if err := t.extract(args); err != nil {
		Logger().Debug("format arguments do not match",
			zap.String("format", format),
			zap.Error(err))
	}
}

// Check reports every mismatch between format and args: arguments whose Go
// type cannot serve their conversion, and missing or extra arguments.
// Formatting functions render such arguments as zero values; Check lets
// callers refuse them instead.
func (p *Printer) Check(format string, args ...any) error {
	var t table
	t.init(countArgs(format, p.Extension), Heap)
	resolveKinds(format, p.Extension, t.slots)
	return t.extract(args)
}

// Snprintf renders into dst, storing what fits, and NUL-terminates within
// len(dst) when dst is not empty. It returns the length the full output
// would have, which exceeds len(dst)-1 exactly when the output was
// truncated.
func (p *Printer) Snprintf(dst []byte, format string, args ...any) int {
	var t table
	p.prepare(&t, format, args)
	w := Writer{dst: dst}
	n := render(&w, format, &t, p.Extension)
	w.Terminate()
	return n
}

// Asprintf measures the output, allocates exactly enough for it and a
// terminator, and renders again. It fails with [ErrNoMemory] when the
// allocator refuses.
func (p *Printer) Asprintf(format string, args ...any) (string, error) {
	var t table
	p.prepare(&t, format, args)

	var measure Writer
	n := render(&measure, format, &t, p.Extension)
	if !p.allocator().Allocate(n + 1) {
		Logger().Warn("formatted output allocation failed", zap.Int("size", n+1))
		return "", ErrNoMemory
	}

	buf := make([]byte, n+1)
	w := Writer{dst: buf}
	render(&w, format, &t, p.Extension)
	w.Terminate()
	return string(buf[:n]), nil
}

// Sprintf is Asprintf without the error: a refused allocation yields "".
func (p *Printer) Sprintf(format string, args ...any) string {
	s, _ := p.Asprintf(format, args...)
	return s
}

// Append renders onto the end of dst, growing it as needed.
func (p *Printer) Append(dst []byte, format string, args ...any) []byte {
	var t table
	p.prepare(&t, format, args)

	var measure Writer
	n := render(&measure, format, &t, p.Extension)
	start := len(dst)
	dst = append(dst, make([]byte, n)...)
	w := Writer{dst: dst[start:]}
	render(&w, format, &t, p.Extension)
	return dst
}

// Fprintf renders into a buffer on the stack and writes the result to out.
// Output too large for the buffer is rendered again into an exact heap
// allocation. If that allocation is refused, the truncated buffer is
// written with its last bytes replaced by "...".
//
// It returns the logical length of the output and any error from out.
func (p *Printer) Fprintf(out io.Writer, format string, args ...any) (int, error) {
	var t table
	p.prepare(&t, format, args)

	var scratch [scratchSize]byte
	w := Writer{dst: scratch[:]}
	n := render(&w, format, &t, p.Extension)
	text := scratch[:min(n, scratchSize)]

	if n+1 > scratchSize {
		if p.allocator().Allocate(n + 1) {
			buf := make([]byte, n+1)
			hw := Writer{dst: buf}
			render(&hw, format, &t, p.Extension)
			text = buf[:n]
		} else {
			Logger().Warn("console output allocation failed, truncating",
				zap.Int("size", n+1),
				zap.Int("buffer", scratchSize))
			end := scratchSize - 1
			copy(scratch[end-len(ellipsis):end], ellipsis)
			text = scratch[:end]
		}
	}

	_, err := out.Write(text)
	return n, err
}

// Printf is Fprintf to the Printer's Console.
func (p *Printer) Printf(format string, args ...any) (int, error) {
	return p.Fprintf(p.console(), format, args...)
}

// Snprintf renders into dst using the default Printer. See [Printer.Snprintf].
func Snprintf(dst []byte, format string, args ...any) int {
	return std.Snprintf(dst, format, args...)
}

// Asprintf formats into an exactly sized allocation using the default
// Printer. See [Printer.Asprintf].
func Asprintf(format string, args ...any) (string, error) {
	return std.Asprintf(format, args...)
}

// Sprintf formats to a string using the default Printer.
func Sprintf(format string, args ...any) string {
	return std.Sprintf(format, args...)
}

// Append formats onto dst using the default Printer.
func Append(dst []byte, format string, args ...any) []byte {
	return std.Append(dst, format, args...)
}

// Fprintf formats to out using the default Printer. See [Printer.Fprintf].
func Fprintf(out io.Writer, format string, args ...any) (int, error) {
	return std.Fprintf(out, format, args...)
}

// Printf formats to standard output using the default Printer.
func Printf(format string, args ...any) (int, error) {
	return std.Printf(format, args...)
}

// Check validates args against format using the default Printer.
func Check(format string, args ...any) error {
	return std.Check(format, args...)
}
