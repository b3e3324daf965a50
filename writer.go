package bootfmt

// Writer is a bounded byte sink. It stores bytes only while its destination
// has room, but counts every byte it is asked to write, so Len reports the
// logical length of the full output even after truncation.
//
// A Writer with a nil destination stores nothing and is used to measure.
type Writer struct {
	dst []byte
	n   int
}

// NewWriter returns a Writer whose capacity is len(dst).
func NewWriter(dst []byte) *Writer {
	return &Writer{dst: dst}
}

// WriteByte implements [io.ByteWriter]. It never fails.
func (w *Writer) WriteByte(c byte) error {
	if w.n < len(w.dst) {
		w.dst[w.n] = c
	}
	w.n++
	return nil
}

// WriteString writes each byte of s.
func (w *Writer) WriteString(s string) (int, error) {
	if w.n < len(w.dst) {
		copy(w.dst[w.n:], s)
	}
	w.n += len(s)
	return len(s), nil
}

// Write implements [io.Writer]. It never fails and always reports len(p).
func (w *Writer) Write(p []byte) (int, error) {
	if w.n < len(w.dst) {
		copy(w.dst[w.n:], p)
	}
	w.n += len(p)
	return len(p), nil
}

// Fill writes c count times.
func (w *Writer) Fill(c byte, count int) {
	if count <= 0 {
		return
	}
	if room := len(w.dst) - w.n; room > 0 {
		for i := range min(room, count) {
			w.dst[w.n+i] = c
		}
	}
	w.n += count
}

// Len returns the number of bytes written so far, including those that did
// not fit.
func (w *Writer) Len() int { return w.n }

// Cap returns the capacity of the destination.
func (w *Writer) Cap() int { return len(w.dst) }

// Bytes returns the stored portion of the output.
func (w *Writer) Bytes() []byte { return w.dst[:min(w.n, len(w.dst))] }

// Terminate stores a NUL after the output. When the output filled the
// destination the last stored byte is replaced instead. A Writer without
// capacity is left untouched.
func (w *Writer) Terminate() {
	switch {
	case w.n < len(w.dst):
		w.dst[w.n] = 0
	case len(w.dst) > 0:
		w.dst[len(w.dst)-1] = 0
	}
}
