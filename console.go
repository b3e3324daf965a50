package bootfmt

import "io"

// LineWriter writes to W, following every LF with a CR as firmware
// consoles expect.
type LineWriter struct {
	W io.Writer
}

// Write implements [io.Writer]. The count covers bytes of p only.
func (lw *LineWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		i := 0
		for i < len(p) && p[i] != '\n' {
			i++
		}
		if i < len(p) {
			i++
		}
		if _, err := lw.W.Write(p[:i]); err != nil {
			return written, err
		}
		written += i
		if p[i-1] == '\n' {
			if _, err := lw.W.Write([]byte{'\r'}); err != nil {
				return written, err
			}
		}
		p = p[i:]
	}
	return written, nil
}
