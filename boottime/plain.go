package boottime

import (
	"io"

	"github.com/bjaus/bootfmt"
)

// writePlain writes one line per entry, formatted by the engine itself.
func writePlain(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		r := e.row()
		if _, err := bootfmt.Fprintf(w, "[%10s] %s: %s\n", r[0], r[1], r[2]); err != nil {
			return err
		}
	}
	return nil
}
