package bootfmt

import (
	"math"

	"go.uber.org/zap"
)

// maxField caps width and precision values.
const maxField = math.MaxInt32

// field holds the flags, width and precision of one conversion.
type field struct {
	width int
	prec  int
	fill  byte
	left  bool
}

func (f *field) reset() { *f = field{prec: maxField, fill: ' '} }

// fieldNumber parses width or precision digits, saturating at maxField.
func fieldNumber(d string) int {
	n, _, err := ParseUint(d, 10, 64)
	if err != nil || n > maxField {
		return maxField
	}
	return int(n)
}

// render is the second walk over format. It substitutes slots from t and
// writes through w, returning the logical length of the output.
func render(w *Writer, format string, t *table, ext Extension) int {
	sc := scanner{s: format}
	n := 0
	for !sc.done() {
		c := sc.next()
		if c != '%' {
			w.WriteByte(c)
			continue
		}

		var f field
		f.reset()
		pos, explicit := 0, false
		for {
			if sc.skip('-') {
				f.left = true
			}
			if d := sc.digits(); d != "" {
				if d[0] == '0' {
					f.fill = '0'
				}
				f.width = fieldNumber(d)
			}
			if !sc.skip('$') {
				break
			}
			// The digits were a positional index; the flags, width and
			// precision follow it.
			pos, explicit = f.width-1, true
			f.reset()
		}
		if sc.skip('-') {
			f.left = true
			if d := sc.digits(); d != "" {
				if d[0] == '0' {
					f.fill = '0'
				}
				f.width = fieldNumber(d)
			}
		}
		if sc.skip('.') {
			if d := sc.digits(); d != "" {
				f.prec = fieldNumber(d)
			}
		}

		c, _ = sc.conversion()
		if c == '%' {
			w.WriteByte('%')
			continue
		}
		if !takesArg(c) {
			if !sc.over {
				w.WriteByte(c)
			}
			continue
		}

		cur := n
		n++
		if explicit {
			cur = pos
		}
		marker, claimed := sc.claim(ext, c)
		if cur < 0 || cur >= len(t.slots) {
			continue
		}
		arg := t.slots[cur]

		if claimed {
			var tmp [64]byte
			if text, ok := ext.AppendFormat(tmp[:0], c, marker, arg); ok {
				if !isHexText(text) {
					f.fill = ' '
				}
				writeField(w, text, f)
				continue
			}
			Logger().Debug("extension declined, using standard conversion",
				zap.String("conv", string(c)),
				zap.String("marker", string(marker)),
				zap.Int64("value", arg.Value))
		}

		switch c {
		case 'p':
			w.WriteString("0x")
			c = 'x'
			fallthrough
		case 'x', 'X', 'u', 'd':
			var tmp [maxIntText]byte
			f.prec = maxField
			writeField(w, AppendInt(tmp[:0], c, uint64(arg.Value)), f)
		case 'c':
			w.WriteByte(byte(arg.Value))
		case 'C':
			writeCodepoint(w, uint32(arg.Value))
		case 's':
			switch s := arg.Ref.(type) {
			case string:
				writeField(w, s, f)
			case []byte:
				writeField(w, s, f)
			default:
				writeField(w, "(null)", f)
			}
		}
	}
	return w.Len()
}

// isHexText reports whether text is a 0x-prefixed number, the only
// extension text that keeps zero fill.
func isHexText(text []byte) bool {
	return len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// writeField writes text padded to f.width. At most f.prec bytes of text are
// used, and a NUL byte ends it early.
func writeField[T ~string | ~[]byte](w *Writer, text T, f field) {
	n := 0
	for n < len(text) && n < f.prec && text[n] != 0 {
		n++
	}
	fill := 0
	if n < f.width {
		fill = f.width - n
	}
	if !f.left {
		w.Fill(f.fill, fill)
	}
	for i := range n {
		w.WriteByte(text[i])
	}
	if f.left {
		w.Fill(f.fill, fill)
	}
}

// writeCodepoint writes code as UTF-8. Values beyond U+10FFFF become '?'.
func writeCodepoint(w *Writer, code uint32) {
	var shift int
	var lead uint32
	switch {
	case code <= 0x7f:
	case code <= 0x7ff:
		shift, lead = 6, 0xc0
	case code <= 0xffff:
		shift, lead = 12, 0xe0
	case code <= 0x10ffff:
		shift, lead = 18, 0xf0
	default:
		code = '?'
	}
	w.WriteByte(byte(lead | code>>shift))
	for shift -= 6; shift >= 0; shift -= 6 {
		w.WriteByte(byte(0x80 | 0x3f&(code>>shift)))
	}
}
