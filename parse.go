package bootfmt

import (
	"math/bits"
	"strings"
)

// scanner walks a format string. Reading past the end yields 0 and sets
// over, so a truncated conversion can be told apart from a NUL byte.
type scanner struct {
	s    string
	i    int
	over bool
}

func (sc *scanner) done() bool { return sc.i >= len(sc.s) }

func (sc *scanner) peek() byte {
	if sc.i < len(sc.s) {
		return sc.s[sc.i]
	}
	return 0
}

func (sc *scanner) next() byte {
	if sc.i >= len(sc.s) {
		sc.over = true
		return 0
	}
	c := sc.s[sc.i]
	sc.i++
	return c
}

func (sc *scanner) skip(c byte) bool {
	if sc.i < len(sc.s) && sc.s[sc.i] == c {
		sc.i++
		return true
	}
	return false
}

func (sc *scanner) digits() string {
	start := sc.i
	for sc.i < len(sc.s) && isDigit(sc.s[sc.i]) {
		sc.i++
	}
	return sc.s[start:sc.i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// prefix skips "[-][digits[$]][-][digits][.digits]" and returns the zero
// based positional index when the first digits were followed by '$'. An
// empty or zero index yields -1.
func (sc *scanner) prefix() (pos int, explicit bool) {
	sc.skip('-')
	d := sc.digits()
	if sc.skip('$') {
		explicit = true
		pos = position(d)
	}
	sc.skip('-')
	sc.digits()
	sc.skip('.')
	sc.digits()
	return pos, explicit
}

// position converts 1-based index digits to a slot index.
func position(d string) int {
	n, _, err := ParseUint(d, 10, 32)
	if err != nil || n == 0 {
		return -1
	}
	return int(n - 1)
}

// conversion reads the length modifier and the conversion letter. length
// runs from -2 (hh) to 2 (ll). Two different modifier letters leave the
// second one as the conversion letter.
func (sc *scanner) conversion() (c byte, length int) {
	c = sc.next()
	if c == 'l' || c == 'h' {
		prev := c
		length = 1
		if c == 'h' {
			length = -1
		}
		c = sc.next()
		if c == prev {
			length *= 2
			c = sc.next()
		}
	}
	if c == 'z' && !sc.done() && strings.IndexByte("duxX", sc.peek()) >= 0 {
		c = sc.next()
		length = 1
		if bits.UintSize == 64 {
			length = 2
		}
	}
	return c, length
}

// takesArg reports whether conversion letter c consumes an argument.
func takesArg(c byte) bool {
	switch c {
	case 'p', 'x', 'X', 'u', 'd', 'c', 'C', 's':
		return true
	}
	return false
}

// kindOf maps a conversion letter and length modifier to a slot kind.
func kindOf(c byte, length int) Kind {
	switch c {
	case 'x', 'X', 'u':
		return KindUint32 + Kind(length)
	case 'd':
		return KindInt32 + Kind(length)
	case 'p', 's':
		return pointerKind()
	default:
		return KindInt32
	}
}

// countArgs is the first pass: the number of conversions that consume an
// argument. Literal %% and unknown letters do not count.
func countArgs(format string, ext Extension) int {
	sc := scanner{s: format}
	n := 0
	for !sc.done() {
		if sc.next() != '%' {
			continue
		}
		sc.prefix()
		c, _ := sc.conversion()
		if takesArg(c) {
			sc.claim(ext, c)
			n++
		}
	}
	return n
}

// resolveKinds is the second pass: it records the kind and conversion of
// every slot a conversion refers to. Conversions are numbered in order of
// appearance unless they carry an explicit N$ index; indexes outside slots
// are ignored.
func resolveKinds(format string, ext Extension, slots []Arg) {
	sc := scanner{s: format}
	n := 0
	for !sc.done() {
		if sc.next() != '%' {
			continue
		}
		pos, explicit := sc.prefix()
		c, length := sc.conversion()
		if !takesArg(c) {
			continue
		}
		cur := n
		n++
		if explicit {
			cur = pos
		}
		marker, _ := sc.claim(ext, c)
		if cur < 0 || cur >= len(slots) {
			continue
		}
		slots[cur].Kind = kindOf(c, length)
		slots[cur].Conv = c
		slots[cur].Marker = marker
	}
}

// Resolve returns the argument slots format expects, in slot order, with
// Kind, Conv and Marker filled in. Slots no conversion refers to have a
// zero Conv.
func Resolve(format string, ext Extension) []Arg {
	slots := make([]Arg, countArgs(format, ext))
	resolveKinds(format, ext, slots)
	return slots
}
