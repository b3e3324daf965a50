package bootfmt

import (
	"fmt"
	"math"
)

func isSpace(c byte) bool {
	return c == '\n' || c == '\r' || c == ' ' || c == '\t'
}

// ParseUint parses an unsigned integer at the start of s and returns it with
// the unparsed rest of s.
//
// Leading white space is skipped. A base of 0 selects 16 for a "0x" prefix,
// 8 for a leading 0 followed by an octal digit, and 10 otherwise; base 16
// also accepts the "0x" prefix. Digits above 9 may be upper or lower case.
//
// If the value does not fit in bitSize bits ParseUint returns the largest
// value that does, s, and an error wrapping [ErrOutOfRange]. If no digit is
// found it returns 0, s, and an error wrapping [ErrBadNumber].
func ParseUint(s string, base, bitSize int) (uint64, string, error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	if i+1 < len(s) && s[i] == '0' {
		switch {
		case s[i+1] == 'x':
			if base == 0 || base == 16 {
				base = 16
				i += 2
			}
		case base == 0 && s[i+1] >= '0' && s[i+1] <= '7':
			base = 8
		}
	}
	if base == 0 {
		base = 10
	}

	var (
		num   uint64
		found bool
		b     = uint64(base)
	)
	for ; i < len(s); i++ {
		var d uint64
		switch c := s[i] | 0x20; {
		case s[i] >= '0' && s[i] <= '9':
			d = uint64(s[i] - '0')
		case c >= 'a' && c <= 'z':
			d = uint64(c-'a') + 10
		default:
			d = b
		}
		if d >= b {
			break
		}
		found = true

		// num*b + d must not exceed the maximum.
		if q, _ := DivMod64(math.MaxUint64-d, b); num > q {
			return maxUint(bitSize), s, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
		num = num*b + d
	}

	if !found {
		return 0, s, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	if limit := maxUint(bitSize); num > limit {
		return limit, s, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return num, s[i:], nil
}

func maxUint(bitSize int) uint64 {
	if bitSize <= 0 || bitSize >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(bitSize) - 1
}
