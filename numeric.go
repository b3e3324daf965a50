package bootfmt

// DivMod64 divides n by d and returns the quotient and remainder without
// relying on a native 64-bit divide instruction.
//
// When both operands fit in 32 bits the native 32-bit division is used.
// Otherwise the result comes from restoring binary long division: 64 rounds,
// each shifting the top bit of n into the partial remainder and subtracting
// d whenever the remainder has grown to at least d.
//
// A zero divisor never takes the 32-bit path; the long division then yields
// a quotient of all ones and a remainder of n.
func DivMod64(n, d uint64) (q, r uint64) {
	if d != 0 && n < 0xffffffff && d < 0xffffffff {
		return uint64(uint32(n) / uint32(d)), uint64(uint32(n) % uint32(d))
	}

	var m uint64
	for range 64 {
		m <<= 1
		if n&(1<<63) != 0 {
			m |= 1
		}
		q <<= 1
		n <<= 1
		if m >= d {
			q |= 1
			m -= d
		}
	}
	return q, m
}

// maxIntText is large enough for a sign and the 20 decimal digits of the
// largest 64-bit value.
const maxIntText = 32

// AppendInt appends the text of v to dst as conv dictates: 'x' and 'X'
// render base 16 with lower or upper case letters, 'd' renders base 10 and
// treats v as a signed value, anything else renders v as unsigned base 10.
//
// Digits are produced least significant first into dst and then reversed in
// place. Base 10 digits come from DivMod64 and base 16 digits from masking,
// so no 64-bit modulo is ever needed.
func AppendInt(dst []byte, conv byte, v uint64) []byte {
	if conv == 'd' && int64(v) < 0 {
		// Negating through the unsigned form keeps the most negative
		// value intact: -(1<<63) is 1<<63 again.
		v = uint64(-int64(v))
		dst = append(dst, '-')
	}

	start := len(dst)
	switch conv {
	case 'x', 'X':
		letters := byte('a')
		if conv == 'X' {
			letters = 'A'
		}
		for {
			d := byte(v & 0xf)
			if d > 9 {
				dst = append(dst, d-10+letters)
			} else {
				dst = append(dst, d+'0')
			}
			v >>= 4
			if v == 0 {
				break
			}
		}
	default:
		for {
			var m uint64
			v, m = DivMod64(v, 10)
			dst = append(dst, byte(m)+'0')
			if v == 0 {
				break
			}
		}
	}

	reverse(dst[start:])
	return dst
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
