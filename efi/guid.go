package efi

import (
	"fmt"

	"github.com/bjaus/bootfmt"
)

// GUID is an EFI_GUID in its in-memory layout.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// CCMeasurementProtocol identifies the confidential computing measurement
// protocol.
var CCMeasurementProtocol = GUID{
	0x96751a3d, 0x72f4, 0x41a6,
	[8]byte{0xa7, 0x94, 0xed, 0x5d, 0x0e, 0x67, 0xae, 0x6b},
}

const guidFormat = "%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x"

// AppendText appends the registry form of g, such as
// 96751a3d-72f4-41a6-a794-ed5d0e67ae6b, to dst.
func (g GUID) AppendText(dst []byte) []byte {
	return bootfmt.Append(dst, guidFormat,
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// String returns the registry form of g.
func (g GUID) String() string {
	var buf [36]byte
	return string(g.AppendText(buf[:0]))
}

// ParseGUID parses the registry form produced by [GUID.String]. Hex digits
// may be upper or lower case.
func ParseGUID(s string) (GUID, error) {
	if len(s) != 36 {
		return GUID{}, fmt.Errorf("%w: GUID %q", bootfmt.ErrBadNumber, s)
	}
	for i := range len(s) {
		switch i {
		case 8, 13, 18, 23:
			if s[i] != '-' {
				return GUID{}, fmt.Errorf("%w: GUID %q", bootfmt.ErrBadNumber, s)
			}
		default:
			if !isHex(s[i]) {
				return GUID{}, fmt.Errorf("%w: GUID %q", bootfmt.ErrBadNumber, s)
			}
		}
	}

	hex := func(from, to int) uint64 {
		v, _, _ := bootfmt.ParseUint(s[from:to], 16, 64)
		return v
	}
	g := GUID{
		Data1: uint32(hex(0, 8)),
		Data2: uint16(hex(9, 13)),
		Data3: uint16(hex(14, 18)),
	}
	g.Data4[0] = byte(hex(19, 21))
	g.Data4[1] = byte(hex(21, 23))
	for i := range 6 {
		g.Data4[2+i] = byte(hex(24+2*i, 26+2*i))
	}
	return g, nil
}

func isHex(c byte) bool {
	c |= 0x20
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')
}
