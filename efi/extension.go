package efi

import "github.com/bjaus/bootfmt"

// Extension adds the UEFI conversions to a [bootfmt.Printer]:
//
//	%ur, %lur  status description, or 0x and the hex value when unknown
//	%pG        GUID in registry form; the argument is a GUID or *GUID
//
// Use %lur for native-width status values; %ur reads only 32 bits. A zero
// width pads status text with spaces and the hex fallback with zeros.
type Extension struct{}

var _ bootfmt.Extension = Extension{}

// Claims implements [bootfmt.Extension].
func (Extension) Claims(conv, marker byte) bool {
	return (conv == 'u' && marker == 'r') || (conv == 'p' && marker == 'G')
}

// AppendFormat implements [bootfmt.Extension].
func (Extension) AppendFormat(dst []byte, conv, marker byte, arg bootfmt.Arg) ([]byte, bool) {
	switch marker {
	case 'r':
		if text, ok := Status(arg.Value).Text(); ok {
			return append(dst, text...), true
		}
		dst = append(dst, "0x"...)
		return bootfmt.AppendInt(dst, 'x', uint64(arg.Value)), true
	case 'G':
		switch g := arg.Ref.(type) {
		case GUID:
			return g.AppendText(dst), true
		case *GUID:
			if g != nil {
				return g.AppendText(dst), true
			}
		}
	}
	return dst, false
}
