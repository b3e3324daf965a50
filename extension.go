package bootfmt

// Extension formats platform-specific values such as firmware status codes
// or identifiers. A conversion whose next format byte is a marker the
// extension claims consumes that marker, and the slot's value is handed to
// the extension instead of the standard conversion.
//
// Without an extension, markers are ordinary text following the conversion.
type Extension interface {
	// Claims reports whether marker, the byte after conversion letter conv,
	// selects this extension.
	Claims(conv, marker byte) bool

	// AppendFormat appends the text for arg to dst. When ok is false the
	// standard conversion is rendered instead. The text is padded and
	// truncated like a string; a 0 width pads with spaces unless the text
	// starts with 0x.
	AppendFormat(dst []byte, conv, marker byte, arg Arg) (text []byte, ok bool)
}

// claim consumes the marker after conv if ext claims it.
func (sc *scanner) claim(ext Extension, conv byte) (marker byte, ok bool) {
	if ext == nil || sc.done() {
		return 0, false
	}
	if m := sc.peek(); ext.Claims(conv, m) {
		sc.i++
		return m, true
	}
	return 0, false
}
