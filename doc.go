// Package bootfmt is a printf-style formatting engine for boot environments:
// no floating point, no locale, bounded output and a heap that may say no.
//
// Formatting runs in two walks over the format string. The first resolves
// the storage [Kind] of every argument slot; the arguments are then
// extracted into those slots in slot order; the second walk renders the
// output through a bounded [Writer] that counts every byte, including the
// ones that did not fit.
//
// # Conversions
//
// The conversion syntax is
//
//	% [-] [digits [$]] [-] [digits] [. digits] [length] conv
//	length = h | hh | l | ll | z      (z only before d u x X)
//	conv   = d u x X p c C s %
//
//   - N$ selects argument N (1-based) for the conversion, so "%2$s %1$s"
//     swaps two arguments. Width and precision may follow the index.
//   - A slot used by several conversions takes the type of the last one,
//     so "%1$s %1$d" of "hi" prints "(null) 0": the string is read as an
//     integer and the %s finds no string.
//   - A width starting with 0 fills with zeros instead of spaces.
//   - "-" pads on the right.
//   - Precision limits the bytes taken from a string; it is ignored for
//     integers. A NUL byte also ends a string.
//   - d prints signed decimal, u unsigned decimal, x and X hexadecimal, p
//     0x and hexadecimal. c prints the low byte of its argument and C
//     encodes a code point as UTF-8, or '?' above U+10FFFF.
//   - s of a nil argument prints "(null)".
//   - Any other letter is printed as is and takes no argument.
//
// The length modifier narrows or widens the argument: %hhd reads an 8-bit
// value, %hd 16 bits, %d 32 bits, %ld a machine word and %lld 64 bits.
// Arguments may be any Go integer type, including defined types; they are
// truncated and sign or zero extended as the modifier says.
//
// # Sizing
//
// Three drivers share the engine:
//
//   - [Snprintf] renders into a fixed buffer, truncating and always
//     NUL-terminating, and returns the untruncated length.
//   - [Asprintf] measures first, allocates exactly, and renders again. It
//     fails with [ErrNoMemory] when the allocator refuses.
//   - [Fprintf] and [Printf] render into a stack buffer and fall back to an
//     exact heap allocation for long output. If that is refused the output
//     is cut and ends in "...".
//
// # Printers
//
// The package-level functions use a zero [Printer]. A Printer of your own
// sets the console, an [Allocator] such as [Budget], an [Extension] for
// platform conversions, and the debug word list for [Printer.Dprintf]:
//
//	p := &bootfmt.Printer{
//		Console:   console,
//		Alloc:     &bootfmt.Budget{Limit: 64 << 10},
//		Extension: efi.Extension{},
//		Debug:     "cc,linux",
//	}
//	p.Printf("measurement failed: %lur\n", status)
//
// [LoadConfig] reads the same settings from YAML.
//
// # Errors
//
// Rendering never fails: missing or mistyped arguments print as zero values
// and are reported to [Logger] at debug level. [Check] returns them instead:
//
//   - [ErrArgType]: an argument's type cannot serve its conversion
//   - [ErrMissingArg]: fewer arguments than slots
//   - [ErrExtraArg]: more arguments than slots
//
// [ParseUint] returns [ErrOutOfRange] and [ErrBadNumber].
package bootfmt
