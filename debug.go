package bootfmt

import (
	"os"
	"path/filepath"
	"runtime"
)

func isWordSeparator(c byte) bool {
	return isSpace(c) || c == ',' || c == ';' || c == '|' || c == '&'
}

// WordMatch reports whether needle appears as a whole word in haystack.
// Words are separated by white space and any of ",;|&".
func WordMatch(haystack, needle string) bool {
	at := func(s string, i int) byte {
		if i < len(s) {
			return s[i]
		}
		return 0
	}

	h := 0
	for h < len(haystack) && isWordSeparator(haystack[h]) {
		h++
	}
	for h < len(haystack) {
		n := 0
		for h < len(haystack) && !isWordSeparator(haystack[h]) && haystack[h] == at(needle, n) {
			h++
			n++
		}

		if (h == len(haystack) || isWordSeparator(haystack[h])) &&
			(n == len(needle) || isWordSeparator(needle[n])) {
			return true
		}

		for h < len(haystack) && !isWordSeparator(haystack[h]) {
			h++
		}
		for h < len(haystack) && isWordSeparator(haystack[h]) {
			h++
		}
	}
	return false
}

// DebugEnabled reports whether debug output for cond is on. It is on when
// the Debug word list names cond or "all", and off when it names "-cond".
func (p *Printer) DebugEnabled(cond string) bool {
	if p.Debug == "" {
		return false
	}
	if WordMatch(p.Debug, "-"+cond) {
		return false
	}
	return WordMatch(p.Debug, "all") || WordMatch(p.Debug, cond)
}

// Dprintf prints a "file:line: " prefix and the formatted message when
// debug output for cond is on.
func (p *Printer) Dprintf(file string, line int, cond, format string, args ...any) {
	if !p.DebugEnabled(cond) {
		return
	}
	p.Printf("%s:%d: ", file, line)
	p.Printf(format, args...)
}

// Qdprintf prints the formatted message without a prefix when debug output
// for cond is on.
func (p *Printer) Qdprintf(cond, format string, args ...any) {
	if !p.DebugEnabled(cond) {
		return
	}
	p.Printf(format, args...)
}

// Debugf is Dprintf with the caller's file and line.
func (p *Printer) Debugf(cond, format string, args ...any) {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "???"
	}
	p.Dprintf(filepath.Base(file), line, cond, format, args...)
}

// Fatalf prints the message and "Aborted.", waits for a key press when the
// Printer has Input, and exits with status 1.
func (p *Printer) Fatalf(format string, args ...any) {
	p.Printf(format, args...)
	p.Printf("\nAborted.")
	if p.Input != nil {
		p.Printf(" Press any key to exit.")
		var key [1]byte
		_, _ = p.Input.Read(key[:])
	}
	exit := p.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(1)
}
