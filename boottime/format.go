package boottime

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bjaus/bootfmt"
)

// ErrUnsupportedFormat is returned for a report format name that is not known.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is a report output format.
type Format string

const (
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
	CSV   Format = "csv"
	TSV   Format = "tsv"
	Table Format = "table"
	Plain Format = "plain"
)

var formats = []Format{JSON, JSONL, YAML, CSV, TSV, Table, Plain}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

var header = []string{"TIME", "SOURCE", "MESSAGE"}

// row returns the report columns of e: seconds with millisecond precision,
// file:line, and the message.
func (e Entry) row() []string {
	return []string{
		bootfmt.Sprintf("%lld.%03lld", e.Millis/1000, e.Millis%1000),
		e.File + ":" + strconv.Itoa(e.Line),
		e.Message,
	}
}

// Write reports entries to w in format f.
func Write(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case JSON:
		return writeJSON(w, entries)
	case JSONL:
		return writeJSONL(w, entries)
	case YAML:
		return writeYAML(w, entries)
	case CSV:
		return writeCSV(w, entries)
	case TSV:
		return writeTSV(w, entries)
	case Table:
		return writeTable(w, entries)
	case Plain:
		return writePlain(w, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal reports entries in format f and returns the bytes.
func Marshal(f Format, entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write reports the recorded entries to w in format f.
func (l *Log) Write(w io.Writer, f Format) error {
	return Write(w, f, l.Entries())
}
