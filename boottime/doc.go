// Package boottime records timestamped boot events and reports them.
//
// A [Log] is created at the start of boot. Each [Log.Record] (or [Log.Mark],
// which fills in the caller's file and line) formats its message with the
// bootfmt engine and stores it with the milliseconds elapsed since the Log
// was created:
//
//	bt := boottime.New(printer, nil)
//	bt.Mark("loaded %s (%llu bytes)", path, size)
//
// Recording never fails. When the printer's allocator refuses the message
// buffer the event is dropped.
//
// # Reports
//
// [Write] and [Log.Write] render entries as JSON, JSONL, YAML, CSV, TSV, a
// bordered table, or plain lines. [ParseFormat] converts a flag value into a
// [Format].
package boottime
