package bootfmt_test

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bjaus/bootfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("write failed")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errWrite }

type label string

func (l label) String() string { return "label:" + string(l) }

type code uint16

func TestSprintf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   string
	}{
		"literal":              {format: "boot", want: "boot"},
		"percent":              {format: "100%%", want: "100%"},
		"zero":                 {format: "%d", args: []any{0}, want: "0"},
		"minus one":            {format: "%d", args: []any{-1}, want: "-1"},
		"min int64":            {format: "%lld", args: []any{int64(math.MinInt64)}, want: "-9223372036854775808"},
		"max int64":            {format: "%lld", args: []any{int64(math.MaxInt64)}, want: "9223372036854775807"},
		"max uint64":           {format: "%llu", args: []any{uint64(math.MaxUint64)}, want: "18446744073709551615"},
		"hex lower":            {format: "%x", args: []any{uint32(0xDEADBEEF)}, want: "deadbeef"},
		"hex upper":            {format: "%X", args: []any{int64(0xDEADBEEF)}, want: "DEADBEEF"},
		"unsigned of negative": {format: "%u", args: []any{-1}, want: "4294967295"},
		"int truncated":        {format: "%d", args: []any{int64(1<<32 + 5)}, want: "5"},
		"hh signed":            {format: "%hhd", args: []any{255}, want: "-1"},
		"hh unsigned":          {format: "%hhu", args: []any{0x1ff}, want: "255"},
		"h signed":             {format: "%hd", args: []any{0x18000}, want: "-32768"},
		"h hex":                {format: "%hx", args: []any{0x12345}, want: "2345"},
		"z hex":                {format: "%zx", args: []any{255}, want: "ff"},
		"mixed modifiers":      {format: "%hld", want: "ld"},
		"defined type":         {format: "%u", args: []any{code(7)}, want: "7"},
		"bool":                 {format: "%d", args: []any{true}, want: "1"},
		"positional swap":      {format: "%2$s %1$s", args: []any{"world", "hello"}, want: "hello world"},
		"positional reuse":     {format: "%1$d %1$x", args: []any{255}, want: "255 ff"},
		"positional width":     {format: "%1$-4d|", args: []any{7}, want: "7   |"},
		"positional range":     {format: "%3$d|%d", args: []any{1}, want: "|0"},
		"positional retyped":   {format: "%1$s %1$d", args: []any{"hi"}, want: "(null) 0"},
		"zero pad":             {format: "%05d", args: []any{42}, want: "00042"},
		"zero pad negative":    {format: "%05d", args: []any{-42}, want: "00-42"},
		"left":                 {format: "%-5d|", args: []any{42}, want: "42   |"},
		"width smaller":        {format: "%2d", args: []any{12345}, want: "12345"},
		"int ignores prec":     {format: "%.2d", args: []any{12345}, want: "12345"},
		"string width":         {format: "%8s|", args: []any{"boot"}, want: "    boot|"},
		"string precision":     {format: "%.3s", args: []any{"abcdef"}, want: "abc"},
		"string left prec":     {format: "%-6.2s|", args: []any{"abcdef"}, want: "ab    |"},
		"string nul":           {format: "%s", args: []any{"ab\x00cd"}, want: "ab"},
		"string bytes":         {format: "%s", args: []any{[]byte("raw")}, want: "raw"},
		"string pointer":       {format: "%s", args: []any{ptr("hd0")}, want: "hd0"},
		"string nil pointer":   {format: "%s", args: []any{(*string)(nil)}, want: "(null)"},
		"string error":         {format: "%s", args: []any{errors.New("boom")}, want: "boom"},
		"string stringer":      {format: "%s", args: []any{label("x")}, want: "label:x"},
		"null":                 {format: "%s", args: []any{nil}, want: "(null)"},
		"null width":           {format: "%8s", args: []any{nil}, want: "  (null)"},
		"pointer":              {format: "%p", args: []any{uintptr(0x1000)}, want: "0x1000"},
		"pointer nil":          {format: "%p", args: []any{nil}, want: "0x0"},
		"char":                 {format: "%c", args: []any{'A'}, want: "A"},
		"char low byte":        {format: "%c", args: []any{0x141}, want: "A"},
		"codepoint ascii":      {format: "%C", args: []any{'A'}, want: "A"},
		"codepoint two":        {format: "%C", args: []any{0xE9}, want: "\xc3\xa9"},
		"codepoint three":      {format: "%C", args: []any{0x20AC}, want: "\xe2\x82\xac"},
		"codepoint four":       {format: "%C", args: []any{0x1F600}, want: "\xf0\x9f\x98\x80"},
		"codepoint invalid":    {format: "%C", args: []any{0x110000}, want: "?"},
		"unknown letter":       {format: "%q%d", args: []any{7}, want: "q7"},
		"trailing percent":     {format: "abc%", want: "abc"},
		"missing argument":     {format: "%d|%s", args: []any{3}, want: "3|(null)"},
		"mistyped argument":    {format: "%d", args: []any{"x"}, want: "0"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bootfmt.Sprintf(tt.format, tt.args...))
		})
	}
}

func ptr(s string) *string { return &s }

func TestSnprintf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		size   int
		format string
		args   []any
		want   string
		n      int
	}{
		"fits":      {size: 16, format: "%s-%d", args: []any{"hello", 12345}, want: "hello-12345", n: 11},
		"truncated": {size: 8, format: "%s-%d", args: []any{"hello", 12345}, want: "hello-1", n: 11},
		"exact":     {size: 4, format: "abc", want: "abc", n: 3},
		"one short": {size: 3, format: "abc", want: "ab", n: 3},
		"one byte":  {size: 1, format: "abc", want: "", n: 3},
		"padding":   {size: 4, format: "%100000d", args: []any{1}, want: "   ", n: 100000},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			buf := bytes.Repeat([]byte{0xff}, tt.size)
			n := bootfmt.Snprintf(buf, tt.format, tt.args...)
			assert.Equal(t, tt.n, n)

			end := bytes.IndexByte(buf, 0)
			require.GreaterOrEqual(t, end, 0, "output must be terminated")
			assert.Equal(t, tt.want, string(buf[:end]))
			assert.Equal(t, min(n, tt.size-1), end)
		})
	}
}

func TestSnprintfEmptyBuffer(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 3, bootfmt.Snprintf(nil, "abc"))
	assert.Equal(t, 5, bootfmt.Snprintf([]byte{}, "%d", -1234))
}

func TestAsprintfMatchesSnprintf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
	}{
		"mixed":      {format: "%s=%08x (%d)", args: []any{"addr", 0xbeef, -3}},
		"positional": {format: "%2$s/%1$s", args: []any{"b", "a"}},
		"long":       {format: "%-300s|", args: []any{"x"}},
		"empty":      {format: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := bootfmt.Asprintf(tt.format, tt.args...)
			require.NoError(t, err)

			buf := make([]byte, 1024)
			n := bootfmt.Snprintf(buf, tt.format, tt.args...)
			assert.Equal(t, n, len(got))
			assert.Equal(t, string(buf[:n]), got)
		})
	}
}

func TestAsprintfBudget(t *testing.T) {
	t.Parallel()
	budget := &bootfmt.Budget{Limit: 6}
	p := &bootfmt.Printer{Alloc: budget}

	got, err := p.Asprintf("%s", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, 6, budget.Used())

	got, err = p.Asprintf("%s", "x")
	assert.ErrorIs(t, err, bootfmt.ErrNoMemory)
	assert.Empty(t, got)
	assert.Empty(t, p.Sprintf("x"))

	budget.Reset()
	assert.Equal(t, "x", p.Sprintf("x"))
}

func TestAppend(t *testing.T) {
	t.Parallel()
	got := bootfmt.Append([]byte("n="), "%d,%x", 10, 10)
	assert.Equal(t, "n=10,a", string(got))
	assert.Equal(t, "7", string(bootfmt.Append(nil, "%u", 7)))
}

func TestFprintf(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("a", 300)
	tests := map[string]struct {
		alloc bootfmt.Allocator
		arg   string
		want  string
		n     int
	}{
		"short":           {arg: "x", want: "x", n: 1},
		"long from heap":  {arg: long, want: long, n: 300},
		"long refused":    {alloc: &bootfmt.Budget{}, arg: long, want: long[:252] + "...", n: 300},
		"largest stacked": {alloc: &bootfmt.Budget{}, arg: long[:255], want: long[:255], n: 255},
		"first refused":   {alloc: &bootfmt.Budget{}, arg: long[:256], want: long[:252] + "...", n: 256},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			p := &bootfmt.Printer{Alloc: tt.alloc}
			n, err := p.Fprintf(&buf, "%s", tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFprintfWriteError(t *testing.T) {
	t.Parallel()
	n, err := bootfmt.Fprintf(errWriter{}, "abc")
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 3, n)
}

func TestPrintf(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := &bootfmt.Printer{Console: &buf}
	n, err := p.Printf("disk %d: %s\n", 0, "ok")
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "disk 0: ok\n", buf.String())
}

func TestManyArguments(t *testing.T) {
	t.Parallel()
	const count = 40
	format := strings.Repeat("%d,", count)
	args := make([]any, count)
	var all, inline strings.Builder
	for i := range count {
		args[i] = i
		all.WriteString(strconv.Itoa(i) + ",")
		if i < 32 {
			inline.WriteString(strconv.Itoa(i) + ",")
		} else {
			inline.WriteString(",")
		}
	}

	assert.Equal(t, all.String(), bootfmt.Sprintf(format, args...))

	budgeted := &bootfmt.Printer{Alloc: &bootfmt.Budget{Limit: 4096}}
	assert.Equal(t, all.String(), budgeted.Sprintf(format, args...))

	tight := &bootfmt.Printer{Alloc: &bootfmt.Budget{}}
	buf := make([]byte, 256)
	n := tight.Snprintf(buf, format, args...)
	assert.Equal(t, inline.String(), string(buf[:n]))
}

func TestCheck(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		args   []any
		want   []error
	}{
		"ok":                 {format: "%d %s %p %c", args: []any{1, "a", nil, 'x'}},
		"unreferenced slot":  {format: "%2$d", args: []any{"ignored", 2}},
		"percent only":       {format: "%%"},
		"int for string":     {format: "%s", args: []any{5}, want: []error{bootfmt.ErrArgType}},
		"string for int":     {format: "%d", args: []any{"x"}, want: []error{bootfmt.ErrArgType}},
		"nil for int":        {format: "%d", args: []any{nil}, want: []error{bootfmt.ErrArgType}},
		"string for pointer": {format: "%p", args: []any{"x"}, want: []error{bootfmt.ErrArgType}},
		"missing":            {format: "%d %d", args: []any{1}, want: []error{bootfmt.ErrMissingArg}},
		"extra":              {format: "%d", args: []any{1, 2}, want: []error{bootfmt.ErrExtraArg}},
		"several": {
			format: "%s %d",
			args:   []any{1},
			want:   []error{bootfmt.ErrArgType, bootfmt.ErrMissingArg},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := bootfmt.Check(tt.format, tt.args...)
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, target := range tt.want {
				assert.ErrorIs(t, err, target)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()
	slots := bootfmt.Resolve("%hhd %2$s %lld %%", nil)
	require.Len(t, slots, 3)
	assert.Equal(t, bootfmt.KindInt8, slots[0].Kind)
	assert.Equal(t, byte('d'), slots[0].Conv)
	assert.Equal(t, byte('s'), slots[1].Conv)
	assert.Equal(t, bootfmt.KindInt64, slots[2].Kind)
	assert.True(t, slots[2].Kind.Signed())
	assert.False(t, bootfmt.KindUint8.Signed())

	slots = bootfmt.Resolve("%pT %p %d", tag{})
	require.Len(t, slots, 3)
	assert.Equal(t, byte('T'), slots[0].Marker)
	assert.Zero(t, slots[1].Marker)
	assert.Zero(t, slots[2].Marker)
	assert.Zero(t, bootfmt.Resolve("%pT", nil)[0].Marker)
}

// bang renders "%d!" as <n> for non-negative values.
type bang struct{}

func (bang) Claims(conv, marker byte) bool { return conv == 'd' && marker == '!' }

func (bang) AppendFormat(dst []byte, _, _ byte, arg bootfmt.Arg) ([]byte, bool) {
	if arg.Value < 0 {
		return dst, false
	}
	dst = append(dst, '<')
	dst = bootfmt.AppendInt(dst, 'd', uint64(arg.Value))
	return append(dst, '>'), true
}

func TestExtension(t *testing.T) {
	t.Parallel()
	p := &bootfmt.Printer{Extension: bang{}}
	assert.Equal(t, "<1> -2 3", p.Sprintf("%d! %d! %d", 1, -2, 3))
	assert.Equal(t, "  <5>|", p.Sprintf("%5d!|", 5))
	assert.Equal(t, "1!", bootfmt.Sprintf("%d!", 1))
	assert.Equal(t, "  <5>|", p.Sprintf("%05d!|", 5))
	assert.Equal(t, "000-2", p.Sprintf("%05d!", -2))
}

// tag renders "%pT" of a string argument in brackets.
type tag struct{}

func (tag) Claims(conv, marker byte) bool { return conv == 'p' && marker == 'T' }

func (tag) AppendFormat(dst []byte, _, _ byte, arg bootfmt.Arg) ([]byte, bool) {
	s, ok := arg.Ref.(string)
	if !ok {
		return dst, false
	}
	return append(append(append(dst, '['), s...), ']'), true
}

func TestExtensionClaimedPointer(t *testing.T) {
	t.Parallel()
	p := &bootfmt.Printer{Extension: tag{}}
	tests := map[string]struct {
		format string
		args   []any
		want   string
		err    error
	}{
		"claimed":         {format: "%pT", args: []any{"hd0"}, want: "[hd0]"},
		"claimed pointer": {format: "%pT", args: []any{uintptr(0x10)}, want: "0x10"},
		"declined":        {format: "%pT", args: []any{1.5}, want: "0x0"},
		"unclaimed":       {format: "%p", args: []any{"hd0"}, want: "0x0", err: bootfmt.ErrArgType},
		"zero width":      {format: "%08pT", args: []any{"hd0"}, want: "   [hd0]"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.Sprintf(tt.format, tt.args...))
			err := p.Check(tt.format, tt.args...)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestBudget(t *testing.T) {
	t.Parallel()
	var zero bootfmt.Budget
	assert.False(t, zero.Allocate(1))
	assert.True(t, zero.Allocate(0))

	b := &bootfmt.Budget{Limit: 10}
	assert.True(t, b.Allocate(4))
	assert.False(t, b.Allocate(7))
	assert.True(t, b.Allocate(6))
	assert.False(t, b.Allocate(-1))
	assert.Equal(t, 10, b.Used())

	b.Reset()
	assert.Zero(t, b.Used())
	assert.True(t, b.Allocate(10))
}

func TestBudgetConcurrent(t *testing.T) {
	t.Parallel()
	b := &bootfmt.Budget{Limit: 100}
	var wg sync.WaitGroup
	var granted atomic.Int64
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if b.Allocate(3) {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(33), granted.Load())
	assert.Equal(t, 99, b.Used())
}
