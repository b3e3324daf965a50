package bootfmt

import (
	"errors"
	"fmt"
	"math/bits"
	"reflect"
	"unsafe"

	"go.uber.org/zap"
)

// Kind is the storage type resolved for one argument slot. It decides how
// many bits are taken from the argument and whether they are sign or zero
// extended.
type Kind int

// The signed kinds precede the unsigned ones in the same order, so a length
// modifier (-2 for hh up to +2 for ll) can be added to KindInt32 or
// KindUint32.
const (
	KindInt8 Kind = iota
	KindInt16
	KindInt32
	KindLong
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUlong
	KindUint64
)

var kindNames = [...]string{
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindLong:   "long",
	KindInt64:  "int64",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUlong:  "ulong",
	KindUint64: "uint64",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Signed reports whether the kind sign-extends.
func (k Kind) Signed() bool { return k <= KindInt64 }

// narrow truncates v to the kind's width and extends it back to 64 bits.
func (k Kind) narrow(v uint64) int64 {
	switch k {
	case KindInt8:
		return int64(int8(v))
	case KindInt16:
		return int64(int16(v))
	case KindInt32:
		return int64(int32(v))
	case KindLong:
		if bits.UintSize == 32 {
			return int64(int32(v))
		}
		return int64(v)
	case KindUint8:
		return int64(uint8(v))
	case KindUint16:
		return int64(uint16(v))
	case KindUint32:
		return int64(uint32(v))
	case KindUlong:
		if bits.UintSize == 32 {
			return int64(uint32(v))
		}
		return int64(v)
	default:
		return int64(v)
	}
}

// pointerKind is the kind of p and s slots: a word-sized unsigned integer.
func pointerKind() Kind {
	if bits.UintSize == 64 {
		return KindUint64
	}
	return KindUint32
}

// Arg is one slot of the argument table.
type Arg struct {
	// Kind is the resolved storage type.
	Kind Kind
	// Conv is the conversion letter that last referenced the slot, or 0 if
	// no conversion did.
	Conv byte
	// Marker is the extension marker that claimed the conversion, or 0.
	// A claimed p slot accepts any value; the extension decides whether it
	// can print it.
	Marker byte
	// Value is the argument narrowed to Kind and extended to 64 bits. For p
	// conversions it holds the address.
	Value int64
	// Ref is the caller's value for s and p conversions.
	Ref any
}

// inlineSlots is how many slots a table holds without allocating.
const inlineSlots = 32

// slotSize is the storage each slot needs in the allocation budget.
const slotSize = int(unsafe.Sizeof(int64(0)))

type table struct {
	inline [inlineSlots]Arg
	slots  []Arg
}

// init sizes the table for count slots. Up to inlineSlots are stored
// inline; a larger table is allocated through alloc, and when that is
// refused the table keeps the inline capacity and later slots are dropped.
func (t *table) init(count int, alloc Allocator) {
	if count <= inlineSlots {
		t.slots = t.inline[:count]
		return
	}
	if alloc.Allocate(count * slotSize) {
		t.slots = make([]Arg, count)
		return
	}
	Logger().Warn("argument table allocation failed, truncating",
		zap.Int("count", count),
		zap.Int("inline", inlineSlots))
	t.slots = t.inline[:]
}

// extract fills the slots from args, argument i going to slot i. Slots
// without a matching argument keep a zero value. Every problem is
// collected in the returned error; the table is filled regardless.
func (t *table) extract(args []any) error {
	var errs []error
	for i := range t.slots {
		if i >= len(args) {
			errs = append(errs, fmt.Errorf("%w: %d of %d", ErrMissingArg, i+1, len(t.slots)))
			continue
		}
		if err := t.slots[i].set(args[i]); err != nil {
			errs = append(errs, fmt.Errorf("argument %d: %w", i+1, err))
		}
	}
	if len(args) > len(t.slots) {
		errs = append(errs, fmt.Errorf("%w: got %d, format uses %d", ErrExtraArg, len(args), len(t.slots)))
	}
	return errors.Join(errs...)
}

// set stores v in the slot according to its conversion.
func (a *Arg) set(v any) error {
	switch a.Conv {
	case 's':
		switch x := v.(type) {
		case nil:
		case string, []byte:
			a.Ref = x
		case *string:
			if x != nil {
				a.Ref = *x
			}
		case error:
			a.Ref = x.Error()
		case fmt.Stringer:
			a.Ref = x.String()
		default:
			return fmt.Errorf("%w: %T for %%s", ErrArgType, v)
		}
		return nil
	case 'p':
		a.Ref = v
		addr, ok := addressOf(v)
		a.Value = a.Kind.narrow(addr)
		if !ok && a.Marker == 0 {
			return fmt.Errorf("%w: %T for %%p", ErrArgType, v)
		}
		return nil
	}

	n, ok := integerOf(v)
	a.Value = a.Kind.narrow(n)
	if !ok && a.Conv != 0 {
		return fmt.Errorf("%w: %T for %%%c", ErrArgType, v, a.Conv)
	}
	return nil
}

// integerOf returns the two's complement bits of an integer value.
func integerOf(v any) (uint64, bool) {
	switch x := v.(type) {
	case int:
		return uint64(x), true
	case int8:
		return uint64(x), true
	case int16:
		return uint64(x), true
	case int32:
		return uint64(x), true
	case int64:
		return uint64(x), true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case uintptr:
		return uint64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case nil:
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
}

// addressOf returns the address held by a pointer-like value. Integers are
// taken as addresses and nil is address zero.
func addressOf(v any) (uint64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case unsafe.Pointer:
		return uint64(uintptr(x)), true
	}
	if n, ok := integerOf(v); ok {
		return n, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return uint64(rv.Pointer()), true
	}
	return 0, false
}
