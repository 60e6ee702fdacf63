package toml

import "fmt"

// Node is the tagged-union base of the document tree. Every node reports
// exactly one Kind, fixed at construction. Scalars carry their payload
// inline on Scalar; Array and Table are the two container kinds.
type Node interface {
	Kind() Kind
	// Clone returns a deep copy sharing no storage with the receiver.
	Clone() Node
}

// Scalar is a leaf node: one of String, Integer, Float, Boolean, or one
// of the four date-time kinds. The payload lives in v, typed according to
// kind (string, int64, float64, bool, LocalDate, LocalTime, LocalDateTime,
// OffsetDateTime) — this is the Go rendition of the source's tagged union,
// kept as a single struct rather than twelve node subclasses.
type Scalar struct {
	kind Kind
	v    any
}

func (s *Scalar) Kind() Kind { return s.kind }

func (s *Scalar) Clone() Node { return &Scalar{kind: s.kind, v: s.v} }

// raw returns the untyped payload, used by View and the writer.
func (s *Scalar) raw() any { return s.v }

// MakeValue constructs a fresh scalar node from a Go value whose static
// type classifies to one of the scalar kinds (§4.1). It panics on a type
// that does not classify — callers building trees programmatically are
// expected to pass TOML-representable types, the same contract the
// source's make_value<T> carries.
func MakeValue[T any](val T) Node {
	k := classify[T]()
	if k == KindNone {
		panic(fmt.Sprintf("toml: MakeValue: type %T does not classify to a TOML kind", val))
	}
	switch k {
	case KindInteger:
		return &Scalar{kind: KindInteger, v: toInt64(val)}
	case KindFloat:
		return &Scalar{kind: KindFloat, v: toFloat64(val)}
	default:
		return &Scalar{kind: k, v: any(val)}
	}
}

func toInt64(val any) int64 {
	switch v := any(val).(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case uint:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return int64(v)
	default:
		panic(fmt.Sprintf("toml: toInt64: unexpected type %T", val))
	}
}

func toFloat64(val any) float64 {
	switch v := any(val).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	default:
		panic(fmt.Sprintf("toml: toFloat64: unexpected type %T", val))
	}
}

// MakeTable constructs a fresh, empty, non-inline table node.
func MakeTable() *Table { return NewTable() }

// MakeArray constructs a fresh, empty array node.
func MakeArray() *Array { return NewArray() }
