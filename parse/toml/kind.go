// Package toml implements a production-grade TOML parser with a strong
// internal AST, deterministic semantics, and safe post-parse operations.
//
// Scope:
// - TOML v1.0.0-rc1 core features
// - Explicit AST (Table / Array / scalar values)
// - Safe dotted-key handling
// - Table extension semantics
// - Deterministic errors
// - Canonical serialization (Writer)
//
// Non-goals (by design):
// - Comment preservation
// - In-place mutation beyond construction
// - Streaming/incremental parse across calls
//
// This implementation is suitable for production use as a configuration
// ingestion layer.
package toml

import "fmt"

// Kind is the closed enumeration of node kinds. TableArray is not a
// distinct storage tag: it is the derived label an Array reports when
// every one of its elements is a Table. The raw storage kind for that
// case is still KindArray; see Array.IsTableArray.
type Kind uint8

const (
	KindNone Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindOffsetDateTime
	KindLocalDateTime
	KindLocalDate
	KindLocalTime
	KindArray
	KindTable
	KindTableArray
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindOffsetDateTime:
		return "offset_datetime"
	case KindLocalDateTime:
		return "local_datetime"
	case KindLocalDate:
		return "local_date"
	case KindLocalTime:
		return "local_time"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	case KindTableArray:
		return "table_array"
	default:
		panic(fmt.Errorf("toml: Kind.String() not implemented for %d", uint8(k)))
	}
}

// classify maps a caller-supplied static type T to the Kind it is stored
// as. It is used by value-construction helpers (MakeValue) and by the
// generic retrieval helpers in view.go.
func classify[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindString
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindFloat
	case bool:
		return KindBoolean
	case OffsetDateTime:
		return KindOffsetDateTime
	case LocalDateTime:
		return KindLocalDateTime
	case LocalDate:
		return KindLocalDate
	case LocalTime:
		return KindLocalTime
	default:
		return KindNone
	}
}

// canPromote reports whether a value stored as `stored` may be retrieved
// as a requested T, per spec's promotion table:
//
//	Integer -> Float (widening)
//	OffsetDateTime -> LocalDateTime -> LocalDate (stripping)
//	any date-time -> itself
//	String -> string
//
// All other cross-kind requests are rejected.
func canPromote[T any](stored Kind) bool {
	want := classify[T]()
	if want == stored {
		return true
	}
	switch stored {
	case KindInteger:
		return want == KindFloat
	case KindOffsetDateTime:
		return want == KindLocalDateTime || want == KindLocalDate
	case KindLocalDateTime:
		return want == KindLocalDate
	}
	return false
}
