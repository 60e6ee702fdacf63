package toml

import "strings"

// View is a non-owning, nullable handle over a Node. A zero View (or one
// wrapping a nil Node) is the null view; every operation on it is
// well-defined and returns the null/absent/false result — nothing ever
// panics because the view was null.
type View struct {
	n Node
}

// NewView wraps n. Passing nil produces the null view.
func NewView(n Node) View { return View{n: n} }

// Node returns the underlying node, or nil for the null view.
func (v View) Node() Node { return v.n }

func (v View) IsNull() bool { return v.n == nil }

func (v View) IsValue() bool {
	if v.n == nil {
		return false
	}
	switch v.n.Kind() {
	case KindTable, KindArray, KindTableArray:
		return false
	default:
		return true
	}
}

func (v View) IsTable() bool { return v.n != nil && v.n.Kind() == KindTable }

func (v View) IsArray() bool {
	if v.n == nil {
		return false
	}
	k := v.n.Kind()
	return k == KindArray || k == KindTableArray
}

func (v View) IsTableArray() bool {
	a, ok := v.n.(*Array)
	return ok && a.IsTableArray()
}

func (v View) IsString() bool  { return v.kindIs(KindString) }
func (v View) IsInteger() bool { return v.kindIs(KindInteger) }
func (v View) IsFloat() bool   { return v.kindIs(KindFloat) }
func (v View) IsBoolean() bool { return v.kindIs(KindBoolean) }

func (v View) IsOffsetDateTime() bool { return v.kindIs(KindOffsetDateTime) }
func (v View) IsLocalDateTime() bool  { return v.kindIs(KindLocalDateTime) }
func (v View) IsLocalDate() bool      { return v.kindIs(KindLocalDate) }
func (v View) IsLocalTime() bool      { return v.kindIs(KindLocalTime) }

func (v View) kindIs(k Kind) bool { return v.n != nil && v.n.Kind() == k }

// At indexes by string key, splitting on the first '.' and recursing on
// the remainder — this is the source's documented (if surprising) dotted
// accessor, not a literal-key lookup. Use AtLiteral to bypass the split.
func (v View) At(key string) View {
	if v.n == nil {
		return View{}
	}
	head, rest, dotted := strings.Cut(key, ".")
	t, ok := v.n.(*Table)
	if !ok {
		return View{}
	}
	child, ok := t.At(head)
	if !ok {
		return View{}
	}
	if !dotted {
		return View{n: child}
	}
	return View{n: child}.At(rest)
}

// AtLiteral looks up key as a single literal segment, with no dot
// splitting — the escape hatch §9 calls for so callers can address keys
// that themselves contain '.'.
func (v View) AtLiteral(key string) View {
	t, ok := v.n.(*Table)
	if !ok {
		return View{}
	}
	child, ok := t.At(key)
	if !ok {
		return View{}
	}
	return View{n: child}
}

// AtIndex indexes by position when the view holds an array.
func (v View) AtIndex(i int) View {
	a, ok := v.n.(*Array)
	if !ok {
		return View{}
	}
	child, ok := a.At(i)
	if !ok {
		return View{}
	}
	return View{n: child}
}

// Contains applies the same dotted-path split as At and reports whether
// the final segment resolves to a non-null node.
func (v View) Contains(dottedKey string) bool {
	return !v.At(dottedKey).IsNull()
}

// Len reports the element/entry count for array and table views, 0
// otherwise.
func (v View) Len() int {
	switch n := v.n.(type) {
	case *Array:
		return n.Len()
	case *Table:
		return n.Len()
	default:
		return 0
	}
}

// valueFromNode applies the promotion rules of §4.1 to extract a T from
// n. Shared by View.Value and Array.Collect.
func valueFromNode[T any](n Node) (T, bool) {
	var zero T
	s, ok := n.(*Scalar)
	if !ok {
		return zero, false
	}
	if !canPromote[T](s.kind) {
		return zero, false
	}
	return promote[T](s)
}

func promote[T any](s *Scalar) (T, bool) {
	var zero T
	want := classify[T]()
	switch want {
	case KindString:
		sv, ok := s.v.(string)
		if !ok {
			return zero, false
		}
		return any(sv).(T), true
	case KindBoolean:
		bv, ok := s.v.(bool)
		if !ok {
			return zero, false
		}
		return any(bv).(T), true
	case KindInteger:
		iv, ok := s.v.(int64)
		if !ok {
			return zero, false
		}
		nv, ok := narrowInt[T](iv)
		if !ok {
			return zero, false
		}
		return nv, true
	case KindFloat:
		switch raw := s.v.(type) {
		case float64:
			return widenFloat[T](raw)
		case int64:
			return widenFloat[T](float64(raw))
		default:
			return zero, false
		}
	case KindOffsetDateTime:
		switch raw := s.v.(type) {
		case OffsetDateTime:
			return any(raw).(T), true
		}
		return zero, false
	case KindLocalDateTime:
		switch raw := s.v.(type) {
		case LocalDateTime:
			return any(raw).(T), true
		case OffsetDateTime:
			return any(raw.ToLocalDateTime()).(T), true
		}
		return zero, false
	case KindLocalDate:
		switch raw := s.v.(type) {
		case LocalDate:
			return any(raw).(T), true
		case LocalDateTime:
			return any(raw.ToLocalDate()).(T), true
		case OffsetDateTime:
			return any(raw.ToLocalDate()).(T), true
		}
		return zero, false
	case KindLocalTime:
		if raw, ok := s.v.(LocalTime); ok {
			return any(raw).(T), true
		}
		return zero, false
	default:
		return zero, false
	}
}

// narrowInt converts a stored int64 to the requested integer type T,
// failing (rather than wrapping) when the value is not representable.
func narrowInt[T any](i int64) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int64:
		return any(i).(T), true
	case int:
		if int64(int(i)) != i {
			return zero, false
		}
		return any(int(i)).(T), true
	case int32:
		if i < -1<<31 || i > 1<<31-1 {
			return zero, false
		}
		return any(int32(i)).(T), true
	case int16:
		if i < -1<<15 || i > 1<<15-1 {
			return zero, false
		}
		return any(int16(i)).(T), true
	case int8:
		if i < -1<<7 || i > 1<<7-1 {
			return zero, false
		}
		return any(int8(i)).(T), true
	case uint64:
		if i < 0 {
			return zero, false
		}
		return any(uint64(i)).(T), true
	case uint:
		if i < 0 || uint64(i) > uint64(^uint(0)) {
			return zero, false
		}
		return any(uint(i)).(T), true
	case uint32:
		if i < 0 || i > 1<<32-1 {
			return zero, false
		}
		return any(uint32(i)).(T), true
	case uint16:
		if i < 0 || i > 1<<16-1 {
			return zero, false
		}
		return any(uint16(i)).(T), true
	case uint8:
		if i < 0 || i > 1<<8-1 {
			return zero, false
		}
		return any(uint8(i)).(T), true
	default:
		return zero, false
	}
}

func widenFloat[T any](f float64) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(f).(T), true
	case float32:
		return any(float32(f)).(T), true
	default:
		return zero, false
	}
}

// Value returns (value, true) if T can be retrieved from the viewed node
// under the promotion rules of §4.1, else (zero, false). A null view
// always yields (zero, false).
func Value[T any](v View) (T, bool) {
	var zero T
	if v.n == nil {
		return zero, false
	}
	return valueFromNode[T](v.n)
}

// ValueOr is Value with a caller-supplied fallback.
func ValueOr[T any](v View, def T) T {
	if val, ok := Value[T](v); ok {
		return val
	}
	return def
}

// ViewMap applies f to the retrieved value, returning (zero, false) if no
// value of T was retrievable. Named ViewMap (not Map) to avoid colliding
// with the builtin-adjacent convention other packages use for slices.
func ViewMap[T, U any](v View, f func(T) U) (U, bool) {
	var zero U
	val, ok := Value[T](v)
	if !ok {
		return zero, false
	}
	return f(val), true
}

// ViewCollect delegates to Array.Collect when the view holds an array.
func ViewCollect[T any](v View) []T {
	a, ok := v.n.(*Array)
	if !ok {
		return nil
	}
	return Collect[T](a)
}

// ViewMapCollect delegates to Array.MapCollect when the view holds an array.
func ViewMapCollect[T, U any](v View, f func(T) U) []U {
	a, ok := v.n.(*Array)
	if !ok {
		return nil
	}
	return MapCollect(a, f)
}
