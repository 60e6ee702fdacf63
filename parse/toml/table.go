package toml

// Table is an ordered mapping from non-empty key to an owning child node.
// Keys are unique within a table. Iteration order is insertion order,
// kept deterministic via a parallel order slice alongside the map — the
// writer independently sorts for canonical output (§4.5), so in-memory
// order need only be internally consistent, not sorted.
//
// inline marks a table authored with {...}; once set it is frozen, and
// the parser refuses to append to it via a later header (§4.6).
//
// implicit marks a table the parser created only as a path prefix for a
// dotted key or a deeper header (e.g. `a` when only `[a.b]` was ever
// written) rather than one named by its own header line. A later `[a]`
// header line may claim it only if it is non-empty and holds no direct
// value child, i.e. no scalar and no plain (non-table) array (e.g. `a.b = 1` then `[a]` is a redefinition,
// because `a` would otherwise pick up `b` as a value alongside the
// header's own keys) — a second claim, or any header line naming a
// table that was already claimed, is also a redefinition error. This
// mirrors the implicit/explicit distinction the TOML reference decoder
// tracks per table.
type Table struct {
	items    map[string]Node
	order    []string
	inline   bool
	implicit bool
}

func NewTable() *Table {
	return &Table{items: make(map[string]Node)}
}

func (t *Table) Kind() Kind { return KindTable }

func (t *Table) Inline() bool { return t.inline }

// SetInline marks the table frozen; used only by the parser when closing
// a `{...}` literal.
func (t *Table) SetInline(v bool) { t.inline = v }

func (t *Table) Len() int { return len(t.items) }

func (t *Table) Contains(key string) bool {
	_, ok := t.items[key]
	return ok
}

// At returns the child stored at key, or (nil, false) if absent.
func (t *Table) At(key string) (Node, bool) {
	n, ok := t.items[key]
	return n, ok
}

// InsertOrAssign stores n at key, overwriting any existing entry. Use
// Emplace instead when overwrite should be rejected.
func (t *Table) InsertOrAssign(key string, n Node) {
	if _, exists := t.items[key]; !exists {
		t.order = append(t.order, key)
	}
	t.items[key] = n
}

// Emplace stores n at key only if key is absent; returns the node
// actually stored (existing or new) and whether an insertion happened.
func (t *Table) Emplace(key string, n Node) (Node, bool) {
	if existing, ok := t.items[key]; ok {
		return existing, false
	}
	t.items[key] = n
	t.order = append(t.order, key)
	return n, true
}

// Erase removes key, reporting whether it was present.
func (t *Table) Erase(key string) bool {
	if _, ok := t.items[key]; !ok {
		return false
	}
	delete(t.items, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Range visits every entry in insertion order.
func (t *Table) Range(f func(key string, n Node) bool) {
	for _, k := range t.order {
		if !f(k, t.items[k]) {
			return
		}
	}
}

// hasValueChild reports whether t directly holds a child that is a value
// rather than a table — a scalar, or a plain (non-table) array. Such a
// child makes t ineligible to be claimed by a later header line, even
// if t itself is still marked implicit.
func (t *Table) hasValueChild() bool {
	for _, n := range t.items {
		switch c := n.(type) {
		case *Table:
			continue
		case *Array:
			if !c.IsTableArray() {
				return true
			}
		default:
			return true
		}
	}
	return false
}

func (t *Table) Clone() Node {
	out := &Table{
		items:    make(map[string]Node, len(t.items)),
		order:    append([]string(nil), t.order...),
		inline:   t.inline,
		implicit: t.implicit,
	}
	for k, v := range t.items {
		out.items[k] = v.Clone()
	}
	return out
}
