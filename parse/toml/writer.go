package toml

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var bareKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Write emits the canonical TOML text form of n to w. A *Table root is
// written as a full document (§4.5); any other node is written as the
// single value token that would appear on the right-hand side of a
// key/value pair — useful for round-tripping individual values in tests,
// though it is not itself a standalone TOML document.
func Write(w io.Writer, n Node) error {
	bw := bufio.NewWriter(w)
	if t, ok := n.(*Table); ok {
		writeTableBody(bw, t, nil, 0)
	} else {
		bw.WriteString(inlineValue(n))
	}
	return bw.Flush()
}

// WriteString is Write into a string, for callers that do not have a
// stream handy (tests, the `fmt` CLI subcommand before it opens a file).
func WriteString(n Node) string {
	var b strings.Builder
	if t, ok := n.(*Table); ok {
		writeTableBody(&b, t, nil, 0)
	} else {
		b.WriteString(inlineValue(n))
	}
	return b.String()
}

type lineWriter interface {
	WriteString(string) (int, error)
}

func writeTableBody(w lineWriter, t *Table, path []string, depth int) {
	indent := strings.Repeat("    ", depth)

	var valueKeys, subKeys []string
	for _, k := range t.Keys() {
		n, _ := t.At(k)
		switch n.Kind() {
		case KindTable, KindTableArray:
			subKeys = append(subKeys, k)
		default:
			valueKeys = append(valueKeys, k)
		}
	}
	sort.Strings(valueKeys)
	sort.Strings(subKeys)

	for _, k := range valueKeys {
		n, _ := t.At(k)
		w.WriteString(indent)
		w.WriteString(keyToken(k))
		w.WriteString(" = ")
		w.WriteString(inlineValue(n))
		w.WriteString("\n")
	}

	for _, k := range subKeys {
		n, _ := t.At(k)
		childPath := append(append([]string(nil), path...), k)
		switch child := n.(type) {
		case *Table:
			w.WriteString(indent)
			w.WriteString("[")
			w.WriteString(dottedPath(childPath))
			w.WriteString("]\n")
			writeTableBody(w, child, childPath, depth+1)
		case *Array:
			for _, elemNode := range child.Elements() {
				elem := elemNode.(*Table)
				w.WriteString(indent)
				w.WriteString("[[")
				w.WriteString(dottedPath(childPath))
				w.WriteString("]]\n")
				writeTableBody(w, elem, childPath, depth+1)
			}
		}
	}
}

func keyToken(key string) string {
	if bareKeyPattern.MatchString(key) {
		return key
	}
	return `"` + escapeBasicString(key) + `"`
}

func dottedPath(parts []string) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = keyToken(p)
	}
	return strings.Join(out, ".")
}

func inlineValue(n Node) string {
	switch v := n.(type) {
	case *Scalar:
		return inlineScalar(v)
	case *Array:
		return inlineArray(v)
	case *Table:
		return inlineTable(v)
	default:
		return ""
	}
}

func inlineScalar(s *Scalar) string {
	switch s.kind {
	case KindString:
		return `"` + escapeBasicString(s.v.(string)) + `"`
	case KindInteger:
		return strconv.FormatInt(s.v.(int64), 10)
	case KindFloat:
		return formatFloat(s.v.(float64))
	case KindBoolean:
		if s.v.(bool) {
			return "true"
		}
		return "false"
	case KindOffsetDateTime:
		return s.v.(OffsetDateTime).String()
	case KindLocalDateTime:
		return s.v.(LocalDateTime).String()
	case KindLocalDate:
		return s.v.(LocalDate).String()
	case KindLocalTime:
		return s.v.(LocalTime).String()
	default:
		return ""
	}
}

func inlineArray(a *Array) string {
	elems := a.Elements()
	if len(elems) == 0 {
		return "[]"
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = inlineValue(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func inlineTable(t *Table) string {
	keys := append([]string(nil), t.Keys()...)
	sort.Strings(keys)
	if len(keys) == 0 {
		return "{}"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		n, _ := t.At(k)
		parts[i] = keyToken(k) + " = " + inlineValue(n)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// escapeBasicString escapes a string for inclusion inside a `"..."`
// literal: the named escapes from §4.5 plus \uXXXX for control points
// below U+0020 that have no shorthand. This is decodeBasicString's
// escape table run in reverse.
func escapeBasicString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// formatFloat renders f in the max-precision round-trippable form §4.5
// demands: inf/nan spellings for those special values, otherwise the
// shortest decimal that round-trips, forced to look like a float (never
// like a bare integer), with the exponent's sign kept and its leading
// zeros stripped — and the whole exponent suffix dropped outright when
// it is "e0"/"e-0", per the source's formatting quirk (§9).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa := s[:idx]
		exp := s[idx+1:]
		sign := "+"
		if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
			if exp[0] == '-' {
				sign = "-"
			}
			exp = exp[1:]
		}
		exp = strings.TrimLeft(exp, "0")
		if exp == "" {
			exp = "0"
		}
		if exp == "0" {
			s = mantissa
			if !strings.Contains(s, ".") {
				s += ".0"
			}
			return s
		}
		return mantissa + "e" + sign + exp
	}
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
