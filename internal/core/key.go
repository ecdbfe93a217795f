package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// keyVariant orders the Key variants for the total order: variant tags
// compare before content.
type keyVariant int

const (
	variantMap keyVariant = iota
	variantSeq
	variantString
	variantPath
)

// Key is a structural identity value used to disambiguate resources of the
// same kind. Keys support equality and a total order and render as readable
// nested structures; they are never consulted by Verify/Realize logic.
type Key struct {
	variant keyVariant
	str     string   // variantString and variantPath
	seq     []Key    // variantSeq and variantMap values
	fields  []string // variantMap field names, parallel to seq, sorted
}

// StringKey returns a key based on a string value.
func StringKey(s string) Key {
	return Key{variant: variantString, str: s}
}

// PathKey returns a key based on a file system path.
func PathKey(p string) Key {
	return Key{variant: variantPath, str: p}
}

// SeqKey returns a composite key of several ordered keys. Order is
// significant.
func SeqKey(keys ...Key) Key {
	seq := make([]Key, len(keys))
	copy(seq, keys)
	return Key{variant: variantSeq, seq: seq}
}

// MapKey returns a composite key of named fields. Fields are canonically
// ordered by name, so construction order does not affect equality or display.
func MapKey(fields map[string]Key) Key {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	seq := make([]Key, len(names))
	for i, name := range names {
		seq[i] = fields[name]
	}
	return Key{variant: variantMap, seq: seq, fields: names}
}

// Equal reports whether both keys have the same variant and content.
func (k Key) Equal(other Key) bool {
	return k.Compare(other) == 0
}

// Compare imposes a total order on keys: variant tag first, then content.
// Returns -1, 0 or 1.
func (k Key) Compare(other Key) int {
	if k.variant != other.variant {
		if k.variant < other.variant {
			return -1
		}
		return 1
	}

	switch k.variant {
	case variantString, variantPath:
		return strings.Compare(k.str, other.str)
	case variantMap:
		// Fields are sorted at construction, so pairwise comparison of
		// (name, value) gives a deterministic order.
		for i := range k.seq {
			if i >= len(other.seq) {
				return 1
			}
			if c := strings.Compare(k.fields[i], other.fields[i]); c != 0 {
				return c
			}
			if c := k.seq[i].Compare(other.seq[i]); c != 0 {
				return c
			}
		}
		if len(k.seq) < len(other.seq) {
			return -1
		}
		return 0
	default: // variantSeq
		for i := range k.seq {
			if i >= len(other.seq) {
				return 1
			}
			if c := k.seq[i].Compare(other.seq[i]); c != 0 {
				return c
			}
		}
		if len(k.seq) < len(other.seq) {
			return -1
		}
		return 0
	}
}

// String renders the key as a readable nested structure: maps as
// {field: value, ...}, sequences as [v1, v2, ...], strings and paths quoted.
func (k Key) String() string {
	switch k.variant {
	case variantMap:
		var b strings.Builder
		b.WriteString("{")
		for i, name := range k.fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %s", name, k.seq[i])
		}
		b.WriteString("}")
		return b.String()
	case variantSeq:
		parts := make([]string, len(k.seq))
		for i, sub := range k.seq {
			parts[i] = sub.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return strconv.Quote(k.str)
	}
}

// canonical returns an unambiguous encoding of the key, used as the map key
// for declaration identities. Unlike String it never collides across
// variants.
func (k Key) canonical() string {
	switch k.variant {
	case variantMap:
		var b strings.Builder
		b.WriteString("m{")
		for i, name := range k.fields {
			b.WriteString(strconv.Quote(name))
			b.WriteString("=")
			b.WriteString(k.seq[i].canonical())
			b.WriteString(";")
		}
		b.WriteString("}")
		return b.String()
	case variantSeq:
		var b strings.Builder
		b.WriteString("s[")
		for _, sub := range k.seq {
			b.WriteString(sub.canonical())
			b.WriteString(";")
		}
		b.WriteString("]")
		return b.String()
	case variantPath:
		return "p" + strconv.Quote(k.str)
	default:
		return "t" + strconv.Quote(k.str)
	}
}
