package typeddata

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Field is one (name, type) pair in a struct type definition. Declaration
// order is significant: reordering fields changes the canonical type string
// and therefore the type hash.
type Field struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Types is a registry of named struct type definitions. A field's type may
// be a primitive (uint256, address, bytes32, string, bytes, bool, ...), the
// name of another entry in the registry, or an array of either ("uint256[]",
// "Person[]", "bytes32[4]").
type Types map[string][]Field

// Value is one instance of a struct type: a mapping from field name to a
// primitive value, a nested Value, or a slice of either.
type Value map[string]any

// parseArrayType splits an array type into its element type and fixed size.
// size is -1 for dynamic arrays. ok is false if typ is not an array type.
func parseArrayType(typ string) (elem string, size int, ok bool) {
	if !strings.HasSuffix(typ, "]") {
		return "", 0, false
	}
	open := strings.LastIndex(typ, "[")
	if open <= 0 {
		return "", 0, false
	}
	elem = typ[:open]
	inner := typ[open+1 : len(typ)-1]
	if inner == "" {
		return elem, -1, true
	}
	n, err := strconv.Atoi(inner)
	if err != nil || n < 0 {
		return "", 0, false
	}
	return elem, n, true
}

// dependencies gathers the names of every struct type reachable from
// primary, primary itself included, in discovery order.
func (t Types) dependencies(primary string, found []string) []string {
	includes := func(arr []string, s string) bool {
		for _, e := range arr {
			if e == s {
				return true
			}
		}
		return false
	}
	if elem, _, ok := parseArrayType(primary); ok {
		primary = elem
	}
	if includes(found, primary) || t[primary] == nil {
		return found
	}
	found = append(found, primary)
	for _, field := range t[primary] {
		for _, dep := range t.dependencies(field.Type, found) {
			if !includes(found, dep) {
				found = append(found, dep)
			}
		}
	}
	return found
}

// encodeType builds the canonical type string for primary: its own
// definition followed by the definitions of all referenced struct types,
// each once, sorted lexicographically by name.
func (t Types) encodeType(primary string) (string, error) {
	if t[primary] == nil {
		return "", errors.Wrapf(ErrUnsupportedType, "type %q is not defined", primary)
	}
	deps := t.dependencies(primary, nil)
	// The suffix ordering rule is what makes two implementations agree on a
	// hash: everything after the primary type is sorted by name.
	referenced := append([]string{}, deps[1:]...)
	sort.Strings(referenced)
	deps = append(deps[:1], referenced...)

	var b strings.Builder
	for _, dep := range deps {
		b.WriteString(dep)
		b.WriteByte('(')
		for i, field := range t[dep] {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(field.Type)
			b.WriteByte(' ')
			b.WriteString(field.Name)
		}
		b.WriteByte(')')
	}
	return b.String(), nil
}
