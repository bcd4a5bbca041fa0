package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ClassKey identifies a customer class network-wide, e.g. "Class 1".
type ClassKey string

const classKeyPrefix = "Class "

// ClassKeyFor builds the key for an integer class identifier.
func ClassKeyFor(id int) ClassKey {
	return ClassKey(fmt.Sprintf("%s%d", classKeyPrefix, id))
}

// ID returns the integer class identifier encoded in the key.
func (k ClassKey) ID() (int, bool) {
	s, ok := strings.CutPrefix(string(k), classKeyPrefix)
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SortClassKeys sorts keys by class identifier. Keys without a numeric
// identifier sort after numeric ones, lexically.
func SortClassKeys(keys []ClassKey) {
	sort.Slice(keys, func(i, j int) bool {
		a, aok := keys[i].ID()
		b, bok := keys[j].ID()
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return keys[i] < keys[j]
		}
	})
}

// SortedClassKeys returns the keys of m in class order.
func SortedClassKeys[V any](m map[ClassKey]V) []ClassKey {
	keys := make([]ClassKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortClassKeys(keys)
	return keys
}
