package engine

import "sort"

// Entry is one key/value pair of a Keyed collection.
type Entry struct {
	Key   string
	Value any
}

// Keyed is an ordered keyed collection. AddKeyed appends its values in slice
// order and discards the keys.
type Keyed []Entry

// KeyedFromMap builds a Keyed collection from m. Go maps carry no order, so
// entries are sorted by key.
func KeyedFromMap(m map[string]any) Keyed {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(Keyed, 0, len(keys))
	for _, key := range keys {
		out = append(out, Entry{Key: key, Value: m[key]})
	}
	return out
}

// Values returns the collection values in order.
func (k Keyed) Values() []any {
	if len(k) == 0 {
		return nil
	}
	out := make([]any, len(k))
	for idx, entry := range k {
		out[idx] = entry.Value
	}
	return out
}
