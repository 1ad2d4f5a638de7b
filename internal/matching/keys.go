package matching

// Row is the read-only view of an input record the builder needs. Field
// reports false when the column is missing or has no value.
type Row interface {
	Field(name string) (string, bool)
}

// Key is a canonical comparison key of the form "<group>:<value>".
type Key string

// NewKey tags a normalized value with its field group.
func NewKey(group FieldGroup, value string) Key {
	return Key(string(group) + ":" + value)
}

// KeyBuilder extracts canonical keys for a fixed list of field groups.
type KeyBuilder struct {
	groups  []FieldGroup
	columns map[FieldGroup][]string
}

// NewKeyBuilder constructs a builder. A nil or partial columns map falls back
// to DefaultColumns for the missing groups.
func NewKeyBuilder(groups []FieldGroup, columns map[FieldGroup][]string) *KeyBuilder {
	resolved := DefaultColumns()
	for group, cols := range columns {
		if len(cols) == 0 {
			continue
		}
		resolved[group] = append([]string(nil), cols...)
	}
	return &KeyBuilder{
		groups:  append([]FieldGroup(nil), groups...),
		columns: resolved,
	}
}

// Build returns the keys derivable from row, deduplicated across all groups
// with first-occurrence order preserved.
func (b *KeyBuilder) Build(row Row) []Key {
	var keys []Key
	seen := make(map[Key]struct{})
	for _, group := range b.groups {
		for _, column := range b.columns[group] {
			raw, ok := row.Field(column)
			if !ok {
				continue
			}
			value := group.Normalize(raw)
			if value == "" {
				continue
			}
			key := NewKey(group, value)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}
