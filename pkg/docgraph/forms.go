package docgraph

// Field is one reconstructed form field.
type Field struct {
	Name  string
	Value string
}

// Fields reconstructs (name, value) pairs from KEY_VALUE_SET blocks, in the
// order KEY blocks appear in the response. Duplicate names stay separate
// entries. A key without a resolvable, non-empty value is dropped.
func (g *Graph) Fields() []Field {
	var fields []Field

	for _, b := range g.blocks {
		kv, ok := b.(KeyValueSet)

		if !ok || kv.Role != RoleKey {
			continue
		}

		name := g.text(kv)

		if name == "" {
			continue
		}

		value, ok := g.resolveValue(kv)

		if !ok || value == "" {
			continue
		}

		fields = append(fields, Field{
			Name:  name,
			Value: value,
		})
	}

	return fields
}

// resolveValue follows a KEY block's VALUE references and returns the text of
// the first one that resolves to a VALUE-role block.
func (g *Graph) resolveValue(key KeyValueSet) (string, bool) {
	for _, id := range key.Values {
		b, ok := g.lookup(id)

		if !ok {
			continue
		}

		value, ok := b.(KeyValueSet)

		if !ok || value.Role != RoleValue {
			continue
		}

		return g.text(value), true
	}

	return "", false
}
