package skemap

// Deserialize converts raw into the in-memory shape of typeName. Objects are
// rewritten in place: each declared property found under its serialized name
// is deserialized by its type node and stored under its local name. Values
// that do not fit the descriptor are left as they are; the only error is an
// *UnknownTypeError for a broken model graph. Validation is a separate step.
func (e *Engine) Deserialize(typeName string, raw any) (any, error) {
	m, err := e.resolve(typeName, "")
	if err != nil {
		return nil, err
	}
	return e.DeserializeMapper(m, raw)
}

// DeserializeMapper is Deserialize with an explicit descriptor.
func (e *Engine) DeserializeMapper(m *Mapper, raw any) (any, error) {
	return e.deserializeModel(m, raw)
}

type moved struct {
	prop  Property
	wire  []string
	value any
}

func (e *Engine) deserializeModel(m *Mapper, v any) (any, error) {
	if isNull(v) {
		return nil, nil
	}
	if m.Elements != nil {
		if _, isObj := v.(map[string]any); !isObj {
			return e.deserializeNode(m.ClassName, "", Sequence(*m.Elements), v)
		}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		if obj, ok = asObject(v); !ok {
			return v, nil
		}
	}
	// Read every property before writing any, so a local name that equals
	// another property's wire name cannot shadow it.
	var pending []moved
	for _, p := range m.ModelProperties {
		wp := p.WirePath()
		fv, found := wireGet(obj, wp)
		if !found || isNull(fv) {
			continue
		}
		nv, err := e.deserializeNode(m.ClassName, p.Name, p.Type, fv)
		if err != nil {
			return nil, err
		}
		pending = append(pending, moved{prop: p, wire: wp, value: nv})
	}
	for _, mv := range pending {
		if len(mv.wire) > 1 || mv.wire[0] != mv.prop.Name {
			wireDelete(obj, mv.wire)
		}
	}
	for _, mv := range pending {
		obj[mv.prop.Name] = mv.value
	}
	return obj, nil
}

func (e *Engine) deserializeNode(owner, field string, n TypeNode, v any) (any, error) {
	if isNull(v) {
		return nil, nil
	}
	switch n.Name {
	case TypeComposite:
		m, err := e.resolve(n.ClassName, owner+"."+field)
		if err != nil {
			return nil, err
		}
		return e.deserializeModel(m, v)
	case TypeSequence:
		items, ok := asSlice(v)
		if !ok || n.Element == nil {
			return v, nil
		}
		for i, it := range items {
			nv, err := e.deserializeNode(owner, field, *n.Element, it)
			if err != nil {
				return nil, err
			}
			items[i] = nv
		}
		return items, nil
	case TypeDictionary:
		dict, ok := v.(map[string]any)
		if !ok || n.Value == nil {
			return v, nil
		}
		for k, it := range dict {
			nv, err := e.deserializeNode(owner, field, *n.Value, it)
			if err != nil {
				return nil, err
			}
			dict[k] = nv
		}
		return dict, nil
	}
	if e.decodeFormats && n.Name.IsPrimitive() {
		return decodeFormatted(n.Name, v), nil
	}
	return v, nil
}
