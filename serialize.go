package skemap

// Serialize is the outbound inverse of Deserialize. obj is keyed by local
// property names (typed structs are accepted through their JSON encoding).
// The result is a fresh wire tree that contains only declared, writable
// properties under their serialized names: read-only and undeclared fields
// are never emitted. A missing required writable property, an enum value
// outside its set or a wrongly typed primitive is an error.
//
// Round trips are lossy by construction: Deserialize(Serialize(x)) equals x
// restricted to the writable declared properties.
func (e *Engine) Serialize(typeName string, obj any) (any, error) {
	m, err := e.resolve(typeName, "")
	if err != nil {
		return nil, err
	}
	return e.SerializeMapper(m, obj)
}

// SerializeMapper is Serialize with an explicit descriptor.
func (e *Engine) SerializeMapper(m *Mapper, obj any) (any, error) {
	return e.serializeModel(m, obj, RootPath())
}

func (e *Engine) serializeModel(m *Mapper, v any, path PathRef) (any, error) {
	if isNull(v) {
		return nil, &MissingValueError{TypeName: m.ClassName, Path: path.Pointer()}
	}
	if m.Elements != nil {
		if _, isObj := v.(map[string]any); !isObj {
			return e.serializeNode(m.ClassName, "", Sequence(*m.Elements), v, path)
		}
	}
	src, ok := asObject(v)
	if !ok {
		return nil, &TypeMismatchError{TypeName: m.ClassName, Path: path.Pointer(), Expected: TypeComposite, Got: describe(v)}
	}
	out := make(map[string]any, len(m.ModelProperties))
	for _, p := range m.ModelProperties {
		if p.ReadOnly {
			continue
		}
		wp := p.WirePath()
		fv := src[p.Name]
		if isNull(fv) {
			if p.Required {
				return nil, &MissingFieldError{TypeName: m.ClassName, Field: p.Name, Path: path.Field(p.Name).Pointer()}
			}
			continue
		}
		sv, err := e.serializeNode(m.ClassName, p.Name, p.Type, fv, path.Field(p.Name))
		if err != nil {
			return nil, err
		}
		wireSet(out, wp, sv)
	}
	return out, nil
}

func (e *Engine) serializeNode(owner, field string, n TypeNode, v any, path PathRef) (any, error) {
	if isNull(v) {
		return nil, nil
	}
	switch n.Name {
	case TypeEnum:
		if s, ok := v.(string); !ok || !n.allows(s) {
			return nil, &InvalidEnumValueError{TypeName: owner, Field: field, Path: path.Pointer(), Value: v, Allowed: n.AllowedValues}
		}
		return v, nil
	case TypeComposite:
		m, err := e.resolve(n.ClassName, owner+"."+field)
		if err != nil {
			return nil, err
		}
		return e.serializeModel(m, v, path)
	case TypeSequence:
		items, ok := asSlice(v)
		if !ok {
			return nil, &TypeMismatchError{TypeName: owner, Field: field, Path: path.Pointer(), Expected: TypeSequence, Got: describe(v)}
		}
		out := make([]any, len(items))
		for i, it := range items {
			if n.Element == nil {
				out[i] = it
				continue
			}
			sv, err := e.serializeNode(owner, field, *n.Element, it, path.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = sv
		}
		return out, nil
	case TypeDictionary:
		dict, ok := asObject(v)
		if !ok {
			return nil, &TypeMismatchError{TypeName: owner, Field: field, Path: path.Pointer(), Expected: TypeDictionary, Got: describe(v)}
		}
		out := make(map[string]any, len(dict))
		for k, it := range dict {
			if n.Value == nil {
				out[k] = it
				continue
			}
			sv, err := e.serializeNode(owner, field, *n.Value, it, path.Field(k))
			if err != nil {
				return nil, err
			}
			out[k] = sv
		}
		return out, nil
	}
	if !n.Name.IsPrimitive() {
		return nil, &UnknownTypeError{Name: string(n.Name), Referrer: owner + "." + field}
	}
	if !checkPrimitive(n.Name, v) {
		return nil, &TypeMismatchError{TypeName: owner, Field: field, Path: path.Pointer(), Expected: n.Name, Got: describe(v)}
	}
	if err := checkFormat(n.Name, v); err != nil {
		s, _ := v.(string)
		return nil, &InvalidFormatError{TypeName: owner, Field: field, Path: path.Pointer(), Kind: n.Name, Value: s, Cause: err}
	}
	return encodeFormatted(n.Name, v), nil
}
