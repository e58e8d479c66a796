package skemap

import (
	"sort"
)

// Validate checks payload against the descriptor registered as typeName. It
// stops at the first violation and returns one of the typed errors; a nil
// payload is a *MissingValueError. Undeclared payload fields are ignored.
func (e *Engine) Validate(typeName string, payload any) error {
	m, err := e.resolve(typeName, "")
	if err != nil {
		return err
	}
	return e.ValidateMapper(m, payload)
}

// ValidateMapper is Validate with an explicit descriptor.
func (e *Engine) ValidateMapper(m *Mapper, payload any) error {
	err := e.validateModel(m, payload, RootPath())
	if err != nil {
		e.log.Debug().Err(err).Str("type", m.ClassName).Msg("validation failed")
	}
	return err
}

func (e *Engine) validateModel(m *Mapper, v any, path PathRef) error {
	if isNull(v) {
		return &MissingValueError{TypeName: m.ClassName, Path: path.Pointer()}
	}
	if m.Elements != nil {
		if _, isObj := v.(map[string]any); !isObj {
			return e.validateNode(m.ClassName, "", Sequence(*m.Elements), v, path)
		}
	}
	obj, ok := asObject(v)
	if !ok {
		return &TypeMismatchError{TypeName: m.ClassName, Path: path.Pointer(), Expected: TypeComposite, Got: describe(v)}
	}
	for _, p := range m.ModelProperties {
		wp := p.WirePath()
		fv, _ := wireGet(obj, wp)
		if isNull(fv) {
			if p.Required {
				return &MissingFieldError{TypeName: m.ClassName, Field: p.Name, Path: path.Fields(wp).Pointer()}
			}
			continue
		}
		if err := e.validateNode(m.ClassName, p.Name, p.Type, fv, path.Fields(wp)); err != nil {
			return err
		}
	}
	return nil
}

// validateNode checks a present value. Null elements of sequences and
// dictionaries are accepted.
func (e *Engine) validateNode(owner, field string, n TypeNode, v any, path PathRef) error {
	if isNull(v) {
		return nil
	}
	switch n.Name {
	case TypeEnum:
		if s, ok := v.(string); !ok || !n.allows(s) {
			return &InvalidEnumValueError{TypeName: owner, Field: field, Path: path.Pointer(), Value: v, Allowed: n.AllowedValues}
		}
		return nil
	case TypeComposite:
		m, err := e.resolve(n.ClassName, owner+"."+field)
		if err != nil {
			return err
		}
		return e.validateModel(m, v, path)
	case TypeSequence:
		items, ok := asSlice(v)
		if !ok {
			return &TypeMismatchError{TypeName: owner, Field: field, Path: path.Pointer(), Expected: TypeSequence, Got: describe(v)}
		}
		if n.Element == nil {
			return nil
		}
		for i, it := range items {
			if err := e.validateNode(owner, field, *n.Element, it, path.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case TypeDictionary:
		dict, ok := asObject(v)
		if !ok {
			return &TypeMismatchError{TypeName: owner, Field: field, Path: path.Pointer(), Expected: TypeDictionary, Got: describe(v)}
		}
		if n.Value == nil {
			return nil
		}
		// sorted so that the reported violation is deterministic
		keys := make([]string, 0, len(dict))
		for k := range dict {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := e.validateNode(owner, field, *n.Value, dict[k], path.Field(k)); err != nil {
				return err
			}
		}
		return nil
	}
	if !n.Name.IsPrimitive() {
		return &UnknownTypeError{Name: string(n.Name), Referrer: owner + "." + field}
	}
	if !checkPrimitive(n.Name, v) {
		return &TypeMismatchError{TypeName: owner, Field: field, Path: path.Pointer(), Expected: n.Name, Got: describe(v)}
	}
	if e.validateFormats {
		if err := checkFormat(n.Name, v); err != nil {
			s, _ := v.(string)
			return &InvalidFormatError{TypeName: owner, Field: field, Path: path.Pointer(), Kind: n.Name, Value: s, Cause: err}
		}
	}
	return nil
}
