package skemap

// Page is a list result: the ordered items plus the out-of-band continuation
// token. The token is never one of the items.
type Page struct {
	Items    []any
	NextLink string
}

// HasNext reports whether a continuation token is present.
func (p Page) HasNext() bool { return p.NextLink != "" }

// DeserializePage deserializes a list result of typeName. raw is either an
// object carrying the item sequence and the continuation token (names from
// the descriptor's Pageable, defaulting to "value" and "nextLink"), or a bare
// array for descriptors with Elements.
func (e *Engine) DeserializePage(typeName string, raw any) (Page, error) {
	m, err := e.resolve(typeName, "")
	if err != nil {
		return Page{}, err
	}
	v, err := e.DeserializeMapper(m, raw)
	if err != nil {
		return Page{}, err
	}
	switch t := v.(type) {
	case []any:
		return Page{Items: t}, nil
	case map[string]any:
		var pg Page
		if items, ok := asSlice(t[m.Pageable.itemName()]); ok {
			pg.Items = items
		}
		if next, ok := t[m.Pageable.nextLinkName()].(string); ok {
			pg.NextLink = next
		}
		return pg, nil
	}
	return Page{}, nil
}

// List is the typed form of a Page.
type List[T any] struct {
	Value    []T
	NextLink string
}

// BindPage converts the items of p into T.
func BindPage[T any](p Page) (List[T], error) {
	out := List[T]{Value: make([]T, 0, len(p.Items)), NextLink: p.NextLink}
	for _, it := range p.Items {
		v, err := Bind[T](it)
		if err != nil {
			return List[T]{}, err
		}
		out.Value = append(out.Value, v)
	}
	return out, nil
}
