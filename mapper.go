package skemap

import (
	"strings"
)

// TypeNode describes the wire type of a property. Exactly the fields relevant
// to Name are set: ClassName for Composite, Element for Sequence, Value for
// Dictionary and AllowedValues for Enum.
type TypeNode struct {
	Name          TypeName  `yaml:"name" json:"name"`
	ClassName     string    `yaml:"className,omitempty" json:"className,omitempty"`
	Element       *TypeNode `yaml:"element,omitempty" json:"element,omitempty"`
	Value         *TypeNode `yaml:"value,omitempty" json:"value,omitempty"`
	AllowedValues []string  `yaml:"allowedValues,omitempty" json:"allowedValues,omitempty"`
}

func String() TypeNode          { return TypeNode{Name: TypeString} }
func Number() TypeNode          { return TypeNode{Name: TypeNumber} }
func Boolean() TypeNode         { return TypeNode{Name: TypeBoolean} }
func ByteArray() TypeNode       { return TypeNode{Name: TypeByteArray} }
func Base64Url() TypeNode       { return TypeNode{Name: TypeBase64Url} }
func DateTime() TypeNode        { return TypeNode{Name: TypeDateTime} }
func DateTimeRfc1123() TypeNode { return TypeNode{Name: TypeDateTimeRfc1123} }
func Date() TypeNode            { return TypeNode{Name: TypeDate} }
func UnixTime() TypeNode        { return TypeNode{Name: TypeUnixTime} }
func TimeSpan() TypeNode        { return TypeNode{Name: TypeTimeSpan} }
func Object() TypeNode          { return TypeNode{Name: TypeObject} }

// Enum returns an Enum node accepting exactly the given values (case-sensitive).
func Enum(values ...string) TypeNode {
	return TypeNode{Name: TypeEnum, AllowedValues: append([]string(nil), values...)}
}

// Composite returns a node referencing another descriptor by class name. The
// reference is resolved through the Registry at traversal time.
func Composite(className string) TypeNode {
	return TypeNode{Name: TypeComposite, ClassName: className}
}

// Sequence returns an ordered collection node of elem.
func Sequence(elem TypeNode) TypeNode {
	return TypeNode{Name: TypeSequence, Element: &elem}
}

// Dictionary returns a string-keyed collection node of val.
func Dictionary(val TypeNode) TypeNode {
	return TypeNode{Name: TypeDictionary, Value: &val}
}

// allows reports whether s is one of the enum values.
func (n TypeNode) allows(s string) bool {
	for _, v := range n.AllowedValues {
		if v == s {
			return true
		}
	}
	return false
}

// String renders the node compactly, e.g. Sequence<Composite<Usage>>.
func (n TypeNode) String() string {
	switch n.Name {
	case TypeComposite:
		return "Composite<" + n.ClassName + ">"
	case TypeSequence:
		if n.Element == nil {
			return "Sequence<?>"
		}
		return "Sequence<" + n.Element.String() + ">"
	case TypeDictionary:
		if n.Value == nil {
			return "Dictionary<?>"
		}
		return "Dictionary<" + n.Value.String() + ">"
	case TypeEnum:
		return "Enum[" + strings.Join(n.AllowedValues, ",") + "]"
	}
	return string(n.Name)
}

// Property is one entry of a Mapper's ModelProperties.
type Property struct {
	// Name is the local (client) field name.
	Name string `yaml:"-" json:"-"`
	// SerializedName is the wire name. A dotted name such as
	// "properties.provisioningState" addresses a nested wire object; use `\.`
	// for a literal dot.
	SerializedName string   `yaml:"serializedName" json:"serializedName"`
	Required       bool     `yaml:"required,omitempty" json:"required,omitempty"`
	ReadOnly       bool     `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Type           TypeNode `yaml:"type" json:"type"`
}

// WirePath splits SerializedName into its nested segments. An empty
// SerializedName falls back to the local name.
func (p Property) WirePath() []string {
	name := p.SerializedName
	if name == "" {
		return []string{p.Name}
	}
	if !strings.Contains(name, ".") {
		return []string{name}
	}
	var (
		out []string
		cur strings.Builder
	)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '\\' && i+1 < len(name) && name[i+1] == '.' {
			cur.WriteByte('.')
			i++
			continue
		}
		if c == '.' {
			out = append(out, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(out, cur.String())
}

// Pageable marks list results that carry a continuation token next to the
// item sequence. Names are local property names.
type Pageable struct {
	ItemName     string `yaml:"itemName,omitempty" json:"itemName,omitempty"`
	NextLinkName string `yaml:"nextLinkName,omitempty" json:"nextLinkName,omitempty"`
}

// Mapper is the declarative description of one model's wire shape.
type Mapper struct {
	ClassName       string
	SerializedName  string
	ModelProperties []Property
	// Pageable is set for list results with a continuation token.
	Pageable *Pageable
	// Elements is set when the wire shape of the model is itself an array.
	Elements *TypeNode
}

// Property returns the property with the given local name.
func (m *Mapper) Property(name string) (Property, bool) {
	for _, p := range m.ModelProperties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// RequiredFields returns the local names of required properties in declaration order.
func (m *Mapper) RequiredFields() []string {
	var out []string
	for _, p := range m.ModelProperties {
		if p.Required {
			out = append(out, p.Name)
		}
	}
	return out
}

// ReadOnlyFields returns the local names of read-only properties in declaration order.
func (m *Mapper) ReadOnlyFields() []string {
	var out []string
	for _, p := range m.ModelProperties {
		if p.ReadOnly {
			out = append(out, p.Name)
		}
	}
	return out
}

// itemName defaults to "value" as the wire convention for list results.
func (p *Pageable) itemName() string {
	if p == nil || p.ItemName == "" {
		return "value"
	}
	return p.ItemName
}

func (p *Pageable) nextLinkName() string {
	if p == nil || p.NextLinkName == "" {
		return "nextLink"
	}
	return p.NextLinkName
}
