package skemap

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// mapperDoc is the file form of a Mapper. modelProperties is kept as a node
// so that declaration order survives decoding.
type mapperDoc struct {
	ClassName       string    `yaml:"className"`
	SerializedName  string    `yaml:"serializedName"`
	ModelProperties yaml.Node `yaml:"modelProperties"`
	Pageable        *Pageable `yaml:"pageable"`
	Elements        *TypeNode `yaml:"elements"`
}

// UnmarshalYAML decodes a descriptor, keeping property order.
func (m *Mapper) UnmarshalYAML(n *yaml.Node) error {
	var doc mapperDoc
	if err := n.Decode(&doc); err != nil {
		return err
	}
	*m = Mapper{ClassName: doc.ClassName, SerializedName: doc.SerializedName, Pageable: doc.Pageable, Elements: doc.Elements}
	props := &doc.ModelProperties
	if props.Kind == 0 {
		return nil
	}
	if props.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: modelProperties must be a mapping", props.Line)
	}
	for i := 0; i+1 < len(props.Content); i += 2 {
		var p Property
		if err := props.Content[i+1].Decode(&p); err != nil {
			return err
		}
		p.Name = props.Content[i].Value
		if p.SerializedName == "" {
			p.SerializedName = p.Name
		}
		m.ModelProperties = append(m.ModelProperties, p)
	}
	return nil
}

// MarshalYAML encodes a descriptor with properties in declaration order.
func (m Mapper) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, v any) error {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return err
		}
		out.Content = append(out.Content, scalarNode(key), &n)
		return nil
	}
	if m.ClassName != "" {
		out.Content = append(out.Content, scalarNode("className"), scalarNode(m.ClassName))
	}
	if m.SerializedName != "" {
		out.Content = append(out.Content, scalarNode("serializedName"), scalarNode(m.SerializedName))
	}
	if len(m.ModelProperties) > 0 {
		props := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range m.ModelProperties {
			var v yaml.Node
			if err := v.Encode(p); err != nil {
				return nil, err
			}
			props.Content = append(props.Content, scalarNode(p.Name), &v)
		}
		out.Content = append(out.Content, scalarNode("modelProperties"), props)
	}
	if m.Pageable != nil {
		if err := add("pageable", m.Pageable); err != nil {
			return nil, err
		}
	}
	if m.Elements != nil {
		if err := add("elements", m.Elements); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func scalarNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

// ParseMappers reads a descriptor file: a YAML (or JSON) mapping from type
// name to descriptor. className defaults to the key.
func ParseMappers(data []byte) ([]*Mapper, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*Mapper
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("skemap: parse mappers: %w", err)
		}
		doc := &root
		if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
			doc = doc.Content[0]
		}
		if doc.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("skemap: parse mappers: line %d: expected a mapping of type names", doc.Line)
		}
		for i := 0; i+1 < len(doc.Content); i += 2 {
			m := &Mapper{}
			if err := doc.Content[i+1].Decode(m); err != nil {
				return nil, fmt.Errorf("skemap: parse mappers: %s: %w", doc.Content[i].Value, err)
			}
			if m.ClassName == "" {
				m.ClassName = doc.Content[i].Value
			}
			if err := checkNodes(m); err != nil {
				return nil, fmt.Errorf("skemap: parse mappers: %w", err)
			}
			out = append(out, m)
		}
	}
	return out, nil
}

// MarshalMappers renders descriptors in the format read by ParseMappers.
func MarshalMappers(ms []*Mapper) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, m := range ms {
		var v yaml.Node
		if err := v.Encode(m); err != nil {
			return nil, err
		}
		root.Content = append(root.Content, scalarNode(m.ClassName), &v)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadMappers parses data and registers every descriptor in reg.
func LoadMappers(reg *Registry, data []byte) ([]*Mapper, error) {
	ms, err := ParseMappers(data)
	if err != nil {
		return nil, err
	}
	if err := reg.RegisterAll(ms...); err != nil {
		return nil, err
	}
	return ms, nil
}

func checkNodes(m *Mapper) error {
	if m.Elements != nil {
		if err := checkNode(*m.Elements, m.ClassName+"[]"); err != nil {
			return err
		}
	}
	for _, p := range m.ModelProperties {
		if err := checkNode(p.Type, m.ClassName+"."+p.Name); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n TypeNode, at string) error {
	if !n.Name.Known() {
		return fmt.Errorf("%s: unsupported type %q", at, n.Name)
	}
	switch n.Name {
	case TypeComposite:
		if n.ClassName == "" {
			return fmt.Errorf("%s: Composite without className", at)
		}
	case TypeSequence:
		if n.Element == nil {
			return fmt.Errorf("%s: Sequence without element", at)
		}
		return checkNode(*n.Element, at+"[]")
	case TypeDictionary:
		if n.Value == nil {
			return fmt.Errorf("%s: Dictionary without value", at)
		}
		return checkNode(*n.Value, at+"{}")
	}
	return nil
}
