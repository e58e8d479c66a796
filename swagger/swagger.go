package swagger

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	skemap "github.com/reoring/skemap"
)

// Import compiles the definitions of a Swagger 2.0 document (JSON or YAML)
// into descriptors, in document order. Inline object schemas become extra
// descriptors named after their owner and property. Problems that make a
// definition unusable are collected and returned together; recoverable ones
// are reported through Diag.
func Import(data []byte, opts Options) ([]*skemap.Mapper, Diag, error) {
	d := &simpleDiag{}
	root, err := decodeDocument(data)
	if err != nil {
		return nil, d, err
	}
	if v, ok := root.get("swagger").(string); ok && v != "2.0" {
		d.warnf("swagger version %q: only 2.0 is supported", v)
	}
	defs := root.obj("definitions")
	if defs == nil {
		return nil, d, errors.New("swagger: document has no definitions")
	}

	im := &importer{
		defs:    defs,
		opts:    opts,
		d:       d,
		out:     make(map[string]*skemap.Mapper),
		inlined: make(map[*object]string),
	}
	if len(opts.Only) > 0 {
		im.queue = append(im.queue, opts.Only...)
	} else {
		im.queue = append(im.queue, defs.keys...)
	}
	for len(im.queue) > 0 {
		name := im.queue[0]
		im.queue = im.queue[1:]
		im.define(name)
	}
	if !opts.SkipPageable {
		im.scanPageable(root.obj("paths"))
	}
	if err := im.errs.ErrorOrNil(); err != nil {
		return nil, d, err
	}
	out := make([]*skemap.Mapper, 0, len(im.order))
	for _, n := range im.order {
		out = append(out, im.out[n])
	}
	return out, d, nil
}

// ImportInto imports data and registers every descriptor in reg.
func ImportInto(reg *skemap.Registry, data []byte, opts Options) (Diag, error) {
	ms, d, err := Import(data, opts)
	if err != nil {
		return d, err
	}
	return d, reg.RegisterAll(ms...)
}

type importer struct {
	defs  *object
	opts  Options
	d     *simpleDiag
	errs  *multierror.Error
	out   map[string]*skemap.Mapper
	order []string
	queue []string
	// inlined maps anonymous schemas to their synthetic names
	inlined map[*object]string
}

func (im *importer) fail(format string, a ...any) {
	im.errs = multierror.Append(im.errs, fmt.Errorf("swagger: "+format, a...))
}

func (im *importer) enqueue(name string) {
	if _, done := im.out[name]; !done {
		im.queue = append(im.queue, name)
	}
}

func (im *importer) add(m *skemap.Mapper) {
	im.out[m.ClassName] = m
	im.order = append(im.order, m.ClassName)
}

func (im *importer) define(name string) {
	if _, done := im.out[name]; done {
		return
	}
	def := im.defs.obj(name)
	if def == nil {
		im.fail("definition %q not found", name)
		return
	}
	if isScalar(def) {
		// enum and primitive definitions are inlined where referenced
		return
	}
	m := &skemap.Mapper{ClassName: name, SerializedName: name}
	// registered before recursing so self references terminate
	im.add(m)
	if def.str("type") == "array" {
		el := im.typeOf(def.obj("items"), name, "Item")
		m.Elements = &el
		return
	}
	m.ModelProperties = im.collect(name, def, map[string]bool{name: true})
}

// collect returns the properties of def: inherited allOf parents first, then
// its own properties in declaration order. A redeclared property replaces
// the inherited one in place.
func (im *importer) collect(owner string, def *object, seen map[string]bool) []skemap.Property {
	var out []skemap.Property
	for _, raw := range def.list("allOf") {
		part, _ := raw.(*object)
		if part == nil {
			continue
		}
		if ref := part.str("$ref"); ref != "" {
			parent, err := refName(ref)
			if err != nil {
				im.fail("%s: %v", owner, err)
				continue
			}
			if seen[parent] {
				im.d.warnf("%s: cyclic allOf through %s ignored", owner, parent)
				continue
			}
			pdef := im.defs.obj(parent)
			if pdef == nil {
				im.fail("%s: allOf references unknown definition %q", owner, parent)
				continue
			}
			seen[parent] = true
			out = mergeProps(out, im.collect(parent, pdef, seen))
			delete(seen, parent)
			continue
		}
		out = mergeProps(out, im.collect(owner, part, seen))
	}

	required := make(map[string]bool)
	for _, r := range def.strings("required") {
		required[r] = true
	}
	if props := def.obj("properties"); props != nil {
		for _, wire := range props.keys {
			ps, _ := props.vals[wire].(*object)
			if ps == nil {
				im.fail("%s.%s: property schema must be an object", owner, wire)
				continue
			}
			if ps.boolean("x-ms-client-flatten") {
				if flat, ok := im.flatten(owner, wire, ps, required[wire], seen); ok {
					out = mergeProps(out, flat)
					continue
				}
			}
			p := skemap.Property{
				Name:           im.localName(wire, ps),
				SerializedName: escapeWireName(wire),
				Required:       required[wire],
				ReadOnly:       ps.boolean("readOnly"),
			}
			p.Type = im.typeOf(ps, owner, p.Name)
			out = mergeProps(out, []skemap.Property{p})
		}
	}
	// a child may require an inherited property
	for i := range out {
		if required[unescapeWireName(out[i].SerializedName)] {
			out[i].Required = true
		}
	}
	return out
}

// flatten lifts the properties of a nested object into its owner. Their wire
// names gain the container's name as prefix. A flattened child is required
// only when the container is.
func (im *importer) flatten(owner, wire string, ps *object, required bool, seen map[string]bool) ([]skemap.Property, bool) {
	target, from := ps, owner
	if name, ok, err := schemaRef(ps); ok {
		if err != nil {
			im.fail("%s.%s: %v", owner, wire, err)
			return nil, false
		}
		if seen[name] {
			im.d.warnf("%s.%s: recursive x-ms-client-flatten through %s ignored", owner, wire, name)
			return nil, false
		}
		if target = im.defs.obj(name); target == nil {
			im.fail("%s.%s: unknown definition %q", owner, wire, name)
			return nil, false
		}
		seen[name] = true
		defer delete(seen, name)
		from = name
	}
	if target.str("type") != "" && target.str("type") != "object" {
		im.d.warnf("%s.%s: x-ms-client-flatten on a %s ignored", owner, wire, target.str("type"))
		return nil, false
	}
	inner := im.collect(from, target, seen)
	readOnly := ps.boolean("readOnly")
	for i := range inner {
		inner[i].SerializedName = escapeWireName(wire) + "." + inner[i].SerializedName
		inner[i].Required = inner[i].Required && required
		inner[i].ReadOnly = inner[i].ReadOnly || readOnly
	}
	return inner, true
}

func (im *importer) localName(wire string, ps *object) string {
	if !im.opts.IgnoreClientNames {
		if n := ps.str("x-ms-client-name"); n != "" {
			return n
		}
	}
	return wire
}

// typeOf maps a property schema onto a type node.
func (im *importer) typeOf(s *object, owner, field string) skemap.TypeNode {
	if s == nil {
		return skemap.Object()
	}
	if name, ok, err := schemaRef(s); ok {
		if err != nil {
			im.fail("%s.%s: %v", owner, field, err)
			return skemap.Object()
		}
		if im.defs.obj(name) == nil {
			im.fail("%s.%s: unknown definition %q", owner, field, name)
			return skemap.Object()
		}
		if target := im.defs.obj(name); isScalar(target) {
			return im.typeOf(target, owner, field)
		}
		im.enqueue(name)
		return skemap.Composite(name)
	}
	typ := s.str("type")
	if vals := s.strings("enum"); len(vals) > 0 {
		if ext := s.obj("x-ms-enum"); ext.boolean("modelAsString") && im.opts.Enums == EnumHonorModelAsString {
			return skemap.String()
		}
		if typ == "string" || typ == "" {
			return skemap.Enum(vals...)
		}
		im.d.warnf("%s.%s: enum of type %s imported without value check", owner, field, typ)
	}
	switch typ {
	case "string":
		switch s.str("format") {
		case "date-time":
			return skemap.DateTime()
		case "date-time-rfc1123":
			return skemap.DateTimeRfc1123()
		case "date":
			return skemap.Date()
		case "byte":
			return skemap.ByteArray()
		case "base64url":
			return skemap.Base64Url()
		case "duration":
			return skemap.TimeSpan()
		case "unixtime":
			return skemap.UnixTime()
		}
		return skemap.String()
	case "integer", "number":
		if s.str("format") == "unixtime" {
			return skemap.UnixTime()
		}
		return skemap.Number()
	case "boolean":
		return skemap.Boolean()
	case "array":
		items := s.obj("items")
		if items == nil {
			im.d.warnf("%s.%s: array without items imported as Sequence<Object>", owner, field)
		}
		return skemap.Sequence(im.typeOf(items, owner, field+"Item"))
	case "object", "":
		switch ap := s.get("additionalProperties").(type) {
		case *object:
			return skemap.Dictionary(im.typeOf(ap, owner, field+"Value"))
		case bool:
			if ap && s.obj("properties") == nil {
				return skemap.Dictionary(skemap.Object())
			}
		}
		if props := s.obj("properties"); (props != nil && len(props.keys) > 0) || s.has("allOf") {
			return skemap.Composite(im.inline(owner+exportName(field), s))
		}
		return skemap.Object()
	}
	im.fail("%s.%s: unsupported type %q", owner, field, typ)
	return skemap.Object()
}

// inline registers an anonymous object schema under a synthetic name.
func (im *importer) inline(name string, s *object) string {
	if n, ok := im.inlined[s]; ok {
		return n
	}
	base := name
	for i := 2; im.defs.has(name) || im.out[name] != nil; i++ {
		name = fmt.Sprintf("%s%d", base, i)
	}
	m := &skemap.Mapper{ClassName: name, SerializedName: name}
	im.add(m)
	im.inlined[s] = name
	m.ModelProperties = im.collect(name, s, map[string]bool{})
	return name
}

var operations = []string{"get", "put", "post", "patch", "delete", "head", "options"}

// scanPageable marks the 200 response models of x-ms-pageable operations.
func (im *importer) scanPageable(paths *object) {
	if paths == nil {
		return
	}
	for _, p := range paths.keys {
		item := paths.obj(p)
		for _, verb := range operations {
			op := item.obj(verb)
			if op == nil || !op.has("x-ms-pageable") {
				continue
			}
			ext := op.obj("x-ms-pageable")
			schema := op.obj("responses").obj("200").obj("schema")
			name, ok, err := schemaRef(schema)
			if !ok || err != nil {
				im.d.warnf("%s %s: x-ms-pageable without a model response", strings.ToUpper(verb), p)
				continue
			}
			m := im.out[name]
			if m == nil {
				continue
			}
			pg := &skemap.Pageable{}
			if wire := ext.str("itemName"); wire != "" {
				pg.ItemName = localFor(m, wire)
			}
			if wire := ext.str("nextLinkName"); wire != "" {
				pg.NextLinkName = localFor(m, wire)
			}
			m.Pageable = pg
		}
	}
}

// localFor returns the local name of the property serialized as wire.
func localFor(m *skemap.Mapper, wire string) string {
	for _, p := range m.ModelProperties {
		if p.SerializedName == escapeWireName(wire) {
			return p.Name
		}
	}
	return wire
}

// isScalar reports whether a definition describes a primitive or enum value
// rather than a model.
func isScalar(def *object) bool {
	switch def.str("type") {
	case "string", "integer", "number", "boolean":
		return true
	case "":
		return def.has("enum") && !def.has("properties")
	}
	return false
}

func mergeProps(dst, more []skemap.Property) []skemap.Property {
next:
	for _, p := range more {
		for i := range dst {
			if dst[i].Name == p.Name {
				dst[i] = p
				continue next
			}
		}
		dst = append(dst, p)
	}
	return dst
}

func unescapeWireName(s string) string {
	return strings.ReplaceAll(s, `\.`, ".")
}

func exportName(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
