package servicebus

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	skemap "github.com/reoring/skemap"
)

const (
	atomNS       = "http://www.w3.org/2005/Atom"
	connectNS    = "http://schemas.microsoft.com/netservices/2010/10/servicebus/connect"
	xsiNS        = "http://www.w3.org/2001/XMLSchema-instance"
	contentTypeX = "application/xml"
)

// Serializer writes Atom entry envelopes.
type Serializer struct {
	now    func() time.Time
	indent string
}

// Option configures a Serializer.
type Option func(*Serializer)

// WithClock sets the source of the entry's <updated> timestamp.
func WithClock(now func() time.Time) Option { return func(s *Serializer) { s.now = now } }

// WithIndent pretty-prints the entry.
func WithIndent(indent string) Option { return func(s *Serializer) { s.indent = indent } }

// NewSerializer returns a Serializer using the wall clock.
func NewSerializer(opts ...Option) *Serializer {
	s := &Serializer{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MarshalEntry wraps the listed properties of resource in an Atom entry:
//
//	<entry xmlns="http://www.w3.org/2005/Atom">
//	  <updated>...</updated>
//	  <content type="application/xml">
//	    <QueueDescription xmlns="...servicebus/connect">...</QueueDescription>
//	  </content>
//	</entry>
func (s *Serializer) MarshalEntry(k Kind, resource any) ([]byte, error) {
	pairs, err := k.Select(resource)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if s.indent != "" {
		enc.Indent("", s.indent)
	}

	entry := xml.StartElement{Name: xml.Name{Local: "entry"}, Attr: []xml.Attr{{Name: xml.Name{Local: "xmlns"}, Value: atomNS}}}
	content := xml.StartElement{Name: xml.Name{Local: "content"}, Attr: []xml.Attr{{Name: xml.Name{Local: "type"}, Value: contentTypeX}}}
	desc := xml.StartElement{Name: xml.Name{Local: k.Name}, Attr: []xml.Attr{
		{Name: xml.Name{Local: "xmlns"}, Value: connectNS},
		{Name: xml.Name{Local: "xmlns:i"}, Value: xsiNS},
	}}

	toks := []xml.Token{entry}
	toks = append(toks, textElement("updated", s.now().UTC().Format(time.RFC3339))...)
	toks = append(toks, content, desc)
	for _, p := range pairs {
		toks = append(toks, textElement(p.Wire, xmlText(p.Value))...)
	}
	toks = append(toks, desc.End(), content.End(), entry.End())
	for _, t := range toks {
		if err := enc.EncodeToken(t); err != nil {
			return nil, fmt.Errorf("servicebus: encode %s: %w", k.Name, err)
		}
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func textElement(name, text string) []xml.Token {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	return []xml.Token{start, xml.CharData(text), start.End()}
}

func xmlText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}

// ErrNoDescription is returned when an entry carries no description of the
// requested kind.
var ErrNoDescription = errors.New("servicebus: entry has no matching description")

// ParseEntry reads the description of kind k from an Atom entry (or a bare
// description element). The result is keyed by local names; elements not in
// the list are ignored. Booleans become bool, numbers json.Number, all other
// values stay strings.
func ParseEntry(k Kind, data []byte) (map[string]any, error) {
	byWire := make(map[string]Field, len(k.Fields))
	for _, f := range k.Fields {
		byWire[f.Wire] = f
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoDescription
			}
			return nil, fmt.Errorf("servicebus: parse %s: %w", k.Name, err)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == k.Name {
			return parseDescription(dec, k, byWire)
		}
	}
}

func parseDescription(dec *xml.Decoder, k Kind, byWire map[string]Field) (map[string]any, error) {
	out := make(map[string]any)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("servicebus: parse %s: %w", k.Name, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			// nested elements (AuthorizationRules) contribute no text
			var text string
			if err := dec.DecodeElement(&text, &t); err != nil {
				return nil, fmt.Errorf("servicebus: parse %s: %w", k.Name, err)
			}
			f, ok := byWire[t.Name.Local]
			if !ok {
				continue
			}
			v, err := parseText(f, strings.TrimSpace(text))
			if err != nil {
				return nil, &skemap.TypeMismatchError{
					TypeName: k.Name, Field: f.Name, Path: "/" + f.Name, Expected: f.Type.Name, Got: strconv.Quote(text),
				}
			}
			out[f.Name] = v
		case xml.EndElement:
			if t.Name.Local == k.Name {
				return out, nil
			}
		}
	}
}

func parseText(f Field, s string) (any, error) {
	switch f.Type.Name {
	case skemap.TypeBoolean:
		return strconv.ParseBool(s)
	case skemap.TypeNumber:
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return nil, err
		}
		return json.Number(s), nil
	}
	return s, nil
}
