// Package servicebus serializes Service Bus management resources (queues,
// topics, subscriptions) from fixed, ordered property lists. Only listed
// properties are ever written, in list order; anything else on the resource
// is dropped. The management endpoint wants the Atom entry form; the JSON
// form is used by tooling and tests.
package servicebus

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	skemap "github.com/reoring/skemap"
	"github.com/reoring/skemap/codec"
)

// Field is one allow-listed property. Name is the local (camelCase) name,
// Wire the element name used on the wire.
type Field struct {
	Name string
	Wire string
	Type skemap.TypeNode
}

// Kind is an ordered allow-list for one resource description.
type Kind struct {
	Name   string
	Fields []Field
}

func field(wire string, t skemap.TypeNode) Field {
	return Field{Name: strings.ToLower(wire[:1]) + wire[1:], Wire: wire, Type: t}
}

var entityStatus = skemap.Enum(
	"Active", "Creating", "Deleting", "Disabled", "ReceiveDisabled",
	"Renaming", "Restoring", "SendDisabled", "Unknown",
)

// Queue lists the writable properties of a QueueDescription in the order the
// service requires.
var Queue = Kind{Name: "QueueDescription", Fields: []Field{
	field("LockDuration", skemap.TimeSpan()),
	field("MaxSizeInMegabytes", skemap.Number()),
	field("RequiresDuplicateDetection", skemap.Boolean()),
	field("RequiresSession", skemap.Boolean()),
	field("DefaultMessageTimeToLive", skemap.TimeSpan()),
	field("DeadLetteringOnMessageExpiration", skemap.Boolean()),
	field("DuplicateDetectionHistoryTimeWindow", skemap.TimeSpan()),
	field("MaxDeliveryCount", skemap.Number()),
	field("EnableBatchedOperations", skemap.Boolean()),
	field("Status", entityStatus),
	field("ForwardTo", skemap.String()),
	field("UserMetadata", skemap.String()),
	field("AutoDeleteOnIdle", skemap.TimeSpan()),
	field("EnablePartitioning", skemap.Boolean()),
	field("ForwardDeadLetteredMessagesTo", skemap.String()),
	field("EnableExpress", skemap.Boolean()),
}}

// Topic lists the writable properties of a TopicDescription.
var Topic = Kind{Name: "TopicDescription", Fields: []Field{
	field("DefaultMessageTimeToLive", skemap.TimeSpan()),
	field("MaxSizeInMegabytes", skemap.Number()),
	field("RequiresDuplicateDetection", skemap.Boolean()),
	field("DuplicateDetectionHistoryTimeWindow", skemap.TimeSpan()),
	field("EnableBatchedOperations", skemap.Boolean()),
	field("Status", entityStatus),
	field("UserMetadata", skemap.String()),
	field("SupportOrdering", skemap.Boolean()),
	field("AutoDeleteOnIdle", skemap.TimeSpan()),
	field("EnablePartitioning", skemap.Boolean()),
	field("EnableExpress", skemap.Boolean()),
}}

// Subscription lists the writable properties of a SubscriptionDescription.
var Subscription = Kind{Name: "SubscriptionDescription", Fields: []Field{
	field("LockDuration", skemap.TimeSpan()),
	field("RequiresSession", skemap.Boolean()),
	field("DefaultMessageTimeToLive", skemap.TimeSpan()),
	field("DeadLetteringOnMessageExpiration", skemap.Boolean()),
	field("DeadLetteringOnFilterEvaluationExceptions", skemap.Boolean()),
	field("MaxDeliveryCount", skemap.Number()),
	field("EnableBatchedOperations", skemap.Boolean()),
	field("Status", entityStatus),
	field("ForwardTo", skemap.String()),
	field("UserMetadata", skemap.String()),
	field("ForwardDeadLetteredMessagesTo", skemap.String()),
	field("AutoDeleteOnIdle", skemap.TimeSpan()),
}}

// Kinds returns every known description kind.
func Kinds() []Kind { return []Kind{Queue, Topic, Subscription} }

// Lookup returns the kind with the given description name.
func Lookup(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// Mapper describes the JSON form of k so that the engine can validate and
// deserialize it.
func (k Kind) Mapper() *skemap.Mapper {
	m := &skemap.Mapper{ClassName: k.Name, SerializedName: k.Name}
	for _, f := range k.Fields {
		m.ModelProperties = append(m.ModelProperties, skemap.Property{
			Name: f.Name, SerializedName: f.Wire, Type: f.Type,
		})
	}
	return m
}

// Register adds the descriptors of every kind to reg.
func Register(reg *skemap.Registry) error {
	for _, k := range Kinds() {
		if err := reg.Register(k.Mapper()); err != nil {
			return err
		}
	}
	return nil
}

// Pair is one selected property in wire form.
type Pair struct {
	Wire  string
	Value any
}

// Select returns the listed properties present on resource, in list order
// and converted to wire form. resource is keyed by local names; structs are
// read through their JSON encoding.
func (k Kind) Select(resource any) ([]Pair, error) {
	src, err := fields(resource)
	if err != nil {
		return nil, fmt.Errorf("servicebus: %s: %w", k.Name, err)
	}
	var out []Pair
	for _, f := range k.Fields {
		v, ok := src[f.Name]
		if !ok || v == nil {
			continue
		}
		wv, err := wireValue(k.Name, f, v)
		if err != nil {
			return nil, err
		}
		out = append(out, Pair{Wire: f.Wire, Value: wv})
	}
	return out, nil
}

func fields(resource any) (map[string]any, error) {
	switch t := resource.(type) {
	case nil:
		return nil, fmt.Errorf("nil resource")
	case map[string]any:
		return t, nil
	}
	b, err := json.Marshal(resource)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("resource must encode as an object: %w", err)
	}
	return out, nil
}

func wireValue(kind string, f Field, v any) (any, error) {
	mismatch := func() error {
		return &skemap.TypeMismatchError{
			TypeName: kind, Field: f.Name, Path: "/" + f.Name, Expected: f.Type.Name, Got: fmt.Sprintf("%T", v),
		}
	}
	switch f.Type.Name {
	case skemap.TypeTimeSpan:
		switch t := v.(type) {
		case time.Duration:
			s, err := codec.Duration().Encode(t)
			return s, err
		case string:
			if _, err := codec.Duration().Decode(t); err != nil {
				return nil, &skemap.InvalidFormatError{
					TypeName: kind, Field: f.Name, Path: "/" + f.Name, Kind: f.Type.Name, Value: t, Cause: err,
				}
			}
			return t, nil
		}
		return nil, mismatch()
	case skemap.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return nil, mismatch()
		}
	case skemap.TypeNumber:
		if !skemap.IsNumber(v) {
			return nil, mismatch()
		}
	case skemap.TypeEnum:
		s, ok := v.(string)
		if !ok || !allowed(f.Type.AllowedValues, s) {
			return nil, &skemap.InvalidEnumValueError{
				TypeName: kind, Field: f.Name, Path: "/" + f.Name, Value: v, Allowed: f.Type.AllowedValues,
			}
		}
	default:
		if _, ok := v.(string); !ok {
			return nil, mismatch()
		}
	}
	return v, nil
}

func allowed(vals []string, s string) bool {
	for _, v := range vals {
		if v == s {
			return true
		}
	}
	return false
}
