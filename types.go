package skemap

// TypeName identifies the kind of a TypeNode.
type TypeName string

const (
	TypeString          TypeName = "String"
	TypeNumber          TypeName = "Number"
	TypeBoolean         TypeName = "Boolean"
	TypeByteArray       TypeName = "ByteArray"
	TypeBase64Url       TypeName = "Base64Url"
	TypeDateTime        TypeName = "DateTime"
	TypeDateTimeRfc1123 TypeName = "DateTimeRfc1123"
	TypeDate            TypeName = "Date"
	TypeUnixTime        TypeName = "UnixTime"
	TypeTimeSpan        TypeName = "TimeSpan"
	TypeObject          TypeName = "Object" // Any JSON value, never checked.
	TypeEnum            TypeName = "Enum"
	TypeComposite       TypeName = "Composite"
	TypeSequence        TypeName = "Sequence"
	TypeDictionary      TypeName = "Dictionary"
)

// IsPrimitive reports whether n is a leaf kind checked by type only.
func (n TypeName) IsPrimitive() bool {
	switch n {
	case TypeString, TypeNumber, TypeBoolean, TypeByteArray, TypeBase64Url,
		TypeDateTime, TypeDateTimeRfc1123, TypeDate, TypeUnixTime, TypeTimeSpan, TypeObject:
		return true
	}
	return false
}

// Known reports whether n is one of the kinds understood by the engine.
func (n TypeName) Known() bool {
	switch n {
	case TypeEnum, TypeComposite, TypeSequence, TypeDictionary:
		return true
	}
	return n.IsPrimitive()
}

// NumberMode dictates how numbers are materialized by the JSON intake.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number (default).
	NumberFloat64                      // Fast mode (with potential precision loss).
)

// Severity expresses the severity level for intake issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures duplicate key enforcement on JSON intake.
type Strictness struct {
	OnDuplicateKey Severity
}

// ParseOpt bundles JSON intake options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	NumberMode NumberMode
}
