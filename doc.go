// Package skemap provides:
//
// - Mapper descriptors: declarative wire shapes of management API models (Mapper, Property, TypeNode)
// - A concurrency-safe Registry resolving Composite references by class name
// - Validate / Deserialize / Serialize driven by descriptors, with JSON Pointer paths in errors
// - List results with continuation tokens (Page, List[T]) and typed binding (Bind, BindPage)
// - JSON intake with duplicate-key/depth/size enforcement (DecodeJSON, ValidateJSON)
//
// Design policy:
// - Descriptors are plain data; generated model packages register them (see models/).
// - Validation is strict and fails fast; deserialization is lenient and keeps unknown fields.
// - Place codecs under codec/, Swagger import under swagger/, and the CLI under cmd/skemap.
//
// Typical usage:
//
//	reg := skemap.NewRegistry()
//	_ = storage.Register(reg)
//	e := skemap.New(reg)
//
//	if err := e.Validate("StorageAccountListResult", raw); err != nil { ... }
//	pg, err := e.DeserializePage("StorageAccountListResult", raw)
//	accounts, err := skemap.BindPage[storage.Account](pg)
//
//	body, err := e.Serialize("StorageAccountCreateParameters", params)
package skemap
