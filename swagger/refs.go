package swagger

import (
	"fmt"
	"strings"
)

const definitionsPrefix = "#/definitions/"

// refName returns the definition name of a local $ref.
func refName(ref string) (string, error) {
	if !strings.HasPrefix(ref, definitionsPrefix) {
		return "", fmt.Errorf("$ref %q not supported (local definitions only)", ref)
	}
	name := strings.TrimPrefix(ref, definitionsPrefix)
	// JSON Pointer unescape per RFC6901
	name = strings.ReplaceAll(strings.ReplaceAll(name, "~1", "/"), "~0", "~")
	if name == "" {
		return "", fmt.Errorf("$ref %q has no definition name", ref)
	}
	return name, nil
}

// schemaRef returns the referenced definition when s is a reference, either
// directly or as a single-entry allOf wrapper.
func schemaRef(s *object) (string, bool, error) {
	if ref := s.str("$ref"); ref != "" {
		name, err := refName(ref)
		return name, true, err
	}
	if all := s.list("allOf"); len(all) == 1 && !s.has("properties") {
		if inner, ok := all[0].(*object); ok && inner.str("$ref") != "" {
			name, err := refName(inner.str("$ref"))
			return name, true, err
		}
	}
	return "", false, nil
}

// escapeWireName protects literal dots in a wire name from being read as
// flattening separators.
func escapeWireName(s string) string {
	return strings.ReplaceAll(s, ".", `\.`)
}
