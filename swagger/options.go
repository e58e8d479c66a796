package swagger

import "fmt"

// EnumMode selects how x-ms-enum definitions are imported.
type EnumMode int

const (
	// EnumHonorModelAsString imports enums marked modelAsString as String so
	// that values added by the service later are not rejected.
	EnumHonorModelAsString EnumMode = iota
	// EnumStrict always imports a closed Enum.
	EnumStrict
)

// Options controls Swagger import.
type Options struct {
	Enums EnumMode
	// IgnoreClientNames keeps wire names as local names even when
	// x-ms-client-name is present.
	IgnoreClientNames bool
	// SkipPageable disables x-ms-pageable scanning of paths.
	SkipPageable bool
	// Only restricts import to the named definitions and what they reference.
	Only []string
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
