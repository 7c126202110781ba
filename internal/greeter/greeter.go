// Package greeter formats greeting messages.
package greeter

const (
	// DefaultName is greeted when no name is given.
	DefaultName = "World"
	// DefaultExcited is used when the excited flag is not given.
	DefaultExcited = true
)

// Config holds the greeting options. A nil field means the option was not set.
type Config struct {
	Name    *string
	Excited *bool
}

// String returns a pointer to s, for building a Config from literals.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for building a Config from literals.
func Bool(b bool) *bool {
	return &b
}

// Greet returns "Hello, <name>" followed by "!" when excited and "." otherwise.
// An absent or empty name falls back to DefaultName.
func Greet(cfg Config) string {
	name := DefaultName
	if cfg.Name != nil && *cfg.Name != "" {
		name = *cfg.Name
	}

	excited := DefaultExcited
	if cfg.Excited != nil {
		excited = *cfg.Excited
	}

	msg := "Hello, " + name
	if excited {
		return msg + "!"
	}
	return msg + "."
}
