// Package config resolves greeting options from the command line and environment.
package config

import (
	"github.com/okra-platform/greet/internal/greeter"
)

const (
	// EnvName is the fallback source for the greeted name.
	EnvName = "NAME"
	// EnvExcited disables excitement when set to exactly "false".
	EnvExcited = "EXCITED"
)

// Lookup reads an environment variable. os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

// Resolve builds a greeter.Config from positional arguments (program name
// excluded) and the environment.
//
// The name is the first non-empty value of args[0] and $NAME. When both are
// empty the name is left unset so the greeter default applies. Excited is
// always non-nil in the result: it is false only when $EXCITED is exactly "false".
func Resolve(args []string, lookup Lookup) greeter.Config {
	var cfg greeter.Config

	if len(args) > 0 && args[0] != "" {
		cfg.Name = greeter.String(args[0])
	} else if name, ok := lookup(EnvName); ok && name != "" {
		cfg.Name = greeter.String(name)
	}

	excited, _ := lookup(EnvExcited)
	cfg.Excited = greeter.Bool(excited != "false")

	return cfg
}

// MapLookup returns a Lookup backed by a fixed map.
func MapLookup(env map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}
