// Package config loads the ambient knobs an Environment needs before it is
// constructed, from environment variables (the ecosystem precedent for this
// is mna-nenuphar's use of github.com/caarlos0/env/v6 in its CLI stack).
package config

import "github.com/caarlos0/env/v6"

// Config carries the environment's boot-time sizing and numeric defaults.
// Every field has a sane default so a zero-value-free Config is never
// required; Load only needs to be called when the host wants env-var
// overrides (the REPL does, tests generally don't).
type Config struct {
	StackSize       int `env:"BCFORTH_STACK_SIZE" envDefault:"64"`
	ReturnStackSize int `env:"BCFORTH_RETURN_STACK_SIZE" envDefault:"64"`
	StructStackSize int `env:"BCFORTH_STRUCT_STACK_SIZE" envDefault:"64"`
	Base            int `env:"BCFORTH_BASE" envDefault:"10"`
}

// Default returns a Config populated with built-in defaults, ignoring the
// environment entirely.
func Default() Config {
	return Config{StackSize: 64, ReturnStackSize: 64, StructStackSize: 64, Base: 10}
}

// Load returns a Config populated from environment variables, falling back
// to Default's values for anything unset.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
