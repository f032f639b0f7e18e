package env

import (
	"fmt"
	"strings"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) Valid() bool {
	return e == Development || e == Production
}

// UnmarshalText lets config loaders accept any casing.
func (e *Environment) UnmarshalText(text []byte) error {
	v := Environment(strings.ToLower(strings.TrimSpace(string(text))))
	if !v.Valid() {
		return fmt.Errorf("invalid environment: %q (valid: development, production)", string(text))
	}
	*e = v
	return nil
}
