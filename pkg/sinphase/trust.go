package sinphase

import (
	"fmt"
	"strings"
)

// TrustLevel controls how much verification the engine enforces. Levels are
// ordered; each one includes the checks of the levels below it.
type TrustLevel int

const (
	// Disabled only requires that a stage has an implementation.
	Disabled TrustLevel = iota
	// Basic additionally verifies registration signatures.
	Basic
	// Comprehensive additionally enforces validated stages and strict order.
	Comprehensive
	// Paranoid enforces the same checks as Comprehensive.
	Paranoid
)

var trustNames = [...]string{"disabled", "basic", "comprehensive", "paranoid"}

func (l TrustLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("trust(%d)", int(l))
	}
	return trustNames[l]
}

func (l TrustLevel) Valid() bool {
	return l >= Disabled && l <= Paranoid
}

// ParseTrustLevel accepts a level name, case insensitive.
func ParseTrustLevel(s string) (TrustLevel, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range trustNames {
		if n == name {
			return TrustLevel(i), nil
		}
	}
	return Disabled, newError(InvalidArgument, NoStage, fmt.Sprintf("unknown trust level %q", s))
}
