package wspr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCallsign is returned if the callsign does not have exactly six characters.
	ErrInvalidCallsign = errors.New("invalid callsign")
	// ErrInvalidLocator is returned if the locator does not have exactly four characters.
	ErrInvalidLocator = errors.New("invalid locator")
	// ErrInvalidPower is returned if the power exceeds MaxPower.
	ErrInvalidPower = errors.New("invalid power")
)

// InvalidCharError is returned if a character of the callsign or the locator is not allowed at its position.
type InvalidCharError struct {
	Char byte
}

func (e InvalidCharError) Error() string {
	return fmt.Sprintf("invalid alphanumeric char: %q", e.Char)
}
