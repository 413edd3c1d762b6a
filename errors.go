// errors.go - load/runtime error kinds (spec section 7)

package lynx

import "errors"

// LoadError kinds. All surfaced to the host at the construction/load
// boundary; none are recoverable in-core.
var (
	ErrBadMagic               = errors.New("lynx: bad ROM/state magic")
	ErrShortFile              = errors.New("lynx: file too short")
	ErrUnknownEepromType      = errors.New("lynx: unknown eeprom type")
	ErrUnsupportedPageSize    = errors.New("lynx: unsupported cartridge page size")
	ErrSaveStateVersionMismatch = errors.New("lynx: save state version mismatch")
)

// RuntimeTrap kinds. These never panic; they are reported through the
// optional Tracer and otherwise handled per spec section 7's documented
// fallback behaviour.
var (
	ErrUnknownOpcode = errors.New("lynx: unknown opcode")
	ErrDivideByZero  = errors.New("lynx: suzy math divide by zero")
)

// LoadError wraps one of the Err* sentinels above with context about where
// loading failed (ROM header vs save state).
type LoadError struct {
	Op  string
	Err error
}

func (e *LoadError) Error() string { return "lynx: " + e.Op + ": " + e.Err.Error() }
func (e *LoadError) Unwrap() error { return e.Err }

func newLoadError(op string, err error) *LoadError {
	return &LoadError{Op: op, Err: err}
}
