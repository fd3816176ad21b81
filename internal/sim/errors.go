package sim

import "errors"

var (
	ErrNoEntryPoints      = errors.New("no entry points: ring has no lab cards")
	ErrInvalidExperiments = errors.New("invalid experiment count; must be >= 0")
	ErrNilRing            = errors.New("nil ring")
)
