package engine

import (
	"errors"
	"fmt"

	"github.com/tartampluch/chicago-today/internal/config"
)

// Sentinel errors for broad classification.
var (
	ErrZoneResolution = errors.New(config.ErrZoneResolution)
	ErrZoneUnnamed    = errors.New(config.ErrZoneUnnamed)
)

// ZoneError reports that a zone identifier could not be resolved against the
// zone database. It matches ErrZoneResolution with errors.Is.
type ZoneError struct {
	Zone string
	Err  error
}

func (e *ZoneError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", config.ErrZoneResolution, e.Zone)
	}
	return fmt.Sprintf("%s: %q: %v", config.ErrZoneResolution, e.Zone, e.Err)
}

func (e *ZoneError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ZoneError) Is(target error) bool {
	return target == ErrZoneResolution
}

// IsZoneError helps callers classify errors and extract the zone name.
func IsZoneError(err error) (*ZoneError, bool) {
	var ze *ZoneError
	if errors.As(err, &ze) {
		return ze, true
	}
	return nil, false
}
