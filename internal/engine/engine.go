package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tartampluch/chicago-today/internal/config"
)

// Resolver turns an instant into the civil date observed in a named zone.
type Resolver struct {
	Clock Clock      // Interface for time mocking.
	Zones ZoneLoader // Interface over the zone database.
	Zone  string     // IANA identifier, e.g. "America/Chicago".

	// Logger receives debug traces. Nil means slog.Default().
	Logger *slog.Logger
}

// NewResolver returns a Resolver wired to the system clock, the host zone
// database and config.ZoneName.
func NewResolver() *Resolver {
	return &Resolver{
		Clock: RealClock{},
		Zones: SystemZones{},
		Zone:  config.ZoneName,
	}
}

// Today samples the clock once and returns the civil date in the zone.
func (r *Resolver) Today() (Date, error) {
	if r.Clock == nil {
		return Date{}, errors.New(config.ErrClockMissing)
	}
	return r.DateAt(r.Clock.Now())
}

// DateAt returns the civil date of instant in the zone. It depends only on the
// instant and the zone's rule table.
func (r *Resolver) DateAt(instant time.Time) (Date, error) {
	loc, err := r.Location()
	if err != nil {
		return Date{}, err
	}

	local := instant.In(loc)
	d := DateOf(local)

	abbrev, offset := local.Zone()
	r.log().Debug(config.MsgDateComputed,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyInstant, instant.UTC().Format(time.RFC3339Nano),
		config.LogKeyLocal, local.Format(time.RFC3339),
		config.LogKeyAbbrev, abbrev,
		config.LogKeyOffset, offset,
		config.LogKeyDate, d.String(),
	)
	return d, nil
}

// Location resolves the configured zone. time.LoadLocation maps "" to UTC and
// "Local" to the host zone; both are refused so a failure is never masked.
func (r *Resolver) Location() (*time.Location, error) {
	if r.Zone == "" || r.Zone == config.ZoneLocal {
		return nil, &ZoneError{Zone: r.Zone, Err: ErrZoneUnnamed}
	}
	if r.Zones == nil {
		return nil, errors.New(config.ErrZonesMissing)
	}

	loc, err := r.Zones.LoadLocation(r.Zone)
	if err != nil {
		return nil, &ZoneError{Zone: r.Zone, Err: err}
	}
	if loc == nil {
		return nil, &ZoneError{Zone: r.Zone}
	}

	r.log().Debug(config.MsgZoneResolved,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyZone, loc.String(),
	)
	return loc, nil
}

func (r *Resolver) log() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
