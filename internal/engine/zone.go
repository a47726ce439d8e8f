package engine

import "time"

// ZoneLoader resolves an IANA zone identifier to its rule table.
type ZoneLoader interface {
	LoadLocation(name string) (*time.Location, error)
}

// SystemZones resolves zones against the host time zone database.
// The Go runtime honours $ZONEINFO, then the platform directories, then the
// embedded copy when the binary is built with -tags timetzdata.
type SystemZones struct{}

// LoadLocation delegates to time.LoadLocation.
func (SystemZones) LoadLocation(name string) (*time.Location, error) {
	return time.LoadLocation(name)
}

// ZoneLoaderFunc adapts a plain function to ZoneLoader.
type ZoneLoaderFunc func(name string) (*time.Location, error)

func (f ZoneLoaderFunc) LoadLocation(name string) (*time.Location, error) {
	return f(name)
}
