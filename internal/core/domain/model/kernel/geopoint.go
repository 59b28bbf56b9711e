package kernel

import (
	"errors"
	"fmt"

	"trackledger/internal/pkg/errs"
	"trackledger/internal/pkg/guard"
)

// MaxCoordinateLength bounds the latitude/longitude strings recorded with a
// tracking event. Coordinates are opaque to the ledger beyond non-emptiness.
const MaxCoordinateLength = 64

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint")

// GeoPoint is the reported position of a tracking update: latitude and
// longitude as caller-supplied strings plus an altitude. The ledger performs
// no geographic validation beyond non-emptiness and length bounds.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  string
	longitude string
	altitude  uint32

	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from the reported coordinates.
// Latitude and longitude must be non-empty and no longer than
// MaxCoordinateLength characters.
func NewGeoPoint(latitude string, longitude string, altitude uint32) (GeoPoint, error) {
	point := GeoPoint{
		altitude: altitude,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		point.setLatitude(latitude),
		point.setLongitude(longitude),
	); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Latitude returns the reported latitude string.
func (p GeoPoint) Latitude() string {
	return p.latitude
}

// Longitude returns the reported longitude string.
func (p GeoPoint) Longitude() string {
	return p.longitude
}

// Altitude returns the reported altitude.
func (p GeoPoint) Altitude() uint32 {
	return p.altitude
}

// String returns a human-readable representation of the point.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%s,%s,%d)", p.latitude, p.longitude, p.altitude)
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

func (p *GeoPoint) setLatitude(latitude string) error {
	if latitude == "" {
		return errs.NewValueIsRequiredError("latitude")
	}
	if len(latitude) > MaxCoordinateLength {
		return errs.NewValueIsOutOfRangeError("latitude length", len(latitude), 1, MaxCoordinateLength)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude string) error {
	if longitude == "" {
		return errs.NewValueIsRequiredError("longitude")
	}
	if len(longitude) > MaxCoordinateLength {
		return errs.NewValueIsOutOfRangeError("longitude length", len(longitude), 1, MaxCoordinateLength)
	}

	p.longitude = longitude
	return nil
}
