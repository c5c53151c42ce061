package kernel

import (
	"errors"
	"fmt"
	"strings"

	"errand/internal/pkg/errs"
	"errand/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a geographic point with the human readable address the customer typed.
// Pickup and dropoff points of orders and the positions of stages are Locations.
//
// Example:
//
//	loc, err := kernel.NewLocation(24.7136, 46.6753, "King Fahd Rd, Riyadh")
//	if err != nil {
//	    return err
//	}
type Location struct { //nolint:recvcheck //using for validation
	lat     float64
	lng     float64
	address string
	guard   guard.ConstructorGuard
}

// NewLocation validates the coordinate ranges. The address is optional free text.
func NewLocation(lat, lng float64, address string) (Location, error) {
	loc := Location{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Lat() float64 {
	return l.lat
}

func (l Location) Lng() float64 {
	return l.lng
}

func (l Location) Address() string {
	return l.address
}

func (l Location) String() string {
	if l.address == "" {
		return fmt.Sprintf("Location(%.6f,%.6f)", l.lat, l.lng)
	}
	return fmt.Sprintf("Location(%.6f,%.6f %q)", l.lat, l.lng, l.address)
}

// IsEqual compares coordinates and address. Both locations must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.lat == other.lat && l.lng == other.lng && l.address == other.address, nil
}

func (l *Location) setLat(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	l.lng = lng
	return nil
}
