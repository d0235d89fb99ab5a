package kernel

import (
	"fmt"
	"math"

	"fastfeet/internal/pkg/errs"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when validating a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a pair of WGS84 coordinates
// in decimal degrees. The zero value is invalid - use NewGeoPoint.
//
// Example:
//
//	p, err := kernel.NewGeoPoint(-23.55052, -46.633308)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64

	guard ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after range-checking both coordinates:
// latitude in [-90, 90] and longitude in [-180, 180] degrees.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: NewConstructorGuard(),
	}

	if latitude < minLatitude || latitude > maxLatitude {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%f is not between %.0f and %.0f", latitude, minLatitude, maxLatitude))
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%f is not between %.0f and %.0f", longitude, minLongitude, maxLongitude))
	}

	point.latitude = latitude
	point.longitude = longitude
	return point, nil
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// Validate checks the GeoPoint was built through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// DistanceKm computes the great-circle distance to other in kilometers using
// the haversine formula. The result is symmetric and zero for equal points.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1 := degreesToRadians(p.latitude)
	lat2 := degreesToRadians(other.latitude)
	deltaLat := degreesToRadians(other.latitude - p.latitude)
	deltaLon := degreesToRadians(other.longitude - p.longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
