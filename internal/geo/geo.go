// Package geo holds geographic primitives and unit conversions.
package geo

import "strconv"

// MetersPerMile is the conversion factor used for all distance math.
const MetersPerMile = 1609.34

// Location is a WGS84 coordinate pair in decimal degrees.
// Values are passed through as received; no range validation is performed.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the location as "lat,lng" for provider query parameters.
func (l Location) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// MetersToMiles converts a distance in meters to miles.
func MetersToMiles(m float64) float64 {
	return m / MetersPerMile
}

// MilesToMeters converts a distance in miles to meters.
func MilesToMeters(mi float64) float64 {
	return mi * MetersPerMile
}
