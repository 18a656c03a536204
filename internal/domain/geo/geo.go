// Package geo contains pure geographic calculations shared by the
// ranking and address services.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
// Latitude is expected in [-90, 90] and longitude in [-180, 180]; the
// functions in this package do not validate ranges, out-of-range input
// produces mathematically defined but meaningless output.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Distance returns the great-circle distance between two coordinates in
// kilometers using the haversine formula. Pure and safe for concurrent use.
func Distance(a, b Coordinate) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// RoundKm rounds a kilometer distance to 2 decimal places, the rounding
// policy for restaurant ranking results.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// DistanceMeters returns the distance between two coordinates in whole
// meters, the rounding policy for address proximity annotations.
func DistanceMeters(a, b Coordinate) int {
	return int(math.Round(Distance(a, b) * 1000))
}
