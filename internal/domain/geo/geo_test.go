package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_IdenticalCoordinates(t *testing.T) {
	coords := []Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 25.0330, Lng: 121.5654},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 90, Lng: 0},
	}

	for _, c := range coords {
		assert.Zero(t, Distance(c, c))
	}
}

func TestDistance_Symmetry(t *testing.T) {
	a := Coordinate{Lat: 25.0330, Lng: 121.5654}  // Taipei
	b := Coordinate{Lat: 22.6273, Lng: 120.3014}  // Kaohsiung
	c := Coordinate{Lat: 35.6762, Lng: 139.6503}  // Tokyo

	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.Equal(t, Distance(a, c), Distance(c, a))
	assert.Equal(t, Distance(b, c), Distance(c, b))
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Coordinate
		wantKm float64
	}{
		{
			name:   "one degree of latitude at the equator",
			a:      Coordinate{Lat: 0, Lng: 0},
			b:      Coordinate{Lat: 1, Lng: 0},
			wantKm: 111.19,
		},
		{
			name:   "Taipei to Kaohsiung",
			a:      Coordinate{Lat: 25.0330, Lng: 121.5654},
			b:      Coordinate{Lat: 22.6273, Lng: 120.3014},
			wantKm: 296.8,
		},
		{
			name:   "Paris to London",
			a:      Coordinate{Lat: 48.8566, Lng: 2.3522},
			b:      Coordinate{Lat: 51.5074, Lng: -0.1278},
			wantKm: 343.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			// within 0.5% of the published great-circle distance
			assert.InEpsilon(t, tt.wantKm, got, 0.005)
		})
	}
}

func TestDistance_AntipodalPoints(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0, Lng: 180}

	// Half the Earth's circumference, pi * R.
	assert.InDelta(t, 20015.1, Distance(a, b), 1.0)
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 5.13, RoundKm(5.12999))
	assert.Equal(t, 2.3, RoundKm(2.304))
	assert.Equal(t, 0.0, RoundKm(0.0))
}

func TestDistanceMeters(t *testing.T) {
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 0.001, Lng: 0}

	// ~111.19 m for a thousandth of a degree of latitude.
	assert.Equal(t, 111, DistanceMeters(a, b))
	assert.Zero(t, DistanceMeters(a, a))
}
