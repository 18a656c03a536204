// Package spatial provides a lightweight grid index for radius queries
// over restaurant coordinates.
package spatial

import (
	"math"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Point is one indexed location.
type Point struct {
	ID       uuid.UUID
	Location orb.Point // orb convention: {lng, lat}
}

// GridIndex buckets points into fixed-size cells so radius queries only
// touch candidates near the search bound instead of scanning every point.
type GridIndex struct {
	points      []Point
	grid        map[gridKey][]int // maps grid cell to point indices
	cellSizeLat float64           // grid cell size in latitude degrees
	cellSizeLng float64           // grid cell size in longitude degrees
}

type gridKey struct {
	latCell int
	lngCell int
}

// NewGridIndex creates a grid index. cellSizeKm controls cell granularity;
// smaller cells mean faster lookup but more memory.
func NewGridIndex(cellSizeKm float64) *GridIndex {
	// 1 degree latitude is ~111 km everywhere; longitude shrinks with
	// cos(lat), adjusted per dataset in Build.
	return &GridIndex{
		grid:        make(map[gridKey][]int),
		cellSizeLat: cellSizeKm / 111.0,
		cellSizeLng: cellSizeKm / 111.0,
	}
}

// Build constructs the index from points, replacing any prior contents.
func (g *GridIndex) Build(points []Point) {
	g.points = points
	g.grid = make(map[gridKey][]int)

	if len(points) == 0 {
		return
	}

	// Scale longitude cells by the dataset's mid-latitude so cells stay
	// roughly square.
	minLat, maxLat := points[0].Location.Lat(), points[0].Location.Lat()
	for _, p := range points {
		minLat = math.Min(minLat, p.Location.Lat())
		maxLat = math.Max(maxLat, p.Location.Lat())
	}
	midLat := (minLat + maxLat) / 2
	if cosMid := math.Cos(midLat * math.Pi / 180); cosMid > 0.01 {
		g.cellSizeLng = g.cellSizeLat / cosMid
	}

	for i, p := range points {
		key := g.keyFor(p.Location)
		g.grid[key] = append(g.grid[key], i)
	}
}

// Size returns the number of indexed points.
func (g *GridIndex) Size() int {
	return len(g.points)
}

// Within returns the IDs of all points within radiusKm of center,
// unordered. Candidate cells come from the bounding box around the
// center; exact filtering uses haversine distance.
func (g *GridIndex) Within(center orb.Point, radiusKm float64) []uuid.UUID {
	if len(g.points) == 0 || radiusKm <= 0 {
		return nil
	}

	bound := orbgeo.NewBoundAroundPoint(center, radiusKm*1000)
	minKey := g.keyFor(bound.Min)
	maxKey := g.keyFor(bound.Max)

	radiusMeters := radiusKm * 1000
	var ids []uuid.UUID
	for latCell := minKey.latCell; latCell <= maxKey.latCell; latCell++ {
		for lngCell := minKey.lngCell; lngCell <= maxKey.lngCell; lngCell++ {
			for _, idx := range g.grid[gridKey{latCell: latCell, lngCell: lngCell}] {
				p := g.points[idx]
				if orbgeo.DistanceHaversine(center, p.Location) <= radiusMeters {
					ids = append(ids, p.ID)
				}
			}
		}
	}

	return ids
}

func (g *GridIndex) keyFor(p orb.Point) gridKey {
	return gridKey{
		latCell: int(math.Floor(p.Lat() / g.cellSizeLat)),
		lngCell: int(math.Floor(p.Lon() / g.cellSizeLng)),
	}
}
