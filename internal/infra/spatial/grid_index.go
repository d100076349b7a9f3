// Package spatial provides the in-memory merchant location index used by proximity search.
package spatial

import (
	"math"
	"slices"
	"strings"
	"sync"

	"rescue/config"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// kmPerDegree is the approximate length of one degree of latitude.
	kmPerDegree       = 111.0
	defaultCellSizeKm = 2.0
	boundEpsilon      = 1e-9
)

// GridIndex implements a grid-based spatial index over merchant locations.
// Cells are anchored at (-90, -180) so points can be added and moved at any time.
type GridIndex struct {
	mu          sync.RWMutex
	points      map[uuid.UUID]entity.GeoPoint
	grid        map[gridKey]map[uuid.UUID]struct{}
	cellSizeLat float64 // grid cell size in latitude degrees
	cellSizeLng float64 // grid cell size in longitude degrees
}

type gridKey struct {
	latCell int
	lngCell int
}

// NewGridIndex creates a new grid-based spatial index.
// cellSizeKm determines the grid cell size (smaller = more cells, tighter candidate sets but more memory).
func NewGridIndex(cellSizeKm float64) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = defaultCellSizeKm
	}

	// Longitude cells use the equatorial width; they only get narrower towards the poles.
	cellSize := cellSizeKm / kmPerDegree

	return &GridIndex{
		points:      make(map[uuid.UUID]entity.GeoPoint),
		grid:        make(map[gridKey]map[uuid.UUID]struct{}),
		cellSizeLat: cellSize,
		cellSizeLng: cellSize,
	}
}

// NewSpatialIndex builds the index from configuration. It is used as an Fx provider.
func NewSpatialIndex(cfg *config.Config) service.SpatialIndex {
	return NewGridIndex(cfg.Marketplace.WithDefaults().GridCellSizeKm)
}

// Upsert records or moves a merchant's location.
func (g *GridIndex) Upsert(merchantID uuid.UUID, location entity.GeoPoint) error {
	if !location.IsValid() {
		return domainerrors.ErrInvalidCoordinate
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.points[merchantID]; ok {
		g.removeFromCell(g.getGridKey(prev.Lat, prev.Lng), merchantID)
	}

	key := g.getGridKey(location.Lat, location.Lng)
	cell, ok := g.grid[key]
	if !ok {
		cell = make(map[uuid.UUID]struct{})
		g.grid[key] = cell
	}
	cell[merchantID] = struct{}{}
	g.points[merchantID] = location

	return nil
}

// Remove drops a merchant from the index.
func (g *GridIndex) Remove(merchantID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	prev, ok := g.points[merchantID]
	if !ok {
		return
	}

	g.removeFromCell(g.getGridKey(prev.Lat, prev.Lng), merchantID)
	delete(g.points, merchantID)
}

// Location returns the indexed location of a merchant.
func (g *GridIndex) Location(merchantID uuid.UUID) (entity.GeoPoint, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	location, ok := g.points[merchantID]

	return location, ok
}

// Size returns the number of merchants in the index.
func (g *GridIndex) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.points)
}

// Query returns the merchants whose great-circle distance to center is at most radiusMeters.
func (g *GridIndex) Query(center entity.GeoPoint, radiusMeters float64) ([]service.SpatialMatch, error) {
	if !center.IsValid() {
		return nil, domainerrors.ErrInvalidPoint
	}
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return nil, domainerrors.ErrInvalidRadius
	}

	origin := center.Point()
	bound, bounded := boundAround(origin, radiusMeters)

	g.mu.RLock()
	defer g.mu.RUnlock()

	matches := make([]service.SpatialMatch, 0)
	collect := func(merchantID uuid.UUID, location entity.GeoPoint) {
		distance := geo.DistanceHaversine(origin, location.Point())
		if distance <= radiusMeters {
			matches = append(matches, service.SpatialMatch{MerchantID: merchantID, DistanceMeters: distance})
		}
	}

	if !bounded || g.shouldScan(bound) {
		for merchantID, location := range g.points {
			collect(merchantID, location)
		}
	} else {
		minKey := g.getGridKey(bound.Min.Lat(), bound.Min.Lon())
		maxKey := g.getGridKey(bound.Max.Lat(), bound.Max.Lon())
		for latCell := minKey.latCell; latCell <= maxKey.latCell; latCell++ {
			for lngCell := minKey.lngCell; lngCell <= maxKey.lngCell; lngCell++ {
				for merchantID := range g.grid[gridKey{latCell: latCell, lngCell: lngCell}] {
					location := g.points[merchantID]
					if !bound.Contains(location.Point()) {
						continue
					}
					collect(merchantID, location)
				}
			}
		}
	}

	sortMatches(matches)

	return matches, nil
}

// boundAround returns the lat/lng rectangle enclosing the spherical cap of the
// given radius. It reports false when the cap contains a pole.
func boundAround(center orb.Point, radiusMeters float64) (orb.Bound, bool) {
	angular := radiusMeters / orb.EarthRadius
	if angular >= math.Pi/2 {
		return orb.Bound{}, false
	}

	x := math.Sin(angular) / math.Cos(center.Lat()*math.Pi/180)
	if x >= 1 {
		return orb.Bound{}, false
	}

	dLat := angular*180/math.Pi + boundEpsilon
	dLng := math.Asin(x)*180/math.Pi + boundEpsilon

	return orb.Bound{
		Min: orb.Point{center.Lon() - dLng, center.Lat() - dLat},
		Max: orb.Point{center.Lon() + dLng, center.Lat() + dLat},
	}, true
}

// shouldScan reports whether a linear pass over all points beats walking the grid.
// A bound that crosses the antimeridian or a pole is not a simple rectangle in
// grid space, so those queries always scan.
func (g *GridIndex) shouldScan(bound orb.Bound) bool {
	if bound.Min.Lat() < -90 || bound.Max.Lat() > 90 || bound.Min.Lon() < -180 || bound.Max.Lon() > 180 {
		return true
	}

	latCells := math.Ceil((bound.Max.Lat()-bound.Min.Lat())/g.cellSizeLat) + 1
	lngCells := math.Ceil((bound.Max.Lon()-bound.Min.Lon())/g.cellSizeLng) + 1

	return latCells*lngCells > float64(len(g.points))
}

func (g *GridIndex) getGridKey(lat, lng float64) gridKey {
	latCell := int(math.Floor((lat + 90) / g.cellSizeLat))
	lngCell := int(math.Floor((lng + 180) / g.cellSizeLng))

	return gridKey{latCell: latCell, lngCell: lngCell}
}

func (g *GridIndex) removeFromCell(key gridKey, merchantID uuid.UUID) {
	cell, ok := g.grid[key]
	if !ok {
		return
	}

	delete(cell, merchantID)
	if len(cell) == 0 {
		delete(g.grid, key)
	}
}

// sortMatches orders by distance, breaking ties by merchant ID so results are stable.
func sortMatches(matches []service.SpatialMatch) {
	slices.SortFunc(matches, func(a, b service.SpatialMatch) int {
		if a.DistanceMeters < b.DistanceMeters {
			return -1
		}
		if a.DistanceMeters > b.DistanceMeters {
			return 1
		}

		return strings.Compare(a.MerchantID.String(), b.MerchantID.String())
	})
}
