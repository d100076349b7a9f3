package entity

import "github.com/paulmach/orb"

// GeoPoint is a WGS84 coordinate in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid reports whether the point lies within latitude and longitude bounds.
func (p GeoPoint) IsValid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Point converts to an orb point (longitude first).
func (p GeoPoint) Point() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}
