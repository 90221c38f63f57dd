// Package path implements PathGeometry: zone-aware terrain profile
// statistics, the smooth-earth least-squares fit, and terminal horizon
// geometry. It is the single shared dependency every predictor package
// reads from; nothing here mutates a Path after construction.
package path

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZoneType tags a profile point by its ground-cover category. Set at
// construction and never inferred later.
type ZoneType int

const (
	// Sea marks an over-water point.
	Sea ZoneType = iota
	// CoastalLand marks land within the coastal strip.
	CoastalLand
	// Inland marks land away from any coast.
	Inland
)

func (z ZoneType) String() string {
	switch z {
	case Sea:
		return "Sea"
	case CoastalLand:
		return "CoastalLand"
	case Inland:
		return "Inland"
	default:
		return fmt.Sprintf("ZoneType(%d)", int(z))
	}
}

// ProfilePoint is one sample of a terrain profile: its distance along the
// path, its height above mean sea level, and its zone tag.
type ProfilePoint struct {
	DistanceKm   float64
	HeightASLm   float64
	Zone         ZoneType
}

// Path is an ordered, non-empty sequence of ProfilePoint with strictly
// increasing distances, the first point at distance 0. All derived
// statistics below are pure functions of a Path.
type Path struct {
	points []ProfilePoint
}

var (
	// ErrEmptyPath is returned when a Path is constructed with no points.
	ErrEmptyPath = errors.New("path: profile must have at least one point")
	// ErrNonMonotonicDistance is returned when distances are not strictly
	// increasing, or the first point is not at distance 0.
	ErrNonMonotonicDistance = errors.New("path: distances must start at 0 and strictly increase")
)

// NewPath validates and wraps a sequence of profile points. Empty input,
// distances that do not start at zero, or non-increasing distances are
// programmer errors per the core's failure semantics and are reported
// rather than silently repaired.
func NewPath(points []ProfilePoint) (Path, error) {
	if len(points) == 0 {
		return Path{}, ErrEmptyPath
	}
	if points[0].DistanceKm != 0 {
		return Path{}, ErrNonMonotonicDistance
	}
	for i := 1; i < len(points); i++ {
		if points[i].DistanceKm <= points[i-1].DistanceKm {
			return Path{}, ErrNonMonotonicDistance
		}
	}
	cp := make([]ProfilePoint, len(points))
	copy(cp, points)
	return Path{points: cp}, nil
}

// Points returns a read-only view of the profile points.
func (p Path) Points() []ProfilePoint { return p.points }

// Len returns the number of profile points.
func (p Path) Len() int { return len(p.points) }

// TotalKm returns the distance of the last point, the total path length.
func (p Path) TotalKm() float64 { return p.points[len(p.points)-1].DistanceKm }

// First returns the Tx-side endpoint.
func (p Path) First() ProfilePoint { return p.points[0] }

// Last returns the Rx-side endpoint.
func (p Path) Last() ProfilePoint { return p.points[len(p.points)-1] }

// FractionOverSea returns omega in [0,1]: the fraction of the path length
// over sea, counting a whole segment when both endpoints are Sea and half
// a segment at any Sea/non-Sea transition.
func (p Path) FractionOverSea() float64 {
	segs := make([]float64, 0, len(p.points)-1)
	last := p.points[0]
	for _, cur := range p.points[1:] {
		d := cur.DistanceKm - last.DistanceKm
		switch {
		case cur.Zone == Sea && last.Zone == Sea:
			segs = append(segs, d)
		case cur.Zone == Sea || last.Zone == Sea:
			segs = append(segs, d/2.0)
		}
		last = cur
	}
	return floats.Sum(segs) / p.TotalKm()
}

// LongestContiguousInlandKm returns the longest contiguous Inland run,
// using the same half/whole-segment rule as FractionOverSea, restricted
// to Inland zones. Used directly by the anomalous-propagation predictor
// and as one of the two inputs to Beta0Percent.
func (p Path) LongestContiguousInlandKm() float64 {
	var longest, current float64
	last := p.points[0]
	for _, cur := range p.points[1:] {
		d := cur.DistanceKm - last.DistanceKm
		switch {
		case cur.Zone == Inland && last.Zone == Inland:
			current += d
		case cur.Zone == Inland || last.Zone == Inland:
			current += d / 2.0
			if cur.Zone != Inland {
				longest = max(longest, current)
				current = 0
			}
		}
		last = cur
	}
	return max(longest, current)
}

// longestNonSeaKm returns the longest contiguous non-Sea (land) run, using
// the half/whole-segment rule at Sea transitions. This feeds Eq 3 (mu1a)
// of Beta0Percent; it is distinct from LongestContiguousInlandKm, which
// feeds Eq 3a (tau) and excludes CoastalLand.
func (p Path) longestNonSeaKm() float64 {
	var longest, current float64
	last := p.points[0]
	for _, cur := range p.points[1:] {
		d := cur.DistanceKm - last.DistanceKm
		switch {
		case cur.Zone != Sea && last.Zone != Sea:
			current += d
		case cur.Zone == Sea || last.Zone == Sea:
			current += d / 2.0
			if cur.Zone == Sea {
				longest = max(longest, current)
				current = 0
			}
		}
		last = cur
	}
	return max(longest, current)
}
