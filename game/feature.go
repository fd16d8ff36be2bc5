package game

import (
	"fmt"
	"strings"
)

// Feature is a man-made addition to a tile.
type Feature int

const (
	Bridge Feature = iota
	Sandbags
	BarbedWire

	numFeatures
)

var featureNames = map[string]Feature{
	"bridge":     Bridge,
	"sandbags":   Sandbags,
	"barbedwire": BarbedWire,
}

func (f Feature) String() string {
	switch f {
	case Bridge:
		return "Bridge"
	case Sandbags:
		return "Sandbags"
	case BarbedWire:
		return "BarbedWire"
	default:
		return fmt.Sprintf("Feature(%d)", int(f))
	}
}

// ParseFeature converts a feature name (case insensitive) to a Feature.
func ParseFeature(name string) (Feature, error) {
	return parseName(featureNames, name, ErrUnknownFeature)
}

// Protection is the number of dice the feature removes from an attack.
func (f Feature) Protection() int {
	if f == Sandbags {
		return 1
	}
	return 0
}

// FeatureSet holds each feature at most once.
type FeatureSet uint8

// NewFeatureSet returns a set holding the given features.
func NewFeatureSet(features ...Feature) FeatureSet {
	var s FeatureSet
	for _, f := range features {
		s = s.Add(f)
	}
	return s
}

func (s FeatureSet) Has(f Feature) bool {
	return s&(1<<f) != 0
}

func (s FeatureSet) Add(f Feature) FeatureSet {
	return s | 1<<f
}

func (s FeatureSet) Remove(f Feature) FeatureSet {
	return s &^ (1 << f)
}

// List returns the features in declaration order.
func (s FeatureSet) List() []Feature {
	var list []Feature
	for f := Feature(0); f < numFeatures; f++ {
		if s.Has(f) {
			list = append(list, f)
		}
	}
	return list
}

// Protection is the highest protection among the features in the set. It
// does not depend on the defending unit type.
func (s FeatureSet) Protection() int {
	best := 0
	for _, f := range s.List() {
		best = max(best, f.Protection())
	}
	return best
}

// StopsMovement reports whether the features force a unit of the given
// type to end its move. Barbed wire only holds up infantry.
func (s FeatureSet) StopsMovement(kind UnitType) bool {
	return kind == Infantry && s.Has(BarbedWire)
}

func (s FeatureSet) String() string {
	names := make([]string, 0, numFeatures)
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}
