package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOffBoard        = errors.New("coordinate is not on the board")
	ErrUnknownTerrain  = errors.New("unknown terrain")
	ErrUnknownFeature  = errors.New("unknown feature")
	ErrUnknownUnitType = errors.New("unknown unit type")
	ErrUnknownFaction  = errors.New("unknown faction")
	ErrUnknownVictory  = errors.New("unknown victory point")
)

func parseName[T any](names map[string]T, name string, sentinel error) (T, error) {
	v, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", sentinel, name)
	}
	return v, nil
}
