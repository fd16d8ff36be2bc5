package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Face is the outcome of one combat die.
type Face int

const (
	FaceInfantry Face = iota
	FaceArmor
	FaceGrenade
	FaceFlag
	FaceStar
)

// The six sides of a die. Infantry is printed twice.
var sides = [6]Face{FaceStar, FaceFlag, FaceGrenade, FaceArmor, FaceInfantry, FaceInfantry}

func (f Face) String() string {
	switch f {
	case FaceInfantry:
		return "Infantry"
	case FaceArmor:
		return "Armor"
	case FaceGrenade:
		return "Grenade"
	case FaceFlag:
		return "Flag"
	case FaceStar:
		return "Star"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Roller produces combat dice.
type Roller interface {
	Roll() Face
}

type randomRoller struct {
	rng *rand.Rand
}

// NewRoller returns a Roller drawing uniformly over the six sides from a
// PCG source seeded with seed.
func NewRoller(seed uint64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) Roll() Face {
	return sides[r.rng.Intn(len(sides))]
}

// FixedRoller replays a fixed sequence of faces, wrapping around at the end.
type FixedRoller struct {
	Faces []Face
	next  int
}

// NewFixedRoller returns a Roller that yields faces in order.
func NewFixedRoller(faces ...Face) *FixedRoller {
	if len(faces) == 0 {
		panic("game: fixed roller needs at least one face")
	}
	return &FixedRoller{Faces: faces}
}

func (r *FixedRoller) Roll() Face {
	f := r.Faces[r.next%len(r.Faces)]
	r.next++
	return f
}

// Rolled is the number of faces handed out so far.
func (r *FixedRoller) Rolled() int {
	return r.next
}
