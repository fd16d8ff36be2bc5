package game

import "wargame/hex"

// Battle reports the outcome of one attack.
type Battle struct {
	Faces     []Face
	Hits      int
	Destroyed bool
}

// Resolve rolls dice against defender and applies the casualties. The
// defender is only marked as destroyed; Board.ResetView removes it.
func Resolve(rules Rules, roller Roller, dice int, defender *Unit) Battle {
	battle := Battle{Faces: make([]Face, 0, dice)}
	for i := 0; i < dice; i++ {
		face := roller.Roll()
		battle.Faces = append(battle.Faces, face)
		if rules.Casualty(face, defender.Type) {
			battle.Hits++
		}
	}
	defender.Damage(battle.Hits)
	battle.Destroyed = defender.Destroyed
	return battle
}

// MoveTransform moves the unit on src to dest when dest is empty and
// within the unit's movement range. Anything else leaves both tiles alone.
// moved, if not nil, receives the number of steps taken.
func MoveTransform(moved *int) Transform {
	return func(src, dest *Tile, view Reader) {
		if src.Unit == nil || dest.Unit != nil {
			return
		}
		kind := src.Unit.Type
		steps, ok := MoveRange(view, src.Pos(), kind, kind.Movement())[dest.Pos()]
		if !ok {
			return
		}
		dest.Unit = src.RemoveUnit()
		if moved != nil {
			*moved = steps
		}
	}
}

// AttackTransform resolves an attack by the unit on src against the unit
// on dest, using the dice assigned to dest by Board.Annotate. The attack
// is ignored unless dest holds an enemy among the attacker's fire targets
// and its nonzero dice label matches what rules assign to this attacker.
// report, if not nil, receives the outcome.
func AttackTransform(rules Rules, roller Roller, report *Battle) Transform {
	return func(src, dest *Tile, view Reader) {
		if src.Unit == nil || dest.Unit == nil || dest.Dice == nil || *dest.Dice <= 0 {
			return
		}
		if !src.Unit.Faction.Opposes(dest.Unit.Faction) {
			return
		}
		if !FireTargets(view, src.Pos()).Has(dest.Pos()) {
			return
		}
		// The label must have been computed for this attacker.
		distance := hex.Distance(src.Pos(), dest.Pos())
		if rules.Dice(*src.Unit, *dest.Unit, distance, *dest) != *dest.Dice {
			return
		}
		battle := Resolve(rules, roller, *dest.Dice, dest.Unit)
		if report != nil {
			*report = battle
		}
	}
}
