package game

type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Dice(attacker, defender Unit, distance int, tile Tile) int {
	return AssignDice(attacker, defender, distance, tile)
}

// Casualty: grenades always hit, unit faces hit their own type, flags and
// stars never hit.
func (sr *StandardRules) Casualty(face Face, defender UnitType) bool {
	switch face {
	case FaceGrenade:
		return true
	case FaceArmor:
		return defender == Armor
	case FaceInfantry:
		return defender == Infantry
	default:
		return false
	}
}
