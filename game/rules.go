package game

// Rules decides how many dice an attack gets and what each face does.
type Rules interface {
	Dice(attacker, defender Unit, distance int, tile Tile) int
	Casualty(face Face, defender UnitType) bool
}
