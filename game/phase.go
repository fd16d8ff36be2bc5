package game

import "fmt"

// Phase is a step of a player turn. The zero value is CardPhase.
type Phase int

const (
	CardPhase Phase = iota
	OrderPhase
	MovePhase
	BattlePhase
	DrawPhase
)

func (p Phase) String() string {
	switch p {
	case CardPhase:
		return "Card"
	case OrderPhase:
		return "Order"
	case MovePhase:
		return "Move"
	case BattlePhase:
		return "Battle"
	case DrawPhase:
		return "Draw"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Advance moves to the next phase. Draw wraps around to Card.
func (p *Phase) Advance() {
	switch *p {
	case CardPhase:
		*p = OrderPhase
	case OrderPhase:
		*p = MovePhase
	case MovePhase:
		*p = BattlePhase
	case BattlePhase:
		*p = DrawPhase
	case DrawPhase:
		*p = CardPhase
	default:
		panic("Unknown game phase")
	}
}
