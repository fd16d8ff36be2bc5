package hex

// Offset is an odd-row offset coordinate, as used by map editors and
// printed scenario sheets.
type Offset struct {
	Col, Row int
}

// ToOffset converts h to odd-row offset form.
func (h Hex) ToOffset() Offset {
	return Offset{
		Col: h.q + (h.r-(h.r&1))/2,
		Row: h.r,
	}
}

// FromOffset converts an odd-row offset coordinate back to cube form.
func FromOffset(o Offset) Hex {
	q := o.Col - (o.Row-(o.Row&1))/2
	return Axial(q, o.Row)
}
