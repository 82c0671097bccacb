package model

// CellState is the binary state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// IsAlive reports whether the state is Alive
func (s CellState) IsAlive() bool {
	return s == Alive
}

// IsDead reports whether the state is Dead
func (s CellState) IsDead() bool {
	return s == Dead
}

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}
