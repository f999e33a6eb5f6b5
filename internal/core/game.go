package core

// Symbol is one of the two turn markers assigned to players when they
// enter a room. The zero value means an empty cell.
type Symbol string

const (
	SymbolNone Symbol = ""
	SymbolX    Symbol = "X"
	SymbolO    Symbol = "O"
)

// Other returns the opposing symbol.
func (s Symbol) Other() Symbol {
	if s == SymbolX {
		return SymbolO
	}
	return SymbolX
}

// Board is the 9-cell playing field in row-major order.
type Board [9]Symbol

// Full reports whether every cell holds a symbol.
func (b Board) Full() bool {
	for _, cell := range b {
		if cell == SymbolNone {
			return false
		}
	}
	return true
}

// GameState is the mutable match state of one room.
type GameState struct {
	Board   Board
	Turn    Symbol
	Winner  Symbol
	Draw    bool
	Started bool
}

// NewGameState returns a fresh, not-yet-started game with X to move.
func NewGameState() *GameState {
	return &GameState{Turn: SymbolX}
}

// Over reports whether the game reached a terminal state.
func (g *GameState) Over() bool {
	return g.Winner != SymbolNone || g.Draw
}

// Outcome is the result of evaluating a board position.
type Outcome struct {
	Winner Symbol
	Draw   bool
}

// the three rows, three columns and two diagonals
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Evaluate inspects all eight winning lines of the board. A line of three
// equal symbols wins for that symbol; a full board with no winner is a
// draw; anything else means the game is still ongoing.
func Evaluate(b Board) Outcome {
	for _, line := range winningLines {
		if s := b[line[0]]; s != SymbolNone && s == b[line[1]] && s == b[line[2]] {
			return Outcome{Winner: s}
		}
	}
	if b.Full() {
		return Outcome{Draw: true}
	}
	return Outcome{}
}
