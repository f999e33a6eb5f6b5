package core

import "testing"

func boardFrom(cells [9]Symbol) Board {
	var b Board
	copy(b[:], cells[:])
	return b
}

func TestEvaluateAllWinningLines(t *testing.T) {
	lines := [8][3]int{
		{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
		{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
		{0, 4, 8}, {2, 4, 6},
	}

	for _, symbol := range []Symbol{SymbolX, SymbolO} {
		for _, line := range lines {
			var b Board
			for _, pos := range line {
				b[pos] = symbol
			}
			out := Evaluate(b)
			if out.Winner != symbol {
				t.Errorf("line %v for %s: winner = %q, want %q", line, symbol, out.Winner, symbol)
			}
			if out.Draw {
				t.Errorf("line %v for %s: unexpected draw", line, symbol)
			}
		}
	}
}

func TestEvaluateOngoing(t *testing.T) {
	cases := []Board{
		{},
		boardFrom([9]Symbol{SymbolX}),
		boardFrom([9]Symbol{SymbolX, SymbolO, SymbolX, SymbolO}),
	}
	for _, b := range cases {
		out := Evaluate(b)
		if out.Winner != SymbolNone || out.Draw {
			t.Errorf("board %v: got %+v, want ongoing", b, out)
		}
	}
}

func TestEvaluateDrawOnlyWhenFullAndNoLine(t *testing.T) {
	// X O X / X O O / O X X: full, no winning line.
	full := boardFrom([9]Symbol{
		SymbolX, SymbolO, SymbolX,
		SymbolX, SymbolO, SymbolO,
		SymbolO, SymbolX, SymbolX,
	})
	out := Evaluate(full)
	if !out.Draw || out.Winner != SymbolNone {
		t.Fatalf("full board without line: got %+v, want draw", out)
	}

	// Same board with one cell open must still be ongoing.
	open := full
	open[8] = SymbolNone
	out = Evaluate(open)
	if out.Draw || out.Winner != SymbolNone {
		t.Fatalf("board with open cell: got %+v, want ongoing", out)
	}
}

func TestEvaluateFullBoardWithWinnerIsNotDraw(t *testing.T) {
	b := boardFrom([9]Symbol{
		SymbolX, SymbolX, SymbolX,
		SymbolO, SymbolO, SymbolX,
		SymbolO, SymbolX, SymbolO,
	})
	out := Evaluate(b)
	if out.Winner != SymbolX || out.Draw {
		t.Fatalf("got %+v, want X win without draw", out)
	}
}

func TestSymbolOther(t *testing.T) {
	if SymbolX.Other() != SymbolO || SymbolO.Other() != SymbolX {
		t.Fatal("Other must map X<->O")
	}
}

func TestGameStateOver(t *testing.T) {
	g := NewGameState()
	if g.Over() {
		t.Fatal("fresh game must not be over")
	}
	g.Winner = SymbolO
	if !g.Over() {
		t.Fatal("game with winner must be over")
	}
	g = NewGameState()
	g.Draw = true
	if !g.Over() {
		t.Fatal("drawn game must be over")
	}
}
