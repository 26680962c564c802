// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package position_test

import (
	"testing"

	"github.com/kestrelchess/core/pkg/move"
	"github.com/kestrelchess/core/pkg/square"
	"github.com/kestrelchess/core/position"
)

func mustSquare(t *testing.T, id string) square.Square {
	t.Helper()
	s, err := square.New(id)
	if err != nil {
		t.Fatalf("square.New(%q): %v", id, err)
	}
	return s
}

func mustParseFEN(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func mustMove(t *testing.T, p *position.Position, uci string) *position.Position {
	t.Helper()
	m := p.ParseUCIMove(uci)
	if m == move.Null {
		t.Fatalf("%q is not a legal move in\n%s", uci, p)
	}
	return p.DoMove(m)
}

func TestDoMoveE4EmitsFEN(t *testing.T) {
	p := mustParseFEN(t, position.StartFEN)
	next := mustMove(t, p, "e2e4")

	// No black pawn attacks e3, so the conditional EP rule emits "-",
	// not "e3": ep_square is only ever set when a capture actually exists.
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"
	if got := next.FEN(); got != want {
		t.Errorf("FEN after e2e4 = %q, want %q", got, want)
	}
}

func TestLoneKingAndPawnLegalMoveCount(t *testing.T) {
	p := mustParseFEN(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	moves := p.LegalMoves()

	// Four king moves (d1, d2, f1, f2; e2 holds the pawn) and two pawn pushes.
	if len(moves) != 6 {
		t.Fatalf("legal move count = %d, want 6", len(moves))
	}

	sans := map[string]bool{}
	for _, m := range moves {
		sans[p.MoveToSAN(m)] = true
	}

	if !sans["e3"] || !sans["e4"] {
		t.Errorf("expected pawn pushes e3 and e4 among %v", sans)
	}
}

func TestFoolsMate(t *testing.T) {
	p := mustParseFEN(t, position.StartFEN)
	p = mustMove(t, p, "f2f3")
	p = mustMove(t, p, "e7e5")
	p = mustMove(t, p, "g2g4")
	p = mustMove(t, p, "d8h4")

	if !p.IsCheckmate() {
		t.Fatalf("expected checkmate after fool's mate, got\n%s", p)
	}
	if p.SideToMove.String() != "w" {
		t.Errorf("side to move = %s, want w", p.SideToMove)
	}
}

func TestCastlingClearsRights(t *testing.T) {
	p := mustParseFEN(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	haveKingside, haveQueenside := false, false
	for _, m := range p.LegalMoves() {
		if m.IsKingsideCastle() {
			haveKingside = true
		}
		if m.IsQueensideCastle() {
			haveQueenside = true
		}
	}
	if !haveKingside || !haveQueenside {
		t.Fatalf("expected both O-O and O-O-O to be legal, kingside=%v queenside=%v", haveKingside, haveQueenside)
	}

	next := mustMove(t, p, "e1g1")
	if pc := next.PieceOn(mustSquare(t, "f1")); pc.String() != "R" {
		t.Errorf("rook not relocated to f1 after O-O, got %q", pc)
	}
	if next.CastleRights != 0 {
		t.Errorf("castle rights after O-O = %v, want none", next.CastleRights)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	p := mustParseFEN(t, position.StartFEN)

	shuffle := []string{"b1c3", "b8c6", "c3b1", "c6b8"}
	for rep := 0; rep < 3; rep++ {
		for _, uci := range shuffle {
			p = mustMove(t, p, uci)
		}
	}

	if !p.IsRepetitionDraw() {
		t.Fatalf("expected threefold repetition draw after 3 knight shuffles, got\n%s", p)
	}
}
