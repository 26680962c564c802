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

// Oracle differential tests cross-check this package's move generator
// against github.com/notnil/chess, an independent implementation, so a
// latent bug shared between a hand-written test FEN and the move
// generator itself can't silently cancel out.
package position_test

import (
	"testing"

	"github.com/kestrelchess/core/position"
	"github.com/notnil/chess"
)

func oracleGame(t *testing.T, fen string) *chess.Game {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("chess.FEN(%q): %v", fen, err)
	}
	return chess.NewGame(opt)
}

func oraclePerft(g *chess.Game, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := g.ValidMoves()
	if depth == 1 {
		return len(moves)
	}
	var nodes int
	for _, m := range moves {
		clone := g.Clone()
		if err := clone.Move(m); err != nil {
			continue
		}
		nodes += oraclePerft(clone, depth-1)
	}
	return nodes
}

func ourPerft(p *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	var nodes int
	for _, m := range moves {
		nodes += ourPerft(p.DoMove(m), depth-1)
	}
	return nodes
}

func TestOracleLegalMoveCounts(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 0 1",
	}

	for _, fen := range fens {
		p, err := position.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		ours := len(p.LegalMoves())
		theirs := len(oracleGame(t, fen).ValidMoves())

		if ours != theirs {
			t.Errorf("%s: legal move count = %d, oracle = %d", fen, ours, theirs)
		}
	}
}

func TestOraclePerftDepthTwo(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		p, err := position.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		ours := ourPerft(p, 2)
		theirs := oraclePerft(oracleGame(t, fen), 2)

		if ours != theirs {
			t.Errorf("%s: perft(2) = %d, oracle = %d", fen, ours, theirs)
		}
	}
}
