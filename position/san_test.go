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
	"github.com/kestrelchess/core/position"
)

func TestSANRoundTripAllLegalMoves(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r6r/1b2k1bq/8/8/7B/8/8/R3K2R b KQ - 3 2",
	}

	for _, fen := range fens {
		p, err := position.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}

		for _, m := range p.LegalMoves() {
			san := p.MoveToSAN(m)
			got := p.SANToMove(san)
			if got != m {
				t.Errorf("%s: SANToMove(MoveToSAN(%s)) = %s, want %s", fen, m, got, m)
			}
		}
	}
}

func TestSANDisambiguation(t *testing.T) {
	// Two white rooks can reach d1: one must disambiguate by file.
	p := mustParseFEN(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1")

	sans := map[string]bool{}
	for _, m := range p.LegalMoves() {
		if m.To().String() == "d1" && p.PieceOn(m.From()).Type().String() == "r" {
			sans[p.MoveToSAN(m)] = true
		}
	}

	if len(sans) != 2 {
		t.Fatalf("expected two disambiguated rook moves to d1, got %v", sans)
	}
	if !sans["Rad1"] || !sans["Rhd1"] {
		t.Errorf("disambiguated SANs = %v, want {Rad1, Rhd1}", sans)
	}
}

func TestSANCastle(t *testing.T) {
	p := mustParseFEN(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	var kingside, queenside move.Move
	for _, m := range p.LegalMoves() {
		if m.IsKingsideCastle() {
			kingside = m
		}
		if m.IsQueensideCastle() {
			queenside = m
		}
	}

	if san := p.MoveToSAN(kingside); san != "O-O" {
		t.Errorf("kingside castle SAN = %q, want O-O", san)
	}
	if san := p.MoveToSAN(queenside); san != "O-O-O" {
		t.Errorf("queenside castle SAN = %q, want O-O-O", san)
	}
}
