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

import "testing"

func TestPinnedRookCannotLeaveLine(t *testing.T) {
	// White rook on d2 is pinned to the king on d1 by the black rook on d8.
	p := mustParseFEN(t, "3r1k2/8/8/8/8/8/3R4/3K4 w - - 0 1")

	for _, m := range p.LegalMoves() {
		if m.From().String() != "d2" {
			continue
		}
		if m.To().File() != m.From().File() {
			t.Errorf("pinned rook made an off-file move %s-%s", m.From(), m.To())
		}
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Black knight on d3 and bishop on h4 both give check to the white
	// king on e1 simultaneously.
	p := mustParseFEN(t, "4k3/8/8/8/7b/3n4/8/4K3 w - - 0 1")

	if !p.IsCheck() {
		t.Fatalf("expected white king to be in check")
	}

	for _, m := range p.LegalMoves() {
		if p.PieceOn(m.From()).Type().String() != "k" {
			t.Errorf("double check allowed a non-king move %s-%s", m.From(), m.To())
		}
	}
}

func TestEnPassantPinnedAlongRank(t *testing.T) {
	// White king e5, black rook a5, white pawn d5, black pawn c7-c5
	// creates the classic horizontal-pin en passant exception: capturing
	// exposes the king to the rook along rank 5 once both pawns vanish.
	p := mustParseFEN(t, "7k/2p5/8/r2PK3/8/8/8/8 b - - 0 1")
	p = mustMove(t, p, "c7c5")

	for _, m := range p.LegalMoves() {
		if m.From().String() == "d5" && m.IsEnPassant() {
			t.Errorf("en passant capture d5xc6 should be illegal: it exposes the king along rank 5")
		}
	}
}
