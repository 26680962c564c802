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

package see_test

import (
	"testing"

	"github.com/kestrelchess/core/pkg/move"
	"github.com/kestrelchess/core/pkg/see"
	"github.com/kestrelchess/core/position"
)

func findMove(t *testing.T, p *position.Position, uci string) move.Move {
	t.Helper()
	m := p.ParseUCIMove(uci)
	if m == move.Null {
		t.Fatalf("%q is not a legal move in\n%s", uci, p)
	}
	return m
}

func TestEvaluateLosingExchange(t *testing.T) {
	// e5 is defended exactly once, by the c6 knight, and nothing stands
	// behind either knight on the f3-e5 or c6-e5 lines to x-ray in: the
	// full exchange is pawn captured, knight recaptured, a net loss of a
	// knight for a pawn for the side that initiates it.
	p, err := position.ParseFEN("r1bqkb1r/pppp1ppp/2n2n2/4p3/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	nxe5 := findMove(t, p, "f3e5")

	if see.Evaluate(p, nxe5, 0) {
		t.Errorf("Nxe5 should not beat threshold 0: it loses a knight for a pawn")
	}
	if !see.Evaluate(p, nxe5, -2) {
		t.Errorf("Nxe5 should beat threshold -2: that is its exact material result")
	}
}

func TestEvaluateWinningCapture(t *testing.T) {
	// An undefended pawn: capturing it is a clean material win.
	p, err := position.ParseFEN("4k3/8/8/4p3/8/3N4/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	nxe5 := findMove(t, p, "d3e5")

	if !see.Evaluate(p, nxe5, 1) {
		t.Errorf("capturing an undefended pawn should beat threshold 1")
	}
}
