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

func TestParseUCIMoveRoundTrip(t *testing.T) {
	p := mustParseFEN(t, position.StartFEN)

	for _, m := range p.LegalMoves() {
		uci := m.String()
		got := p.ParseUCIMove(uci)
		if got != m {
			t.Errorf("ParseUCIMove(%q) = %s, want %s", uci, got, m)
		}
	}

	if got := p.ParseUCIMove("z9z9"); got != move.Null {
		t.Errorf("ParseUCIMove of garbage = %s, want Null", got)
	}
}

func TestUCIPositionCommand(t *testing.T) {
	p := mustParseFEN(t, position.StartFEN)
	// Four purely reversible knight shuffles: Rule50 tracks GamePly
	// exactly, so the command must walk all the way back to the start.
	p = mustMove(t, p, "g1f3")
	p = mustMove(t, p, "b8c6")
	p = mustMove(t, p, "f3g1")
	p = mustMove(t, p, "c6b8")

	want := "position fen " + position.StartFEN + " moves g1f3 b8c6 f3g1 c6b8"
	if got := p.UCIPositionCommand(); got != want {
		t.Errorf("UCIPositionCommand() = %q, want %q", got, want)
	}
}

func TestUCIPositionCommandResetsAtIrreversibleMove(t *testing.T) {
	p := mustParseFEN(t, position.StartFEN)
	p = mustMove(t, p, "e2e4") // pawn move: Rule50 resets to 0
	p = mustMove(t, p, "d7d5") // pawn move: Rule50 resets to 0
	p = mustMove(t, p, "e4d5") // capture: Rule50 resets to 0

	want := "position fen " + p.FEN()
	if got := p.UCIPositionCommand(); got != want {
		t.Errorf("UCIPositionCommand() after a capture = %q, want %q (no moves suffix)", got, want)
	}
}
