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

	"github.com/kestrelchess/core/position"
)

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}

	for _, fen := range fens {
		p, err := position.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := p.FEN(); got != fen {
			t.Errorf("FEN() = %q, want %q", got, fen)
		}
	}
}

func TestParseFENOmittedTrailingFields(t *testing.T) {
	p, err := position.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN with omitted clocks: %v", err)
	}
	if p.Rule50 != 0 {
		t.Errorf("Rule50 = %d, want 0", p.Rule50)
	}
	if p.GamePly != 0 {
		t.Errorf("GamePly = %d, want 0", p.GamePly)
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"wrong rank count":    "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rank too short":      "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"invalid piece char":  "xnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"missing black king":  "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"duplicate white king": "rnbqkbnr/ppppKppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"pawn on back rank":    "Pnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"side not to move in check": "k3r3/8/8/8/8/8/8/4K3 b - - 0 1",
	}

	for name, fen := range cases {
		if _, err := position.ParseFEN(fen); err == nil {
			t.Errorf("%s: ParseFEN(%q) succeeded, want error", name, fen)
		}
	}
}
