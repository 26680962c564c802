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

	"github.com/kestrelchess/core/internal/perft"
	"github.com/kestrelchess/core/position"
)

func TestPerft(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	const endgame = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	const tricky = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"

	cases := []struct {
		name  string
		fen   string
		depth int
		nodes int
	}{
		{"initial depth 1", position.StartFEN, 1, 20},
		{"initial depth 4", position.StartFEN, 4, 197281},
		{"initial depth 5", position.StartFEN, 5, 4865609},
		{"kiwipete depth 3", kiwipete, 3, 97862},
		{"endgame depth 5", endgame, 5, 674624},
		{"tricky depth 4", tricky, 4, 422333},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := position.ParseFEN(c.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q): %v", c.fen, err)
			}

			got := perft.Perft(p, c.depth)
			if got != c.nodes {
				t.Errorf("Perft(depth=%d) = %d, want %d", c.depth, got, c.nodes)
			}
		})
	}
}
