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

// Package perft counts the leaf nodes of the legal move tree rooted at
// a position, the standard correctness benchmark for a move generator.
package perft

import "github.com/kestrelchess/core/position"

// Perft returns the number of leaf positions reachable from p by
// playing exactly depth plies of legal moves. Every move returned by
// LegalMoves is, by construction, already legal, so unlike a
// pseudo-legal generator this walk never needs to filter children by
// whether they leave their own king in check.
func Perft(p *position.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}

	var nodes int
	for _, m := range moves {
		nodes += Perft(p.DoMove(m), depth-1)
	}

	return nodes
}

// Divide returns, for every legal move at p, the perft node count of
// the subtree rooted at that move. It is used to localize a move
// generator bug to a specific move when a perft count diverges from a
// known-correct value.
func Divide(p *position.Position, depth int) map[string]int {
	result := make(map[string]int)

	if depth == 0 {
		return result
	}

	for _, m := range p.LegalMoves() {
		result[m.String()] = Perft(p.DoMove(m), depth-1)
	}

	return result
}
