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

package position

import (
	"github.com/kestrelchess/core/pkg/bitboard"
	"github.com/kestrelchess/core/pkg/piece"
)

// pinInfo holds the pin rays of color c, split into rook-like
// (horizontal/vertical) and bishop-like (diagonal) rays. Each ray runs
// from the king (exclusive) up to and including the pinning slider, so
// a piece of c is pinned iff its square lies on one of them.
type pinInfo struct {
	HV, Diag bitboard.Board
}

// All returns every pinned square, regardless of ray orientation.
func (pi pinInfo) All() bitboard.Board {
	return pi.HV | pi.Diag
}

// calculatePins finds every piece of color c whose removal would expose
// king_square[c] to a sliding attack, per the XORed-occupancy technique:
// consider the king as if it were a rook/bishop of its own color, find
// enemy sliders that would hit it once a single friendly blocker is
// removed from the ray, and confirm exactly one friendly piece sits
// between them.
func (p *Position) calculatePins(c piece.Color) pinInfo {
	them := c.Other()
	ksq := p.KingSquare[c]

	friends := p.ByColor[c]
	enemies := p.ByColor[them]

	var pins pinInfo

	rookers := (p.Rooks(them) | p.Queens(them)) & bitboard.Rook(ksq, bitboard.Empty, enemies)
	for rookers != bitboard.Empty {
		attacker := rookers.Pop()
		ray := bitboard.Between[ksq][attacker] | bitboard.Squares[attacker]
		if (ray & friends).Count() == 1 {
			pins.HV |= ray
		}
	}

	bishopers := (p.Bishops(them) | p.Queens(them)) & bitboard.Bishop(ksq, bitboard.Empty, enemies)
	for bishopers != bitboard.Empty {
		attacker := bishopers.Pop()
		ray := bitboard.Between[ksq][attacker] | bitboard.Squares[attacker]
		if (ray & friends).Count() == 1 {
			pins.Diag |= ray
		}
	}

	return pins
}
