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
	"github.com/kestrelchess/core/pkg/square"
)

// IsAttacked reports whether square s is attacked by any piece of color
// them, under the current occupancy.
func (p *Position) IsAttacked(s square.Square, them piece.Color) bool {
	occ := p.Occupied()

	if bitboard.PawnCaptures(s, them.Other())&p.Pawns(them) != bitboard.Empty {
		return true
	}
	if bitboard.Knight(s, bitboard.Empty)&p.Knights(them) != bitboard.Empty {
		return true
	}
	if bitboard.King(s, bitboard.Empty)&p.Kings(them) != bitboard.Empty {
		return true
	}

	queens := p.Queens(them)
	if bitboard.Bishop(s, bitboard.Empty, occ)&(p.Bishops(them)|queens) != bitboard.Empty {
		return true
	}
	return bitboard.Rook(s, bitboard.Empty, occ)&(p.Rooks(them)|queens) != bitboard.Empty
}

// AttacksTo returns the bitboard of pieces of color them attacking
// square s under the current occupancy.
func (p *Position) AttacksTo(s square.Square, them piece.Color) bitboard.Board {
	occ := p.Occupied()
	queens := p.Queens(them)

	var attackers bitboard.Board
	attackers |= bitboard.PawnCaptures(s, them.Other()) & p.Pawns(them)
	attackers |= bitboard.Knight(s, bitboard.Empty) & p.Knights(them)
	attackers |= bitboard.King(s, bitboard.Empty) & p.Kings(them)
	attackers |= bitboard.Bishop(s, bitboard.Empty, occ) & (p.Bishops(them) | queens)
	attackers |= bitboard.Rook(s, bitboard.Empty, occ) & (p.Rooks(them) | queens)
	return attackers
}

// attacksToWithOccupancy is AttacksTo but against a caller-supplied
// occupancy, used by AttackersTo to simulate a piece having moved or
// been captured.
func (p *Position) attacksToWithOccupancy(s square.Square, them piece.Color, occ bitboard.Board) bitboard.Board {
	queens := p.Queens(them)

	var attackers bitboard.Board
	attackers |= bitboard.PawnCaptures(s, them.Other()) & p.Pawns(them)
	attackers |= bitboard.Knight(s, bitboard.Empty) & p.Knights(them)
	attackers |= bitboard.King(s, bitboard.Empty) & p.Kings(them)
	attackers |= bitboard.Bishop(s, bitboard.Empty, occ) & (p.Bishops(them) | queens)
	attackers |= bitboard.Rook(s, bitboard.Empty, occ) & (p.Rooks(them) | queens)
	return attackers
}

// AttackersTo returns every piece of either color attacking square s
// under the caller-supplied occupancy occ, which may diverge from the
// position's actual occupancy to simulate a capture in progress.
// pkg/see calls it once, with the first capturer removed from occ, to
// collect the initial attackers of the target square.
func (p *Position) AttackersTo(s square.Square, occ bitboard.Board) bitboard.Board {
	return p.attacksToWithOccupancy(s, piece.White, occ) | p.attacksToWithOccupancy(s, piece.Black, occ)
}
