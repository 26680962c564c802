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

// Package see implements static exchange evaluation: given a capture on
// a position, estimate the material result of the full exchange
// sequence on the target square without searching.
package see

import (
	"github.com/kestrelchess/core/pkg/bitboard"
	"github.com/kestrelchess/core/pkg/move"
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/position"
)

// Value is the material worth of a piece type for exchange evaluation
// purposes, in pawn units.
type Value int

// values lists the worth, in pawn units, of every piece type
// participating in an exchange.
var values = [piece.TypeN]Value{
	piece.Pawn:   1,
	piece.Knight: 3,
	piece.Bishop: 3,
	piece.Rook:   5,
	piece.Queen:  9,
	piece.King:   100,
}

// Evaluate performs a static exchange evaluation of m on p and reports
// whether the resulting material swing is at least threshold. It does
// not return the swing itself. m need not be a capture: a non-capture
// wins nothing, so its result depends only on the exchange the opponent
// can start on the destination square.
func Evaluate(p *position.Position, m move.Move, threshold Value) bool {
	source, target := m.From(), m.To()

	attacker := p.PieceOn(source).Type()

	var victim piece.Type
	if m.IsEnPassant() {
		victim = piece.Pawn
	} else {
		victim = p.PieceOn(target).Type()
	}

	balance := values[victim]
	if balance < threshold {
		return false
	}

	balance -= values[attacker]
	if balance >= threshold {
		return true
	}

	occupied := p.Occupied()
	occupied.Unset(source)
	sideToMove := p.SideToMove.Other()

	attackers := p.AttackersTo(target, occupied) & occupied

	diagonal := p.ByType[piece.Bishop] | p.ByType[piece.Queen]
	straight := p.ByType[piece.Rook] | p.ByType[piece.Queen]

	for {
		friends := attackers & p.ByColor[sideToMove]
		if friends == bitboard.Empty {
			break
		}

		for attacker = piece.Pawn; attacker < piece.King; attacker++ {
			if friends&p.ByType[attacker] != bitboard.Empty {
				break
			}
		}

		if attacker == piece.King && (attackers&^friends) != bitboard.Empty {
			// capturing with the king is illegal while the opponent
			// still has an attacker on the target square.
			break
		}

		source = (friends & p.ByType[attacker]).FirstOne()

		occupied.Unset(source)
		sideToMove = sideToMove.Other()

		balance = -balance - values[attacker]
		if balance >= threshold {
			break
		}

		switch attacker {
		case piece.Pawn, piece.Bishop:
			attackers |= bitboard.Bishop(target, bitboard.Empty, occupied) & diagonal
		case piece.Rook:
			attackers |= bitboard.Rook(target, bitboard.Empty, occupied) & straight
		case piece.Queen:
			attackers |= bitboard.Bishop(target, bitboard.Empty, occupied) & diagonal
			attackers |= bitboard.Rook(target, bitboard.Empty, occupied) & straight
		}

		attackers &= occupied
	}

	return sideToMove != p.SideToMove
}
