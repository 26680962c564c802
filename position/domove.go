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
	"github.com/kestrelchess/core/pkg/castling"
	"github.com/kestrelchess/core/pkg/move"
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// DoMove applies m, which must be a member of p.LegalMoves(), and
// returns the resulting position. p itself is never mutated: the
// returned position is a freshly built clone whose Parent is p.
func (p *Position) DoMove(m move.Move) *Position {
	next := p.clone()

	us := p.SideToMove
	them := us.Other()

	next.SideToMove = them
	next.EnPassant = square.None
	next.Rule50++
	next.GamePly++
	next.LastMove = m

	from := m.From()
	to := m.To()
	movedPiece := p.Mailbox[from]

	switch {
	case m.IsEnPassant():
		var capturedSq square.Square
		if us == piece.White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		next.clearSquare(capturedSq)
		next.clearSquare(from)
		next.fillSquare(to, movedPiece)
		next.Rule50 = 0

	case m.IsCastle():
		rook := castling.Rooks[to]
		next.clearSquare(from)
		next.fillSquare(to, movedPiece)
		next.clearSquare(rook.From)
		next.fillSquare(rook.To, rook.RookType)

	default:
		if next.Mailbox[to] != piece.NoPiece {
			next.clearSquare(to)
			next.Rule50 = 0
		}

		next.clearSquare(from)

		if m.IsPromotion() {
			next.fillSquare(to, piece.New(m.Promotion(), us))
		} else {
			next.fillSquare(to, movedPiece)
		}

		if movedPiece.Type() == piece.Pawn {
			next.Rule50 = 0

			if abs(int(to)-int(from)) == 16 {
				var transit square.Square
				if us == piece.White {
					transit = from + 8
				} else {
					transit = from - 8
				}
				if bitboard.PawnCaptures(transit, us)&next.Pawns(them) != bitboard.Empty {
					next.EnPassant = transit
				}
			}
		}
	}

	next.CastleRights &^= castling.RightUpdates[from]
	next.CastleRights &^= castling.RightUpdates[to]

	next.Checkers = next.AttacksTo(next.KingSquare[next.SideToMove], us)

	next.recomputeKey()

	return next
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
