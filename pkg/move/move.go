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

// Package move declares the packed Move representation and its UCI
// (de)serialization.
package move

import (
	"strings"

	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// Move is a packed chess move. Only 17 bits are significant:
//
//	bits 0-5:   destination square
//	bits 6-11:  origin square
//	bits 12-14: promotion piece type (NoType if none)
//	bit 15:     en-passant flag
//	bit 16:     castle flag
//
// The flags are mutually exclusive: a move is at most one of a promotion,
// an en-passant capture, or a castle.
type Move uint32

const (
	destWidth = 6
	origWidth = 6
	promWidth = 3

	destOffset = 0
	origOffset = destOffset + destWidth
	promOffset = origOffset + origWidth
	epOffset   = promOffset + promWidth
	castOffset = epOffset + 1

	destMask = (1 << destWidth) - 1
	origMask = (1 << origWidth) - 1
	promMask = (1 << promWidth) - 1
)

// Null is the zero Move, representing the absence of a move.
const Null Move = 0

// Make creates a quiet move or capture between two squares.
func Make(from, to square.Square) Move {
	return Move(to)<<destOffset | Move(from)<<origOffset
}

// MakeEnPassant creates an en-passant capture move.
func MakeEnPassant(from, to square.Square) Move {
	return Make(from, to) | 1<<epOffset
}

// MakePromotion creates a pawn promotion move.
func MakePromotion(from, to square.Square, promotion piece.Type) Move {
	return Make(from, to) | Move(promotion)<<promOffset
}

// MakeCastle creates a castling move, encoded as the king's two-square
// move (e.g. e1g1 for white kingside).
func MakeCastle(from, to square.Square) Move {
	return Make(from, to) | 1<<castOffset
}

// From returns the move's origin square.
func (m Move) From() square.Square {
	return square.Square((m >> origOffset) & origMask)
}

// To returns the move's destination square.
func (m Move) To() square.Square {
	return square.Square((m >> destOffset) & destMask)
}

// Promotion returns the promotion piece type, or piece.NoType if the
// move is not a promotion.
func (m Move) Promotion() piece.Type {
	return piece.Type((m >> promOffset) & promMask)
}

// IsPromotion reports whether the move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion() != piece.NoType
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return (m>>epOffset)&1 != 0
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return (m>>castOffset)&1 != 0
}

// IsKingsideCastle reports whether the move is kingside castling.
func (m Move) IsKingsideCastle() bool {
	return m.IsCastle() && m.To().File() == square.FileG
}

// IsQueensideCastle reports whether the move is queenside castling.
func (m Move) IsQueensideCastle() bool {
	return m.IsCastle() && m.To().File() == square.FileC
}

// String serializes the move to UCI notation, e.g. "e2e4", "e7e8q", or
// "0000" for the null move.
func (m Move) String() string {
	if m == Null {
		return "0000"
	}

	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promotionLetters[m.Promotion()]
	}
	return s
}

var promotionLetters = [piece.TypeN]string{
	piece.Knight: "n",
	piece.Bishop: "b",
	piece.Rook:   "r",
	piece.Queen:  "q",
}

// promotionFromLetter maps a UCI/SAN promotion letter (case-insensitive)
// to its piece type.
func promotionFromLetter(c byte) (piece.Type, bool) {
	switch c {
	case 'n', 'N':
		return piece.Knight, true
	case 'b', 'B':
		return piece.Bishop, true
	case 'r', 'R':
		return piece.Rook, true
	case 'q', 'Q':
		return piece.Queen, true
	default:
		return piece.NoType, false
	}
}

// ParseUCI matches a UCI move string, e.g. "e2e4" or "a7a8q", against a
// list of legal moves (typically position.LegalMoves()) and returns the
// matching Move, or Null if none match. Matching against the legal move
// list, rather than reconstructing flags from the string alone, is what
// lets a bare "e1g1" resolve to a castle and "e5d6" resolve to an
// en-passant capture without consulting the board here.
func ParseUCI(s string, legal []Move) Move {
	s = strings.TrimSpace(s)
	if len(s) < 4 || len(s) > 5 {
		return Null
	}

	from, err := square.New(s[0:2])
	if err != nil || from == square.None {
		return Null
	}
	to, err := square.New(s[2:4])
	if err != nil || to == square.None {
		return Null
	}

	var wantPromotion piece.Type
	if len(s) == 5 {
		pt, ok := promotionFromLetter(s[4])
		if !ok {
			return Null
		}
		wantPromotion = pt
	}

	for _, cand := range legal {
		if cand.From() == from && cand.To() == to && cand.Promotion() == wantPromotion {
			return cand
		}
	}

	return Null
}
