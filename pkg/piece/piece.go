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

// Package piece implements representations of chess colors, piece types,
// and colored pieces.
//
// The King, Queen, Rook, Knight, Bishop, and Pawn are represented by the
// K, Q, R, N, B, and P strings respectively, with uppercase for white and
// lower case for black. The strings w and b represent the White and
// Black colors respectively.
package piece

import "fmt"

// Color represents the color of a Piece.
type Color uint8

// the two piece colors.
const (
	White Color = iota
	Black

	ColorN = 2
)

// NewColor creates an instance of Color from the given id, "w" or "b".
func NewColor(id string) (Color, error) {
	switch id {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, fmt.Errorf("piece: invalid color id %q", id)
	}
}

// Other returns the opposite color, by flipping its single bit.
func (c Color) Other() Color {
	return c ^ Black
}

// String converts a Color to it's string representation.
func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// Type represents the type/kind of a chess piece.
type Type uint8

// the six piece types, plus the sentinel NoType.
const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	TypeN = 7
)

// String converts a Type to its (black, lower-case) string representation.
func (t Type) String() string {
	const typeToStr = " pnbrqk"
	return string(typeToStr[t])
}

// Promotions lists the piece types a pawn may promote to, in the fixed
// Q, R, B, N order used for deterministic move generation output.
var Promotions = [4]Type{Queen, Rook, Bishop, Knight}

// Piece represents a colored chess piece, packed as (color<<3 | type).
type Piece uint8

// colorOffset is the bit offset of the color field within a Piece.
const colorOffset = 3
const typeMask = (1 << colorOffset) - 1

// the 12 colored pieces, plus the sentinel NoPiece (the empty square).
const (
	NoPiece Piece = 0

	WhitePawn   Piece = Piece(White)<<colorOffset | Piece(Pawn)
	WhiteKnight Piece = Piece(White)<<colorOffset | Piece(Knight)
	WhiteBishop Piece = Piece(White)<<colorOffset | Piece(Bishop)
	WhiteRook   Piece = Piece(White)<<colorOffset | Piece(Rook)
	WhiteQueen  Piece = Piece(White)<<colorOffset | Piece(Queen)
	WhiteKing   Piece = Piece(White)<<colorOffset | Piece(King)

	BlackPawn   Piece = Piece(Black)<<colorOffset | Piece(Pawn)
	BlackKnight Piece = Piece(Black)<<colorOffset | Piece(Knight)
	BlackBishop Piece = Piece(Black)<<colorOffset | Piece(Bishop)
	BlackRook   Piece = Piece(Black)<<colorOffset | Piece(Rook)
	BlackQueen  Piece = Piece(Black)<<colorOffset | Piece(Queen)
	BlackKing   Piece = Piece(Black)<<colorOffset | Piece(King)

	// N is the number of distinct 4-bit Piece values: NoPiece, the 12
	// colored pieces, and the three unused codes 7, 8 and 15.
	N = 16
)

// New creates a new Piece with the given type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<colorOffset | Piece(t)
}

// NewFromString creates a Piece from its FEN piece letter.
func NewFromString(id string) (Piece, error) {
	switch id {
	case "K":
		return WhiteKing, nil
	case "Q":
		return WhiteQueen, nil
	case "R":
		return WhiteRook, nil
	case "N":
		return WhiteKnight, nil
	case "B":
		return WhiteBishop, nil
	case "P":
		return WhitePawn, nil
	case "k":
		return BlackKing, nil
	case "q":
		return BlackQueen, nil
	case "r":
		return BlackRook, nil
	case "n":
		return BlackKnight, nil
	case "b":
		return BlackBishop, nil
	case "p":
		return BlackPawn, nil
	default:
		return NoPiece, fmt.Errorf("piece: invalid piece id %q", id)
	}
}

// String converts a Piece into its FEN piece letter, or " " for NoPiece.
func (p Piece) String() string {
	const pieceToStr = " PNBRQK  pnbrqk"
	return string(pieceToStr[p])
}

// Type returns the piece type of the given Piece.
func (p Piece) Type() Type {
	return Type(p & typeMask)
}

// Color returns the piece color of the given Piece.
func (p Piece) Color() Color {
	return Color(p >> colorOffset)
}

// Is checks if the type of the given Piece matches the given type.
func (p Piece) Is(target Type) bool {
	return p.Type() == target
}

// IsColor checks if the color of the given Piece matches the given Color.
func (p Piece) IsColor(target Color) bool {
	return p.Color() == target
}
