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

package bitboard

import (
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// lookup tables for the precalculated attack/move boards of the
// non-sliding pieces.
var (
	KingAttacks   [square.N]Board
	KnightAttacks [square.N]Board

	// PawnPushes holds the single quiet-push target of a pawn of the
	// given color standing on the given square. Pawn masks it with the
	// occupancy at query time and derives the double push from it.
	PawnPushes [piece.ColorN][square.N]Board
	// PawnAttacks holds the diagonal capture targets of a pawn of the
	// given color standing on the given square.
	PawnAttacks [piece.ColorN][square.N]Board
)

// step is a helper used while building the fixed-offset attack tables
// for kings, knights and pawns: it accumulates every destination square
// reachable from origin by a (file, rank) offset that stays on the board.
type step struct {
	origin square.Square
	board  Board
}

func (s *step) add(df, dr int) {
	file := int(s.origin.File()) + df
	rank := int(s.origin.Rank()) + dr

	if file < 0 || file > int(square.FileH) || rank < 0 || rank > int(square.Rank8) {
		return
	}

	s.board.Set(square.From(square.File(file), square.Rank(rank)))
}

func init() {
	for s := square.A1; s < square.N; s++ {
		KingAttacks[s] = kingAttacksFrom(s)
		KnightAttacks[s] = knightAttacksFrom(s)

		PawnPushes[piece.White][s] = pawnPushesFrom(s, piece.White)
		PawnPushes[piece.Black][s] = pawnPushesFrom(s, piece.Black)
		PawnAttacks[piece.White][s] = pawnAttacksFrom(s, piece.White)
		PawnAttacks[piece.Black][s] = pawnAttacksFrom(s, piece.Black)
	}
}

func kingAttacksFrom(from square.Square) Board {
	st := step{origin: from}
	st.add(1, 0)
	st.add(1, 1)
	st.add(0, 1)
	st.add(-1, 1)
	st.add(-1, 0)
	st.add(-1, -1)
	st.add(0, -1)
	st.add(1, -1)
	return st.board
}

func knightAttacksFrom(from square.Square) Board {
	st := step{origin: from}
	st.add(1, 2)
	st.add(2, 1)
	st.add(2, -1)
	st.add(1, -2)
	st.add(-1, -2)
	st.add(-2, -1)
	st.add(-2, 1)
	st.add(-1, 2)
	return st.board
}

func pawnPushesFrom(from square.Square, c piece.Color) Board {
	st := step{origin: from}
	if c == piece.White {
		st.add(0, 1)
	} else {
		st.add(0, -1)
	}
	return st.board
}

func pawnAttacksFrom(from square.Square, c piece.Color) Board {
	st := step{origin: from}
	if c == piece.White {
		st.add(1, 1)
		st.add(-1, 1)
	} else {
		st.add(1, -1)
		st.add(-1, -1)
	}
	return st.board
}

// King returns the squares a king standing on s attacks, excluding its
// own side's pieces. Castling destinations are not part of an attack
// set and are handled by the move generator.
func King(s square.Square, friends Board) Board {
	return KingAttacks[s] &^ friends
}

// Knight returns the squares a knight standing on s attacks, excluding
// its own side's pieces.
func Knight(s square.Square, friends Board) Board {
	return KnightAttacks[s] &^ friends
}

// PawnCaptures returns the diagonal squares a pawn of color c standing
// on s attacks, regardless of whether those squares are occupied.
func PawnCaptures(s square.Square, c piece.Color) Board {
	return PawnAttacks[c][s]
}

// Pawn returns every square a pawn of color c standing on s can move
// to: quiet single/double pushes blocked by occ, plus diagonal captures
// landing on a square set in enemies (enemies should already include
// the en-passant square, if any, by the caller).
func Pawn(s square.Square, c piece.Color, occ, enemies Board) Board {
	single := PawnPushes[c][s] &^ occ

	var double Board
	if single != Empty {
		if c == piece.White && s.Rank() == square.Rank2 {
			double = single.Up(c) &^ occ
		} else if c == piece.Black && s.Rank() == square.Rank7 {
			double = single.Up(c) &^ occ
		}
	}

	return single | double | (PawnAttacks[c][s] & enemies)
}
