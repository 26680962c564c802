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

// Package bitboard implements a 64-bit bitboard and the lookup tables
// (step attacks, magic sliding attacks, and squares-between) that ride
// on top of it.
//
// Square 0 is a1 and square 63 is h8: the index is file + 8*rank, so
// rank increases toward the most significant bits.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// Board is a 64-bit bitboard, one bit per square.
type Board uint64

// String renders the board as an 8x8 grid, rank 8 first.
func (b Board) String() string {
	var sb strings.Builder
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.From(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			if f != square.FileH {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IsSet reports whether the given square is set.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Set sets the given square. A no-op for square.None.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square. A no-op for square.None.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// Pop returns the least significant set square and clears it.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// FirstOne returns the least significant set square, or square.None if
// the board is empty.
func (b Board) FirstOne() square.Square {
	if b == 0 {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

// North shifts the board towards rank 8.
func (b Board) North() Board { return b << 8 }

// South shifts the board towards rank 1.
func (b Board) South() Board { return b >> 8 }

// East shifts the board towards file h, squares on file h vanish.
func (b Board) East() Board { return (b &^ File[square.FileH]) << 1 }

// West shifts the board towards file a, squares on file a vanish.
func (b Board) West() Board { return (b &^ File[square.FileA]) >> 1 }

// NorthEast shifts the board diagonally towards rank 8 and file h.
func (b Board) NorthEast() Board { return (b << 9) &^ File[square.FileA] }

// NorthWest shifts the board diagonally towards rank 8 and file a.
func (b Board) NorthWest() Board { return (b << 7) &^ File[square.FileH] }

// SouthEast shifts the board diagonally towards rank 1 and file h.
func (b Board) SouthEast() Board { return (b >> 7) &^ File[square.FileA] }

// SouthWest shifts the board diagonally towards rank 1 and file a.
func (b Board) SouthWest() Board { return (b >> 9) &^ File[square.FileH] }

// Up shifts the board one rank towards the far side of the given color.
func (b Board) Up(c piece.Color) Board {
	if c == piece.White {
		return b.North()
	}
	return b.South()
}

// Down shifts the board one rank towards the near side of the given color.
func (b Board) Down(c piece.Color) Board {
	if c == piece.White {
		return b.South()
	}
	return b.North()
}
