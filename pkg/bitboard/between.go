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

import "github.com/kestrelchess/core/pkg/square"

// Between holds, for every ordered pair of squares sharing a rank,
// file, or diagonal, the squares strictly between them (exclusive of
// both endpoints). Pairs that don't share a line hold Empty. It is used
// to find the blocking squares of a check, and to detect pins via ray
// intersection.
var Between [square.N][square.N]Board

// Line holds, for every ordered pair of squares sharing a rank, file,
// or diagonal, the full board of that shared line (including both
// endpoints and the squares beyond them). Pairs that don't share a line
// hold Empty.
var Line [square.N][square.N]Board

func init() {
	for a := square.A1; a < square.N; a++ {
		for b := square.A1; b < square.N; b++ {
			if a == b {
				continue
			}

			switch {
			case a.File() == b.File():
				Line[a][b] = File[a.File()]
			case a.Rank() == b.Rank():
				Line[a][b] = Rank[a.Rank()]
			case a.Diagonal() == b.Diagonal():
				Line[a][b] = Diagonal[a.Diagonal()]
			case a.AntiDiagonal() == b.AntiDiagonal():
				Line[a][b] = AntiDiagonal[a.AntiDiagonal()]
			default:
				continue // a and b share no line
			}

			Between[a][b] = rookBishopBetween(a, b)
		}
	}
}

// rookBishopBetween computes the squares strictly between a and b,
// assuming they are already known to share a rank, file, or diagonal.
func rookBishopBetween(a, b square.Square) Board {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	var step int
	switch {
	case a.File() == b.File():
		step = 8
	case a.Rank() == b.Rank():
		step = 1
	case a.Diagonal() == b.Diagonal():
		step = 9
	default:
		step = 7
	}

	var between Board
	for s := int(lo) + step; s < int(hi); s += step {
		between.Set(square.Square(s))
	}
	return between
}
