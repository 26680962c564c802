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

// useful empty/full boards.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Squares holds a single-bit board for every square.
var Squares [square.N]Board

// File holds a full-file board for every file.
var File [square.FileN]Board

// Rank holds a full-rank board for every rank.
var Rank [square.RankN]Board

// Diagonal holds the a1-h8-parallel diagonal board a square lies on,
// indexed by square.Square.Diagonal().
var Diagonal [square.DiagonalN]Board

// AntiDiagonal holds the a8-h1-parallel diagonal board a square lies
// on, indexed by square.Square.AntiDiagonal().
var AntiDiagonal [square.AntiDiagonalN]Board

// The tables above are filled by a package-level variable initializer,
// which Go runs before any init function: the init functions in
// attacks.go and between.go read them and run before this file's would.
var _ = initConsts()

func initConsts() bool {
	for s := square.A1; s < square.N; s++ {
		Squares[s] = 1 << uint(s)
	}

	for f := square.FileA; f <= square.FileH; f++ {
		for r := square.Rank1; r <= square.Rank8; r++ {
			File[f] |= Squares[square.From(f, r)]
		}
	}

	for r := square.Rank1; r <= square.Rank8; r++ {
		for f := square.FileA; f <= square.FileH; f++ {
			Rank[r] |= Squares[square.From(f, r)]
		}
	}

	for s := square.A1; s < square.N; s++ {
		Diagonal[s.Diagonal()] |= Squares[s]
		AntiDiagonal[s.AntiDiagonal()] |= Squares[s]
	}

	return true
}
