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

// Package zobrist implements incrementally-updatable Zobrist hashing of
// chess positions.
package zobrist

import (
	"github.com/kestrelchess/core/pkg/castling"
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// Key is a Zobrist hash key.
type Key uint64

// PieceSquare holds a random key per (piece, square) pair.
var PieceSquare [piece.N][square.N]Key

// EnPassant holds a random key per en-passant target file.
var EnPassant [square.FileN]Key

// Castling holds a random key per castling rights value.
var Castling [castling.N]Key

// SideToMove is xor'd into the key when it is black to move.
var SideToMove Key

func init() {
	var rng prng
	rng.Seed(1070372) // seed used from Stockfish

	for p := 0; p < piece.N; p++ {
		for s := square.A1; s < square.N; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}

	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}

	for r := castling.None; r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}

	SideToMove = Key(rng.Uint64())
}
