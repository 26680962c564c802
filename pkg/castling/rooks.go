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

package castling

import (
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// RookInfo describes how a rook moves when its king castles.
type RookInfo struct {
	From, To square.Square
	RookType piece.Piece
}

// Rooks is indexed by the king's destination square during castling, and
// gives the rook move (and rook piece) that accompanies it. All other
// squares hold the zero value.
var Rooks = [square.N]RookInfo{
	square.G1: {From: square.H1, To: square.F1, RookType: piece.WhiteRook},
	square.C1: {From: square.A1, To: square.D1, RookType: piece.WhiteRook},
	square.G8: {From: square.H8, To: square.F8, RookType: piece.BlackRook},
	square.C8: {From: square.A8, To: square.D8, RookType: piece.BlackRook},
}

// RightUpdates gives, for each square, the castling rights that must be
// cleared when that square is touched (vacated or occupied) by a move —
// covering king moves, rook moves, and captures of an unmoved rook.
var RightUpdates = [square.N]Rights{
	square.A1: WhiteQueenside,
	square.H1: WhiteKingside,
	square.E1: White,

	square.A8: BlackQueenside,
	square.H8: BlackKingside,
	square.E8: Black,
}
