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

// Rook returns the squares a rook standing on s attacks given the board
// occupancy occ, excluding friends.
func Rook(s square.Square, friends, occ Board) Board {
	magic := &RookMagics[s]
	return RookAttackTable[magic.index(occ)] &^ friends
}

// Bishop returns the squares a bishop standing on s attacks given the
// board occupancy occ, excluding friends.
func Bishop(s square.Square, friends, occ Board) Board {
	magic := &BishopMagics[s]
	return BishopAttackTable[magic.index(occ)] &^ friends
}

// Queen returns the squares a queen standing on s attacks given the
// board occupancy occ, excluding friends.
func Queen(s square.Square, friends, occ Board) Board {
	return Rook(s, friends, occ) | Bishop(s, friends, occ)
}
