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
	"github.com/kestrelchess/core/pkg/piece"
)

// IsCheckmate reports whether the side to move is in check with no legal
// moves available.
func (p *Position) IsCheckmate() bool {
	return p.IsCheck() && len(p.LegalMoves()) == 0
}

// IsStalemate reports whether the side to move is not in check but has
// no legal moves available.
func (p *Position) IsStalemate() bool {
	return !p.IsCheck() && len(p.LegalMoves()) == 0
}

// IsFiftyMoveDraw reports whether the fifty-move rule entitles either
// side to claim a draw, i.e. 100 or more reversible halfmoves have been
// played since the last pawn move or capture.
func (p *Position) IsFiftyMoveDraw() bool {
	return p.Rule50 >= 100
}

// IsMaterialDraw reports whether neither side has enough material to
// deliver checkmate: no pawns, rooks, or queens on the board, and at
// most one minor piece (knight or bishop) in total.
func (p *Position) IsMaterialDraw() bool {
	if p.ByType[piece.Pawn]|p.ByType[piece.Rook]|p.ByType[piece.Queen] != bitboard.Empty {
		return false
	}

	minors := p.ByType[piece.Knight] | p.ByType[piece.Bishop]
	return minors.Count() <= 1
}

// IsRepetitionDraw reports whether the current position has occurred at
// least three times. It walks back through Parent at most
// min(GamePly, Rule50) plies, i.e. to the last capture or pawn move,
// and compares the Zobrist keys of positions with the same side to move.
func (p *Position) IsRepetitionDraw() bool {
	hops := p.Rule50
	if p.GamePly < hops {
		hops = p.GamePly
	}

	count := 1
	walker := p.Parent
	for i := 1; i <= hops && walker != nil; i++ {
		if i%2 == 0 && walker.Key == p.Key {
			count++
			if count >= 3 {
				return true
			}
		}
		walker = walker.Parent
	}

	return false
}

// IsDraw reports whether the position is drawn by the fifty-move rule,
// insufficient material, threefold repetition, or stalemate.
func (p *Position) IsDraw() bool {
	return p.IsFiftyMoveDraw() || p.IsMaterialDraw() || p.IsRepetitionDraw() || p.IsStalemate()
}

// IsTerminal reports whether the game is over at this position, whether
// by checkmate, stalemate, or any of the draw conditions.
func (p *Position) IsTerminal() bool {
	return p.IsCheckmate() || p.IsStalemate() || p.IsDraw()
}
