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
	"github.com/kestrelchess/core/pkg/castling"
	"github.com/kestrelchess/core/pkg/move"
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// genState bundles the utility bitboards computed once per LegalMoves
// call, mirroring the reference's internal moveGenState split from the
// position itself: none of this is persisted state.
type genState struct {
	p *Position

	us, them piece.Color

	friends, enemies, occ bitboard.Board

	checkN    int
	checkMask bitboard.Board

	pins pinInfo

	seenByEnemy bitboard.Board

	target bitboard.Board
}

// LegalMoves returns every legal move available to the side to move.
func (p *Position) LegalMoves() []move.Move {
	s := p.newGenState()

	moves := make([]move.Move, 0, 48)
	s.appendKingMoves(&moves)

	if s.checkN >= 2 {
		return moves // double check: only the king may move
	}

	s.appendKnightMoves(&moves)
	s.appendBishopMoves(&moves)
	s.appendRookMoves(&moves)
	s.appendQueenMoves(&moves)
	s.appendPawnMoves(&moves)

	return moves
}

func (p *Position) newGenState() *genState {
	s := &genState{p: p}

	s.us = p.SideToMove
	s.them = s.us.Other()

	s.friends = p.ByColor[s.us]
	s.enemies = p.ByColor[s.them]
	s.occ = s.friends | s.enemies

	s.checkMask, s.checkN = p.checkmask()
	s.pins = p.calculatePins(s.us)
	s.seenByEnemy = p.seenSquares(s.them)

	s.target = ^s.friends & s.checkMask

	return s
}

// checkmask computes the set of squares a friendly piece can move to in
// order to block every current checker (see §4.6), along with the
// number of checkers. It is Universe when the side to move isn't in
// check, and Empty under double check (handled by the caller via checkN).
func (p *Position) checkmask() (bitboard.Board, int) {
	us := p.SideToMove
	ksq := p.KingSquare[us]

	checkers := p.Checkers
	n := checkers.Count()

	if n == 0 {
		return bitboard.Universe, 0
	}

	if n >= 2 {
		return bitboard.Empty, n
	}

	checker := checkers.FirstOne()
	return bitboard.Between[ksq][checker] | bitboard.Squares[checker], n
}

// seenSquares returns every square attacked by a piece of color by,
// treating the opposing king as absent from the blocker set: a sliding
// piece's X-ray through the king's current square must still be
// considered, since the king cannot step along that ray to escape.
func (p *Position) seenSquares(by piece.Color) bitboard.Board {
	blockers := p.Occupied() &^ p.Kings(by.Other())

	var seen bitboard.Board

	pawns := p.Pawns(by)
	for pawns != bitboard.Empty {
		from := pawns.Pop()
		seen |= bitboard.PawnCaptures(from, by)
	}

	knights := p.Knights(by)
	for knights != bitboard.Empty {
		seen |= bitboard.Knight(knights.Pop(), bitboard.Empty)
	}

	bishops := p.Bishops(by) | p.Queens(by)
	for bishops != bitboard.Empty {
		seen |= bitboard.Bishop(bishops.Pop(), bitboard.Empty, blockers)
	}

	rooks := p.Rooks(by) | p.Queens(by)
	for rooks != bitboard.Empty {
		seen |= bitboard.Rook(rooks.Pop(), bitboard.Empty, blockers)
	}

	seen |= bitboard.King(p.KingSquare[by], bitboard.Empty)

	return seen
}

func (s *genState) appendKingMoves(moves *[]move.Move) {
	ksq := s.p.KingSquare[s.us]
	targets := bitboard.King(ksq, s.friends) &^ s.seenByEnemy

	for targets != bitboard.Empty {
		to := targets.Pop()
		*moves = append(*moves, move.Make(ksq, to))
	}

	if s.checkN == 0 {
		s.appendCastlingMoves(moves)
	}
}

func (s *genState) appendCastlingMoves(moves *[]move.Move) {
	p := s.p
	ksq := p.KingSquare[s.us]

	var kingside, queenside castling.Rights
	var kingTo, queenTo square.Square
	var kingsideTransit, queensideEmpty bitboard.Board

	if s.us == piece.White {
		kingside, queenside = castling.WhiteKingside, castling.WhiteQueenside
		kingTo, queenTo = square.G1, square.C1
		kingsideTransit = bitboard.Squares[square.F1] | bitboard.Squares[square.G1]
		queensideEmpty = bitboard.Squares[square.B1] | bitboard.Squares[square.C1] | bitboard.Squares[square.D1]
	} else {
		kingside, queenside = castling.BlackKingside, castling.BlackQueenside
		kingTo, queenTo = square.G8, square.C8
		kingsideTransit = bitboard.Squares[square.F8] | bitboard.Squares[square.G8]
		queensideEmpty = bitboard.Squares[square.B8] | bitboard.Squares[square.C8] | bitboard.Squares[square.D8]
	}

	queensideTransit := queensideEmpty &^ bitboard.File[square.FileB]

	if p.CastleRights&kingside != 0 && (s.occ|s.seenByEnemy)&kingsideTransit == bitboard.Empty {
		*moves = append(*moves, move.MakeCastle(ksq, kingTo))
	}

	if p.CastleRights&queenside != 0 &&
		s.occ&queensideEmpty == bitboard.Empty &&
		s.seenByEnemy&queensideTransit == bitboard.Empty {
		*moves = append(*moves, move.MakeCastle(ksq, queenTo))
	}
}

func (s *genState) appendKnightMoves(moves *[]move.Move) {
	knights := s.p.Knights(s.us) &^ s.pins.All()
	for knights != bitboard.Empty {
		from := knights.Pop()
		targets := bitboard.Knight(from, s.friends) & s.target
		for targets != bitboard.Empty {
			*moves = append(*moves, move.Make(from, targets.Pop()))
		}
	}
}

func (s *genState) appendBishopMoves(moves *[]move.Move) {
	s.appendDiagonalSliders(moves, s.p.Bishops(s.us))
}

func (s *genState) appendRookMoves(moves *[]move.Move) {
	s.appendStraightSliders(moves, s.p.Rooks(s.us))
}

func (s *genState) appendQueenMoves(moves *[]move.Move) {
	queens := s.p.Queens(s.us)
	s.appendDiagonalSliders(moves, queens)
	s.appendStraightSliders(moves, queens)
}

func (s *genState) appendDiagonalSliders(moves *[]move.Move, sliders bitboard.Board) {
	sliders &^= s.pins.HV

	pinned := sliders & s.pins.Diag
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		targets := bitboard.Bishop(from, s.friends, s.occ) & s.target & s.pins.Diag
		for targets != bitboard.Empty {
			*moves = append(*moves, move.Make(from, targets.Pop()))
		}
	}

	free := sliders &^ s.pins.Diag
	for free != bitboard.Empty {
		from := free.Pop()
		targets := bitboard.Bishop(from, s.friends, s.occ) & s.target
		for targets != bitboard.Empty {
			*moves = append(*moves, move.Make(from, targets.Pop()))
		}
	}
}

func (s *genState) appendStraightSliders(moves *[]move.Move, sliders bitboard.Board) {
	sliders &^= s.pins.Diag

	pinned := sliders & s.pins.HV
	for pinned != bitboard.Empty {
		from := pinned.Pop()
		targets := bitboard.Rook(from, s.friends, s.occ) & s.target & s.pins.HV
		for targets != bitboard.Empty {
			*moves = append(*moves, move.Make(from, targets.Pop()))
		}
	}

	free := sliders &^ s.pins.HV
	for free != bitboard.Empty {
		from := free.Pop()
		targets := bitboard.Rook(from, s.friends, s.occ) & s.target
		for targets != bitboard.Empty {
			*moves = append(*moves, move.Make(from, targets.Pop()))
		}
	}
}

func (s *genState) appendPawnMoves(moves *[]move.Move) {
	p := s.p

	var promotionRank, doublePushRank bitboard.Board
	if s.us == piece.White {
		promotionRank = bitboard.Rank[square.Rank8]
		doublePushRank = bitboard.Rank[square.Rank3]
	} else {
		promotionRank = bitboard.Rank[square.Rank1]
		doublePushRank = bitboard.Rank[square.Rank6]
	}

	pawns := p.Pawns(s.us)
	captureTarget := s.enemies & s.checkMask
	pushTarget := s.checkMask &^ s.occ

	attackers := pawns &^ s.pins.HV
	freeAttackers := attackers &^ s.pins.Diag
	pinnedAttackers := attackers & s.pins.Diag

	for freeAttackers != bitboard.Empty {
		from := freeAttackers.Pop()
		s.appendPawnCaptures(moves, from, bitboard.PawnCaptures(from, s.us)&captureTarget, promotionRank)
	}
	for pinnedAttackers != bitboard.Empty {
		from := pinnedAttackers.Pop()
		s.appendPawnCaptures(moves, from, bitboard.PawnCaptures(from, s.us)&captureTarget&s.pins.Diag, promotionRank)
	}

	pushers := pawns &^ s.pins.Diag
	freePushers := pushers &^ s.pins.HV
	pinnedPushers := pushers & s.pins.HV

	for freePushers != bitboard.Empty {
		from := freePushers.Pop()
		s.appendPawnPushes(moves, from, pushTarget, doublePushRank, promotionRank)
	}
	for pinnedPushers != bitboard.Empty {
		from := pinnedPushers.Pop()
		s.appendPawnPushes(moves, from, pushTarget&s.pins.HV, doublePushRank, promotionRank)
	}

	if p.EnPassant != square.None {
		s.appendEnPassant(moves, attackers)
	}
}

func (s *genState) appendPawnCaptures(moves *[]move.Move, from square.Square, targets, promotionRank bitboard.Board) {
	for targets != bitboard.Empty {
		to := targets.Pop()
		if bitboard.Squares[to]&promotionRank != 0 {
			appendPromotions(moves, from, to)
		} else {
			*moves = append(*moves, move.Make(from, to))
		}
	}
}

func (s *genState) appendPawnPushes(moves *[]move.Move, from square.Square, pushTarget, doublePushRank, promotionRank bitboard.Board) {
	single := bitboard.Squares[from].Up(s.us) &^ s.occ
	if single == bitboard.Empty {
		return
	}

	if single&pushTarget != 0 {
		to := single.FirstOne()
		if bitboard.Squares[to]&promotionRank != 0 {
			appendPromotions(moves, from, to)
		} else {
			*moves = append(*moves, move.Make(from, to))
		}
	}

	if single&doublePushRank != 0 {
		double := single.Up(s.us) &^ s.occ & pushTarget
		if double != bitboard.Empty {
			*moves = append(*moves, move.Make(from, double.FirstOne()))
		}
	}
}

func appendPromotions(moves *[]move.Move, from, to square.Square) {
	for _, pt := range piece.Promotions {
		*moves = append(*moves, move.MakePromotion(from, to, pt))
	}
}

// appendEnPassant appends the (at most one) legal en-passant capture.
// attackers is the set of this side's pawns not already excluded by a
// horizontal/vertical pin, matching the reference's handling: a pawn
// pinned diagonally along the capture ray may still capture en passant.
func (s *genState) appendEnPassant(moves *[]move.Move, attackers bitboard.Board) {
	p := s.p
	epSq := p.EnPassant

	var epPawnSq square.Square
	if s.us == piece.White {
		epPawnSq = epSq - 8
	} else {
		epPawnSq = epSq + 8
	}

	epMask := bitboard.Squares[epSq] | bitboard.Squares[epPawnSq]
	if s.checkMask&epMask == bitboard.Empty {
		return
	}

	ksq := p.KingSquare[s.us]
	epRank := epPawnSq.Rank()

	enemyRooksQueens := (p.Rooks(s.them) | p.Queens(s.them)) & bitboard.Rank[epRank]
	isPossiblePin := ksq.Rank() == epRank && enemyRooksQueens != bitboard.Empty

	candidates := bitboard.PawnCaptures(epSq, s.them) & attackers
	for candidates != bitboard.Empty {
		from := candidates.Pop()

		if s.pins.Diag.IsSet(from) && !s.pins.Diag.IsSet(epSq) {
			continue
		}

		if isPossiblePin {
			occAfter := s.occ &^ (bitboard.Squares[from] | bitboard.Squares[epPawnSq])
			if bitboard.Rook(ksq, bitboard.Empty, occAfter)&enemyRooksQueens != 0 {
				continue
			}
		}

		*moves = append(*moves, move.MakeEnPassant(from, epSq))
	}
}
