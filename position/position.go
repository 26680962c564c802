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

// Package position implements an immutable chess position: piece
// placement, attack queries, pin detection, legal move generation,
// do_move, terminal-state detection, and SAN/UCI serialization.
package position

import (
	"fmt"

	"github.com/kestrelchess/core/pkg/bitboard"
	"github.com/kestrelchess/core/pkg/castling"
	"github.com/kestrelchess/core/pkg/move"
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
	"github.com/kestrelchess/core/pkg/zobrist"
)

// Position is an immutable chess position. Once constructed by ParseFEN or
// DoMove it is never mutated; DoMove always returns a new value. The
// Parent pointer forms a shared, read-only back-chain used for
// repetition detection and UCI history serialization.
type Position struct {
	SideToMove piece.Color

	Mailbox [square.N]piece.Piece
	ByColor [piece.ColorN]bitboard.Board
	ByType  [piece.TypeN]bitboard.Board

	KingSquare [piece.ColorN]square.Square

	EnPassant    square.Square
	CastleRights castling.Rights

	Checkers bitboard.Board

	Rule50  int
	GamePly int

	LastMove move.Move
	Key      zobrist.Key

	Parent *Position
}

// Occupied returns the union of both colors' occupied squares.
func (p *Position) Occupied() bitboard.Board {
	return p.ByColor[piece.White] | p.ByColor[piece.Black]
}

// PieceOn returns the piece occupying s, or piece.NoPiece if empty.
func (p *Position) PieceOn(s square.Square) piece.Piece {
	return p.Mailbox[s]
}

// Pawns returns the pawn bitboard of color c.
func (p *Position) Pawns(c piece.Color) bitboard.Board {
	return p.ByType[piece.Pawn] & p.ByColor[c]
}

// Knights returns the knight bitboard of color c.
func (p *Position) Knights(c piece.Color) bitboard.Board {
	return p.ByType[piece.Knight] & p.ByColor[c]
}

// Bishops returns the bishop bitboard of color c.
func (p *Position) Bishops(c piece.Color) bitboard.Board {
	return p.ByType[piece.Bishop] & p.ByColor[c]
}

// Rooks returns the rook bitboard of color c.
func (p *Position) Rooks(c piece.Color) bitboard.Board {
	return p.ByType[piece.Rook] & p.ByColor[c]
}

// Queens returns the queen bitboard of color c.
func (p *Position) Queens(c piece.Color) bitboard.Board {
	return p.ByType[piece.Queen] & p.ByColor[c]
}

// Kings returns the king bitboard of color c.
func (p *Position) Kings(c piece.Color) bitboard.Board {
	return p.ByType[piece.King] & p.ByColor[c]
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	return p.Checkers != bitboard.Empty
}

// clone returns a shallow copy of p with Parent set to p and LastMove
// left for the caller to fill in. do_move builds its result on top of
// this rather than mutating p, so p remains valid and shareable.
func (p *Position) clone() *Position {
	next := *p
	next.Parent = p
	return &next
}

// clearSquare and fillSquare maintain the bitboard/mailbox redundancy
// but deliberately do not touch Key: the canonical recomputation in
// recomputeKey is the single source of truth, called once after every
// batch of mutations (see ParseFEN and DoMove).
func (p *Position) clearSquare(s square.Square) {
	pc := p.Mailbox[s]
	if pc == piece.NoPiece {
		return
	}

	p.ByColor[pc.Color()].Unset(s)
	p.ByType[pc.Type()].Unset(s)
	p.Mailbox[s] = piece.NoPiece
}

func (p *Position) fillSquare(s square.Square, pc piece.Piece) {
	c := pc.Color()
	t := pc.Type()

	p.ByColor[c].Set(s)
	p.ByType[t].Set(s)
	p.Mailbox[s] = pc

	if t == piece.King {
		p.KingSquare[c] = s
	}
}

// recomputeKey computes the Zobrist key of p from scratch: the XOR of
// every occupied square's piece-square constant, the castle-rights
// constant, the en-passant-file constant (if EnPassant is set), and the
// side-to-move constant when black is to move. do_move recomputes
// wholesale rather than updating incrementally, matching the
// reference's own Board.MakeMove.
func (p *Position) recomputeKey() {
	var key zobrist.Key

	occ := p.Occupied()
	for occ != bitboard.Empty {
		s := occ.Pop()
		key ^= zobrist.PieceSquare[p.Mailbox[s]][s]
	}

	key ^= zobrist.Castling[p.CastleRights]

	if p.EnPassant != square.None {
		key ^= zobrist.EnPassant[p.EnPassant.File()]
	}

	if p.SideToMove == piece.Black {
		key ^= zobrist.SideToMove
	}

	p.Key = key
}

// String renders the position as an 8x8 grid followed by its FEN.
func (p *Position) String() string {
	var sb [9 * 8]byte
	i := 0
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			sb[i] = []byte(p.Mailbox[square.From(f, r)].String())[0]
			i++
		}
		sb[i] = '\n'
		i++
	}
	return fmt.Sprintf("%s\nfen: %s\nkey: %016x\n", string(sb[:]), p.FEN(), uint64(p.Key))
}
