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
	"strconv"
	"strings"

	"github.com/kestrelchess/core/pkg/castling"
	"github.com/kestrelchess/core/pkg/piece"
	"github.com/kestrelchess/core/pkg/square"
)

// StartFEN is the FEN of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Position. Trailing halfmove and
// fullmove fields may be omitted, defaulting to 0 and 1 respectively.
// It never returns a partially-built Position alongside an error.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, parseErrorf("fen", "expected at least 4 space-separated fields, got %d", len(fields))
	}
	for len(fields) < 6 {
		if len(fields) == 4 {
			fields = append(fields, "0")
		} else {
			fields = append(fields, "1")
		}
	}

	var p Position
	p.KingSquare[piece.White] = square.None
	p.KingSquare[piece.Black] = square.None

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, parseErrorf("placement", "expected 8 ranks separated by '/', got %d", len(ranks))
	}

	for i, rank := range ranks {
		r := square.Rank(7 - i)
		f := square.FileA

		for _, ch := range rank {
			if f > square.FileH {
				return nil, parseErrorf("placement", "rank %q has more than 8 files", rank)
			}

			if ch >= '1' && ch <= '8' {
				f += square.File(ch - '0')
				continue
			}

			pc, err := piece.NewFromString(string(ch))
			if err != nil {
				return nil, parseErrorf("placement", "invalid piece character %q", string(ch))
			}

			s := square.From(f, r)

			if pc.Type() == piece.Pawn && (r == square.Rank1 || r == square.Rank8) {
				return nil, parseErrorf("placement", "pawn on rank %s", r)
			}

			if pc.Type() == piece.King {
				if p.KingSquare[pc.Color()] != square.None {
					return nil, parseErrorf("placement", "more than one %s king", pc.Color())
				}
				p.KingSquare[pc.Color()] = s
			}

			p.fillSquare(s, pc)
			f++
		}

		if f != square.FileH+1 {
			return nil, parseErrorf("placement", "rank %q does not span exactly 8 files", rank)
		}
	}

	if p.KingSquare[piece.White] == square.None || p.KingSquare[piece.Black] == square.None {
		return nil, parseErrorf("placement", "missing king")
	}

	side, err := piece.NewColor(fields[1])
	if err != nil {
		return nil, parseErrorf("side to move", "%s", err)
	}
	p.SideToMove = side

	p.CastleRights = castling.NewRights(fields[2])

	epSquare, err := square.New(fields[3])
	if err != nil {
		return nil, parseErrorf("en passant square", "%s", err)
	}
	p.EnPassant = epSquare

	rule50, err := strconv.Atoi(fields[4])
	if err != nil || rule50 < 0 {
		return nil, parseErrorf("halfmove clock", "invalid integer %q", fields[4])
	}
	p.Rule50 = rule50

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil || fullMoves < 1 {
		return nil, parseErrorf("fullmove number", "invalid integer %q", fields[5])
	}
	p.GamePly = (fullMoves-1)*2 + int(p.SideToMove)

	notToMove := p.SideToMove.Other()
	if p.IsAttacked(p.KingSquare[notToMove], p.SideToMove) {
		return nil, parseErrorf("placement", "side not to move (%s) is in check", notToMove)
	}

	p.recomputeKey()
	p.Checkers = p.AttacksTo(p.KingSquare[p.SideToMove], notToMove)

	return &p, nil
}

// FEN renders the position back into FEN notation.
func (p *Position) FEN() string {
	var sb strings.Builder

	for r := square.Rank8; r >= square.Rank1; r-- {
		empty := 0
		for f := square.FileA; f <= square.FileH; f++ {
			pc := p.Mailbox[square.From(f, r)]
			if pc == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.CastleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.GamePly/2 + 1))

	return sb.String()
}
