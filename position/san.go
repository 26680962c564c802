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
	"strings"

	"github.com/kestrelchess/core/pkg/move"
	"github.com/kestrelchess/core/pkg/piece"
)

// MoveToSAN renders m, which must be a member of p.LegalMoves(), in
// Standard Algebraic Notation. Check and checkmate are determined by
// actually applying the move, not by inspecting m in isolation.
func (p *Position) MoveToSAN(m move.Move) string {
	if m.IsCastle() {
		if m.IsQueensideCastle() {
			return p.appendCheckSuffix(m, "O-O-O")
		}
		return p.appendCheckSuffix(m, "O-O")
	}

	from := m.From()
	to := m.To()
	moved := p.Mailbox[from]
	capture := p.Mailbox[to] != piece.NoPiece || m.IsEnPassant()

	var sb strings.Builder

	if moved.Type() != piece.Pawn {
		sb.WriteString(strings.ToUpper(moved.Type().String()))
		sb.WriteString(p.disambiguate(m))
	} else if capture {
		sb.WriteString(from.File().String())
	}

	if capture {
		sb.WriteByte('x')
	}

	sb.WriteString(to.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteString(strings.ToUpper(m.Promotion().String()))
	}

	return p.appendCheckSuffix(m, sb.String())
}

// disambiguate returns the shortest origin-square disambiguator needed
// to distinguish m from other legal moves of the same piece type to the
// same destination: the empty string if unambiguous, else the origin
// file if that alone distinguishes it, else the origin rank if that
// alone distinguishes it, else the full origin square.
func (p *Position) disambiguate(m move.Move) string {
	from := m.From()
	to := m.To()
	moved := p.Mailbox[from]

	ambiguous, uniqueFile, uniqueRank := false, true, true
	for _, other := range p.LegalMoves() {
		if other.From() == from || other.To() != to {
			continue
		}
		if p.Mailbox[other.From()] != moved {
			continue
		}
		ambiguous = true
		if other.From().File() == from.File() {
			uniqueFile = false
		}
		if other.From().Rank() == from.Rank() {
			uniqueRank = false
		}
	}

	switch {
	case !ambiguous:
		return ""
	case uniqueFile:
		return from.File().String()
	case uniqueRank:
		return from.Rank().String()
	default:
		return from.String()
	}
}

// appendCheckSuffix plays m and appends '+' or '#' to san depending on
// whether the resulting position leaves the opponent in check or mated.
func (p *Position) appendCheckSuffix(m move.Move, san string) string {
	next := p.DoMove(m)
	if !next.IsCheck() {
		return san
	}
	if len(next.LegalMoves()) == 0 {
		return san + "#"
	}
	return san + "+"
}

// SANToMove resolves san against p.LegalMoves(), returning move.Null if
// no legal move renders to the same notation. The trailing check and
// checkmate markers are optional in the input; nothing else is
// normalized, so a missing or extra 'x', a promotion without '=', or a
// redundant disambiguator does not match.
func (p *Position) SANToMove(san string) move.Move {
	want := strings.TrimRight(strings.TrimSpace(san), "+#")

	for _, m := range p.LegalMoves() {
		got := strings.TrimRight(p.MoveToSAN(m), "+#")
		if got == want {
			return m
		}
	}

	return move.Null
}
