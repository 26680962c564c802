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
)

// ParseUCIMove resolves a UCI move string, e.g. "e2e4" or "a7a8q",
// against p.LegalMoves(), returning move.Null if it names no legal move.
func (p *Position) ParseUCIMove(s string) move.Move {
	return move.ParseUCI(s, p.LegalMoves())
}

// UCIPositionCommand renders the "position fen ... moves ..." string
// that reconstructs p from an ancestor FEN plus the move list played
// since, per the "go uci" command family. It walks back only as far as
// the last irreversible move, i.e. min(GamePly, Rule50) plies, since an
// ancestor FEN any further back is redundant: Rule50 already resets at
// every capture or pawn move.
func (p *Position) UCIPositionCommand() string {
	hops := p.Rule50
	if p.GamePly < hops {
		hops = p.GamePly
	}

	root := p
	for i := 0; i < hops && root.Parent != nil; i++ {
		root = root.Parent
	}

	var moves []string
	for cur := p; cur != root; cur = cur.Parent {
		moves = append(moves, cur.LastMove.String())
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	var sb strings.Builder
	sb.WriteString("position fen ")
	sb.WriteString(root.FEN())
	if len(moves) > 0 {
		sb.WriteString(" moves ")
		sb.WriteString(strings.Join(moves, " "))
	}

	return sb.String()
}
