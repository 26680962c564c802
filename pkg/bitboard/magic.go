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

// RookTableSize and BishopTableSize are the sizes of the flat, shared
// backing arrays for the rook and bishop magic attack tables: the sum,
// over every square, of 2^popcount(blocker mask).
const (
	RookTableSize   = 0x19000
	BishopTableSize = 0x1480
)

// Magic holds the per-square parameters of a fancy magic bitboard: the
// relevant blocker mask, the magic multiplier, the shift that brings the
// masked occupancy into the table's index range, and the offset of this
// square's slice within the shared flat attack table.
type Magic struct {
	Mask   Board
	Number uint64
	Shift  uint
	Offset uint32
}

// index computes the slot, within the owning flat attack table, that
// corresponds to the given occupancy.
func (m *Magic) index(occ Board) uint32 {
	masked := uint64(occ & m.Mask)
	return m.Offset + uint32((masked*m.Number)>>m.Shift)
}

var (
	RookMagics   [square.N]Magic
	BishopMagics [square.N]Magic

	RookAttackTable   [RookTableSize]Board
	BishopAttackTable [BishopTableSize]Board
)

// magicSeeds are per-rank PRNG seeds known to produce a valid magic
// number quickly for every square on that rank.
var magicSeeds = [8]uint64{255, 16645, 15100, 12281, 32803, 55013, 10316, 728}

var rookDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// slideRay walks the given square along the given direction deltas. In
// mask mode (full=false) it stops one square short of the edge of the
// board and ignores occupancy, producing the relevant blocker mask used
// to index into the magic table. In attack mode (full=true) it walks all
// the way to the edge, stopping at (and including) the first occupied
// square on each ray.
func slideRay(s square.Square, occ Board, deltas [4][2]int, full bool) Board {
	var b Board

	for _, d := range deltas {
		df, dr := d[0], d[1]
		file := int(s.File())
		rank := int(s.Rank())

		for {
			file += df
			rank += dr
			if file < 0 || file > int(square.FileH) || rank < 0 || rank > int(square.Rank8) {
				break
			}

			if !full {
				atEdge := (df > 0 && file == int(square.FileH)) ||
					(df < 0 && file == int(square.FileA)) ||
					(dr > 0 && rank == int(square.Rank8)) ||
					(dr < 0 && rank == int(square.Rank1))
				if atEdge {
					break
				}
				b.Set(square.From(square.File(file), square.Rank(rank)))
				continue
			}

			sq := square.From(square.File(file), square.Rank(rank))
			b.Set(sq)
			if occ.IsSet(sq) {
				break
			}
		}
	}

	return b
}

// subsets enumerates every subset of the given mask's set bits, using
// the carry-rippler trick.
func subsets(mask Board) []Board {
	sets := make([]Board, 0, 1<<mask.Count())
	var subset Board
	for {
		sets = append(sets, subset)
		subset = (subset - mask) & mask
		if subset == Empty {
			break
		}
	}
	return sets
}

func generateMagics(magics *[square.N]Magic, table []Board, deltas [4][2]int) {
	var offset uint32

	for s := square.A1; s < square.N; s++ {
		magic := &magics[s]

		magic.Mask = slideRay(s, Empty, deltas, false)
		bitCount := magic.Mask.Count()
		magic.Shift = uint(64 - bitCount)
		magic.Offset = offset

		size := uint32(1) << bitCount
		blockers := subsets(magic.Mask)

		var rand prng
		rand.seed(magicSeeds[s.Rank()])

	search:
		for {
			candidate := rand.sparseUint64()
			// a magic's top byte must have enough set bits that the
			// multiplication spreads entropy across the whole index range.
			if Board((uint64(magic.Mask)*candidate)&0xff00000000000000).Count() < 6 {
				continue
			}

			magic.Number = candidate

			used := table[offset : offset+size]
			for i := range used {
				used[i] = Empty
			}

			for _, occ := range blockers {
				index := uint32((uint64(occ)*candidate)>>magic.Shift) + offset
				attacks := slideRay(s, occ, deltas, true)

				if used[index-offset] != Empty && used[index-offset] != attacks {
					continue search
				}
				used[index-offset] = attacks
			}

			break
		}

		offset += size
	}
}

func init() {
	generateMagics(&RookMagics, RookAttackTable[:], rookDeltas)
	generateMagics(&BishopMagics, BishopAttackTable[:], bishopDeltas)
}
