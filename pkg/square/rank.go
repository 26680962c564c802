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

package square

import "fmt"

// Rank represents a rank on the chessboard. Rank1 is the rank closest to
// white, matching the spec's rank 0 = rank "1" convention.
type Rank int8

// Constants representing every rank.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankN is the number of ranks.
const RankN = 8

// String converts a Rank into it's string representation.
func (r Rank) String() string {
	ranks := [...]string{
		Rank1: "1",
		Rank2: "2",
		Rank3: "3",
		Rank4: "4",
		Rank5: "5",
		Rank6: "6",
		Rank7: "7",
		Rank8: "8",
	}

	return ranks[r]
}

// rankFrom creates an instance of Rank from the given id.
func rankFrom(id string) (Rank, error) {
	switch id {
	case "1":
		return Rank1, nil
	case "2":
		return Rank2, nil
	case "3":
		return Rank3, nil
	case "4":
		return Rank4, nil
	case "5":
		return Rank5, nil
	case "6":
		return Rank6, nil
	case "7":
		return Rank7, nil
	case "8":
		return Rank8, nil
	default:
		return 0, fmt.Errorf("square: invalid rank id %q", id)
	}
}
