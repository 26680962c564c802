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

// Diagonal identifies one of the 15 a1-h8-parallel diagonals. Squares
// sharing a diagonal have the same file-minus-rank.
type Diagonal int8

// DiagonalN is the number of diagonals.
const DiagonalN = 15

// AntiDiagonal identifies one of the 15 a8-h1-parallel diagonals. Squares
// sharing an anti-diagonal have the same file-plus-rank.
type AntiDiagonal int8

// AntiDiagonalN is the number of anti-diagonals.
const AntiDiagonalN = 15
