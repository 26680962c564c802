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

// File represents a file on the chessboard.
type File int8

// Constants representing every file.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files.
const FileN = 8

// String converts a File into it's string representation.
func (f File) String() string {
	files := [...]string{
		FileA: "a",
		FileB: "b",
		FileC: "c",
		FileD: "d",
		FileE: "e",
		FileF: "f",
		FileG: "g",
		FileH: "h",
	}

	return files[f]
}

// fileFrom creates an instance of File from the given id.
func fileFrom(id string) (File, error) {
	switch id {
	case "a":
		return FileA, nil
	case "b":
		return FileB, nil
	case "c":
		return FileC, nil
	case "d":
		return FileD, nil
	case "e":
		return FileE, nil
	case "f":
		return FileF, nil
	case "g":
		return FileG, nil
	case "h":
		return FileH, nil
	default:
		return 0, fmt.Errorf("square: invalid file id %q", id)
	}
}
