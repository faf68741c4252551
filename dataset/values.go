// Copyright 2026 devinterp Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dataset

import (
	"github.com/sienkus/devinterp/base"
)

// ValueGenerator fills the entries of a synthetic sample before masking.
// The variant is selected at construction time.
type ValueGenerator interface {
	// Values generates a row × col matrix of fill values.
	Values(rng base.RandomGenerator, row, col int) [][]float32
}

// UniformValued fills each entry with an independent uniform random float
// in [0, 1).
type UniformValued struct{}

func (UniformValued) Values(rng base.RandomGenerator, row, col int) [][]float32 {
	return rng.UniformMatrix(row, col, 0, 1)
}

// BinaryValued fills every entry with the constant 1, so surviving entries
// of the masked sample are exactly 1.
type BinaryValued struct{}

func (BinaryValued) Values(_ base.RandomGenerator, row, col int) [][]float32 {
	ret := make([][]float32, row)
	for i := range ret {
		ret[i] = make([]float32, col)
		for j := range ret[i] {
			ret[i][j] = 1
		}
	}
	return ret
}
