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
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func zeroFraction(d *SyntheticDataset) float64 {
	zeros := 0
	for i := 0; i < d.Count(); i++ {
		row, _ := d.Get(i)
		for _, v := range row {
			if v == 0 {
				zeros++
			}
		}
	}
	return float64(zeros) / float64(d.Count()*d.NumFeatures())
}

func TestSyntheticUniformValued(t *testing.T) {
	d, err := NewSyntheticUniformValued(1000, 50, Probability(0.3), NewConfig().SetSeed(42))
	assert.NoError(t, err)
	assert.Equal(t, 1000, d.Count())
	assert.Equal(t, 50, d.NumFeatures())
	assert.Nil(t, d.Support())
	assert.InDelta(t, 0.3, zeroFraction(d), 0.01)
	for i := 0; i < d.Count(); i++ {
		row, err := d.Get(i)
		assert.NoError(t, err)
		assert.Len(t, row, 50)
		for _, v := range row {
			if v != 0 {
				assert.Greater(t, v, float32(0))
				assert.Less(t, v, float32(1))
			}
		}
	}
}

func TestSyntheticBinaryValued(t *testing.T) {
	d, err := NewSyntheticBinaryValued(1000, 50, Probability(0.5), NewConfig().SetSeed(42))
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, zeroFraction(d), 0.01)
	for i := 0; i < d.Count(); i++ {
		row, err := d.Get(i)
		assert.NoError(t, err)
		for _, v := range row {
			if v != 0 {
				assert.Equal(t, float32(1), v)
			}
		}
	}
}

func TestExactCountSharedSupport(t *testing.T) {
	d, err := NewSyntheticBinaryValued(4, 5, ExactCount(2), NewConfig().SetSeed(7))
	assert.NoError(t, err)
	assert.Equal(t, 4, d.Count())

	support := d.Support()
	assert.Len(t, support, 2)
	assert.Less(t, support[0], support[1])
	assert.GreaterOrEqual(t, support[0], 0)
	assert.Less(t, support[1], 5)

	// every row has exactly two non-zero entries at the support columns
	for i := 0; i < d.Count(); i++ {
		row, err := d.Get(i)
		assert.NoError(t, err)
		var nonZeros []int
		for j, v := range row {
			if v != 0 {
				nonZeros = append(nonZeros, j)
			}
		}
		assert.Equal(t, support, nonZeros)
	}
}

func TestExactCountEdgeCases(t *testing.T) {
	// empty support
	d, err := NewSyntheticBinaryValued(10, 5, ExactCount(0), NewConfig().SetSeed(0))
	assert.NoError(t, err)
	assert.Empty(t, d.Support())
	assert.Zero(t, d.Density())

	// full support
	d, err = NewSyntheticBinaryValued(10, 5, ExactCount(5), NewConfig().SetSeed(0))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, d.Support())
	assert.Equal(t, float32(1), d.Density())
}

func TestGet(t *testing.T) {
	d, err := NewSyntheticUniformValued(8, 3, Probability(0.5), NewConfig().SetSeed(1))
	assert.NoError(t, err)
	row, err := d.Get(7)
	assert.NoError(t, err)
	assert.Len(t, row, 3)

	_, err = d.Get(-1)
	assert.ErrorIs(t, err, errors.NotFound)
	_, err = d.Get(8)
	assert.ErrorIs(t, err, errors.NotFound)
}

func TestSlice(t *testing.T) {
	d, err := NewSyntheticUniformValued(8, 3, Probability(0.5), NewConfig().SetSeed(1))
	assert.NoError(t, err)

	rows, err := d.Slice(2, 5)
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	for i, row := range rows {
		expected, err := d.Get(2 + i)
		assert.NoError(t, err)
		assert.Equal(t, expected, row)
	}

	_, err = d.Slice(-1, 5)
	assert.ErrorIs(t, err, errors.NotFound)
	_, err = d.Slice(0, 9)
	assert.ErrorIs(t, err, errors.NotFound)
	_, err = d.Slice(5, 2)
	assert.ErrorIs(t, err, errors.NotFound)
}

func TestDeterminism(t *testing.T) {
	a, err := NewSyntheticUniformValued(100, 20, Probability(0.3), NewConfig().SetSeed(42))
	assert.NoError(t, err)
	b, err := NewSyntheticUniformValued(100, 20, Probability(0.3), NewConfig().SetSeed(42))
	assert.NoError(t, err)
	c, err := NewSyntheticUniformValued(100, 20, Probability(0.3), NewConfig().SetSeed(43))
	assert.NoError(t, err)

	aRows, _ := a.Slice(0, a.Count())
	bRows, _ := b.Slice(0, b.Count())
	cRows, _ := c.Slice(0, c.Count())
	assert.Equal(t, aRows, bRows)
	assert.NotEqual(t, aRows, cRows)
}

func TestInvalidArguments(t *testing.T) {
	_, err := NewSyntheticUniformValued(0, 5, Probability(0.5), nil)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = NewSyntheticUniformValued(5, 0, Probability(0.5), nil)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = NewSyntheticUniformValued(5, 5, Probability(1.5), nil)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = NewSyntheticUniformValued(5, 5, Probability(-0.5), nil)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = NewSyntheticUniformValued(5, 5, ExactCount(-1), nil)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = NewSyntheticUniformValued(5, 5, ExactCount(6), nil)
	assert.ErrorIs(t, err, errors.NotValid)
	_, err = NewSyntheticDataset(5, 5, Probability(0.5), nil, nil)
	assert.ErrorIs(t, err, errors.NotValid)
}

func TestDensity(t *testing.T) {
	d, err := NewSyntheticBinaryValued(100, 10, ExactCount(3), NewConfig().SetSeed(0))
	assert.NoError(t, err)
	assert.Equal(t, float32(0.3), d.Density())

	d, err = NewSyntheticBinaryValued(100, 10, Probability(0), NewConfig().SetSeed(0))
	assert.NoError(t, err)
	assert.Equal(t, float32(1), d.Density())
}
