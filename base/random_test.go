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

package base

import (
	"math"
	"sync"
	"testing"

	"github.com/chewxy/math32"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"

	"github.com/sienkus/devinterp/common/floats"
)

const randomEpsilon = 0.1

func TestRandomGenerator_UniformMatrix(t *testing.T) {
	rng := NewRandomGenerator(0)
	vec := rng.UniformMatrix(1, 1000, 1, 2)[0]
	assert.False(t, floats.Min(vec) < 1)
	assert.False(t, floats.Max(vec) > 2)
}

func TestRandomGenerator_NormalMatrix(t *testing.T) {
	rng := NewRandomGenerator(0)
	vec := rng.NormalMatrix(1, 1000, 1, 2)[0]
	assert.False(t, math32.Abs(floats.Mean(vec)-1) > randomEpsilon)
	assert.False(t, math32.Abs(floats.StdDev(vec)-2) > randomEpsilon)
}

func TestRandomGenerator_NormalVector64(t *testing.T) {
	rng := NewRandomGenerator(0)
	vec := rng.NormalVector64(1000, 1, 2)
	assert.False(t, math.Abs(stat.Mean(vec, nil)-1) > randomEpsilon)
	assert.False(t, math.Abs(stat.StdDev(vec, nil)-2) > randomEpsilon)
}

func TestRandomGenerator_BernoulliMatrix(t *testing.T) {
	rng := NewRandomGenerator(0)
	vec := rng.BernoulliMatrix(1, 10000, 0.7)[0]
	for _, v := range vec {
		assert.True(t, v == 0 || v == 1)
	}
	assert.InDelta(t, 0.7, floats.Mean(vec), randomEpsilon)
}

func TestRandomGenerator_Sample(t *testing.T) {
	excludeSet := mapset.NewSet(0, 1, 2, 3, 4)
	rng := NewRandomGenerator(0)
	for i := 1; i <= 10; i++ {
		sampled := rng.Sample(0, 10, i, excludeSet)
		for j := range sampled {
			assert.False(t, excludeSet.Contains(sampled[j]))
		}
	}
}

func TestRandomGenerator_SampleWithoutReplacement(t *testing.T) {
	rng := NewRandomGenerator(0)
	sampled := rng.Sample(0, 100, 10)
	assert.Len(t, sampled, 10)
	seen := mapset.NewSet[int]()
	for _, v := range sampled {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 100)
		assert.False(t, seen.Contains(v))
		seen.Add(v)
	}
}

func TestNewRand(t *testing.T) {
	r := NewRand(0)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Int63()
			}
		}()
	}
	wg.Wait()
}
