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

// Package dataset generates synthetic sparse feature vectors for toy models
// of superposition experiments.
package dataset

import (
	"sort"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/sienkus/devinterp/base"
	"github.com/sienkus/devinterp/base/log"
	"github.com/sienkus/devinterp/common/floats"
)

// Config holds configuration for dataset generation.
type Config struct {
	Seed int64
}

// NewConfig creates a default generation config.
func NewConfig() *Config {
	return &Config{}
}

// SetSeed sets the seed of the random generator. Datasets generated with the
// same seed and parameters are identical.
func (config *Config) SetSeed(seed int64) *Config {
	config.Seed = seed
	return config
}

// SyntheticDataset is a fixed-length collection of sparse feature vectors.
// The full data matrix is materialized at construction and never mutated
// afterwards.
type SyntheticDataset struct {
	numSamples  int
	numFeatures int
	sparsity    Sparsity
	support     []int
	data        [][]float32
}

// NewSyntheticDataset generates a dataset of numSamples rows with numFeatures
// entries each. Every row is the elementwise product of a sparse 0/1 mask and
// fill values drawn from the value generator. The mask and values are
// temporary and released after construction.
func NewSyntheticDataset(numSamples, numFeatures int, sparsity Sparsity, values ValueGenerator, config *Config) (*SyntheticDataset, error) {
	start := time.Now()
	if numSamples <= 0 {
		return nil, errors.NotValidf("num_samples %d", numSamples)
	}
	if numFeatures <= 0 {
		return nil, errors.NotValidf("num_features %d", numFeatures)
	}
	if values == nil {
		return nil, errors.NotValidf("nil value generator")
	}
	if err := sparsity.validate(numFeatures); err != nil {
		return nil, errors.Trace(err)
	}
	if config == nil {
		config = NewConfig()
	}
	d := &SyntheticDataset{
		numSamples:  numSamples,
		numFeatures: numFeatures,
		sparsity:    sparsity,
	}
	rng := base.NewRandomGenerator(config.Seed)
	d.data, d.support = d.generateMask(rng)
	for i, row := range values.Values(rng, numSamples, numFeatures) {
		floats.Mul(d.data[i], row)
	}
	log.Logger().Debug("generated synthetic dataset",
		zap.Int("num_samples", numSamples),
		zap.Int("num_features", numFeatures),
		zap.String("sparsity", sparsity.String()),
		zap.Float32("density", d.Density()),
		zap.Duration("elapsed", time.Since(start)))
	return d, nil
}

// NewSyntheticUniformValued generates a dataset whose samples are zero with
// the given sparsity and uniform between 0 and 1 otherwise.
func NewSyntheticUniformValued(numSamples, numFeatures int, sparsity Sparsity, config *Config) (*SyntheticDataset, error) {
	return NewSyntheticDataset(numSamples, numFeatures, sparsity, UniformValued{}, config)
}

// NewSyntheticBinaryValued generates a dataset whose samples are zero with
// the given sparsity and 1 otherwise.
func NewSyntheticBinaryValued(numSamples, numFeatures int, sparsity Sparsity, config *Config) (*SyntheticDataset, error) {
	return NewSyntheticDataset(numSamples, numFeatures, sparsity, BinaryValued{}, config)
}

// generateMask builds the 0/1 mask matrix. Under the probability policy each
// entry is an independent Bernoulli draw. Under the exact-count policy the
// support is sampled once and reused for every row, so all rows have
// identical support.
func (d *SyntheticDataset) generateMask(rng base.RandomGenerator) ([][]float32, []int) {
	if d.sparsity.IsExactCount() {
		indices := rng.Sample(0, d.numFeatures, d.sparsity.Count())
		sort.Ints(indices)
		support := bitset.New(uint(d.numFeatures))
		for _, index := range indices {
			support.Set(uint(index))
		}
		mask := make([][]float32, d.numSamples)
		for i := range mask {
			mask[i] = make([]float32, d.numFeatures)
			for j := range mask[i] {
				if support.Test(uint(j)) {
					mask[i][j] = 1
				}
			}
		}
		return mask, indices
	}
	return rng.BernoulliMatrix(d.numSamples, d.numFeatures, 1-d.sparsity.ZeroProbability()), nil
}

// Count returns the number of samples.
func (d *SyntheticDataset) Count() int {
	return d.numSamples
}

// NumFeatures returns the length of each feature vector.
func (d *SyntheticDataset) NumFeatures() int {
	return d.numFeatures
}

// Sparsity returns the sparsity the dataset was generated with.
func (d *SyntheticDataset) Sparsity() Sparsity {
	return d.sparsity
}

// Support returns the sorted shared support indices under the exact-count
// policy, or nil under the probability policy. The returned slice must not
// be modified.
func (d *SyntheticDataset) Support() []int {
	return d.support
}

// Get returns the sample at the given index. The returned slice must not be
// modified.
func (d *SyntheticDataset) Get(index int) ([]float32, error) {
	if index < 0 || index >= d.numSamples {
		return nil, errors.NotFoundf("sample %d out of [0, %d)", index, d.numSamples)
	}
	return d.data[index], nil
}

// Slice returns the samples in [begin, end). The returned rows must not be
// modified.
func (d *SyntheticDataset) Slice(begin, end int) ([][]float32, error) {
	if begin < 0 || end > d.numSamples || begin > end {
		return nil, errors.NotFoundf("samples [%d, %d) out of [0, %d)", begin, end, d.numSamples)
	}
	return d.data[begin:end], nil
}

// Density returns the observed fraction of non-zero entries.
func (d *SyntheticDataset) Density() float32 {
	nonZeros := lo.SumBy(d.data, func(row []float32) int {
		count := 0
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
		return count
	})
	return float32(nonZeros) / float32(d.numSamples*d.numFeatures)
}
