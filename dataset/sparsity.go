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
	"fmt"

	"github.com/juju/errors"
)

type sparsityKind int

const (
	probabilitySparsity sparsityKind = iota
	exactCountSparsity
)

// Sparsity controls how many feature entries of a synthetic sample are
// non-zero. It is either a per-entry zeroing probability or an exact shared
// support size, resolved once at construction.
type Sparsity struct {
	kind        sparsityKind
	probability float32
	count       int
}

// Probability creates a sparsity where each entry is independently zeroed
// with probability p.
func Probability(p float32) Sparsity {
	return Sparsity{kind: probabilitySparsity, probability: p}
}

// ExactCount creates a sparsity where exactly count feature indices survive,
// sampled once without replacement and shared by every sample.
func ExactCount(count int) Sparsity {
	return Sparsity{kind: exactCountSparsity, count: count}
}

// SparsityOf converts a dynamically typed value to a Sparsity. Floating-point
// values become zeroing probabilities, integers become exact support counts.
// Any other type is not valid.
func SparsityOf(value interface{}) (Sparsity, error) {
	switch v := value.(type) {
	case float32:
		return Probability(v), nil
	case float64:
		return Probability(float32(v)), nil
	case int:
		return ExactCount(v), nil
	case int32:
		return ExactCount(int(v)), nil
	case int64:
		return ExactCount(int(v)), nil
	default:
		return Sparsity{}, errors.NotValidf("sparsity type %T", value)
	}
}

// IsExactCount returns true under the exact-count policy.
func (s Sparsity) IsExactCount() bool {
	return s.kind == exactCountSparsity
}

// ZeroProbability returns the per-entry zeroing probability. It is only
// meaningful under the probability policy.
func (s Sparsity) ZeroProbability() float32 {
	return s.probability
}

// Count returns the shared support size. It is only meaningful under the
// exact-count policy.
func (s Sparsity) Count() int {
	return s.count
}

func (s Sparsity) String() string {
	if s.kind == exactCountSparsity {
		return fmt.Sprintf("exact_count(%d)", s.count)
	}
	return fmt.Sprintf("probability(%v)", s.probability)
}

func (s Sparsity) validate(numFeatures int) error {
	switch s.kind {
	case probabilitySparsity:
		if s.probability < 0 || s.probability > 1 {
			return errors.NotValidf("zeroing probability %v out of [0, 1]", s.probability)
		}
	case exactCountSparsity:
		if s.count < 0 || s.count > numFeatures {
			return errors.NotValidf("support size %d out of [0, %d]", s.count, numFeatures)
		}
	}
	return nil
}
