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
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"

	"github.com/sienkus/devinterp/base/log"
)

// Concatenate merges vectors of integers to one.
func Concatenate(vectors ...[]int) []int {
	total := 0
	for _, arr := range vectors {
		total += len(arr)
	}
	vec := make([]int, total)
	pos := 0
	for _, arr := range vectors {
		for _, val := range arr {
			vec[pos] = val
			pos++
		}
	}
	return vec
}

// Max finds the maximum in a vector of integers. Panic if the slice is empty.
func Max(a []int) int {
	if len(a) == 0 {
		log.Logger().Panic("can't get the maximum from empty vec")
	}
	maximum := a[0]
	for _, m := range a {
		if m > maximum {
			maximum = m
		}
	}
	return maximum
}

// Min finds the minimum in a vector of integers. Panic if the slice is empty.
func Min(a []int) int {
	if len(a) == 0 {
		log.Logger().Panic("can't get the minimum from empty vec")
	}
	minimum := a[0]
	for _, m := range a {
		if m < minimum {
			minimum = m
		}
	}
	return minimum
}

// IntLinspace returns num integers evenly spaced over [start, stop], truncated
// and deduplicated. The result is sorted and may be shorter than num when
// truncation collides.
func IntLinspace(start, stop, num int) []int {
	if num <= 1 {
		return []int{start}
	}
	steps := mapset.NewSet[int]()
	for i := 0; i < num; i++ {
		v := float64(start) + float64(stop-start)*float64(i)/float64(num-1)
		steps.Add(int(v))
	}
	if steps.Cardinality() != num {
		log.Logger().Warn("integer linspace has fewer steps than requested",
			zap.Int("requested", num), zap.Int("actual", steps.Cardinality()))
	}
	result := steps.ToSlice()
	sort.Ints(result)
	return result
}

// IntLogspace returns num integers log-evenly spaced over [start, stop],
// truncated and deduplicated. Both bounds must be positive. The result is
// sorted and may be shorter than num when truncation collides.
func IntLogspace(start, stop, num int) []int {
	if num <= 1 {
		return []int{start}
	}
	low := math.Log10(float64(start))
	high := math.Log10(float64(stop))
	steps := mapset.NewSet[int]()
	for i := 0; i < num; i++ {
		v := math.Pow(10, low+(high-low)*float64(i)/float64(num-1))
		steps.Add(int(v))
	}
	if steps.Cardinality() != num {
		log.Logger().Warn("integer logspace has fewer steps than requested",
			zap.Int("requested", num), zap.Int("actual", steps.Cardinality()))
	}
	result := steps.ToSlice()
	sort.Ints(result)
	return result
}
