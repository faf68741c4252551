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

// Package floats provides float32 vector operations.
package floats

import "github.com/chewxy/math32"

// Zero fills a vector with zeros.
func Zero(a []float32) {
	for i := range a {
		a[i] = 0
	}
}

// MatZero fills a matrix with zeros.
func MatZero(x [][]float32) {
	for i := range x {
		for j := range x[i] {
			x[i][j] = 0
		}
	}
}

// Add two vectors: dst = dst + s
func Add(dst, s []float32) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	for i := range dst {
		dst[i] += s[i]
	}
}

// Sub one vector by another: dst = dst - s
func Sub(dst, s []float32) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	for i := range dst {
		dst[i] -= s[i]
	}
}

// Mul two vectors: dst = dst * s
func Mul(dst, s []float32) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	for i := range dst {
		dst[i] *= s[i]
	}
}

// MulTo multiplies two vectors and saves the result in dst: dst = a * b
func MulTo(a, b, dst []float32) {
	if len(dst) != len(a) || len(dst) != len(b) {
		panic("floats: slice lengths do not match")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulConst multiplies a vector with a const: dst = dst * c
func MulConst(dst []float32, c float32) {
	for i := range dst {
		dst[i] *= c
	}
}

// Div one vector by another: dst = dst / s
func Div(dst, s []float32) {
	if len(dst) != len(s) {
		panic("floats: slice lengths do not match")
	}
	for i := range dst {
		dst[i] /= s[i]
	}
}

// Dot computes the dot product of two vectors.
func Dot(a, b []float32) (ret float32) {
	if len(a) != len(b) {
		panic("floats: slice lengths do not match")
	}
	for i := range a {
		ret += a[i] * b[i]
	}
	return
}

// Sum computes the sum of a vector.
func Sum(a []float32) (ret float32) {
	for i := range a {
		ret += a[i]
	}
	return
}

// Min finds the minimum in a vector. Panic if the slice is empty.
func Min(a []float32) float32 {
	if len(a) == 0 {
		panic("floats: can't get the minimum of an empty vec")
	}
	minimum := a[0]
	for _, m := range a {
		if m < minimum {
			minimum = m
		}
	}
	return minimum
}

// Max finds the maximum in a vector. Panic if the slice is empty.
func Max(a []float32) float32 {
	if len(a) == 0 {
		panic("floats: can't get the maximum of an empty vec")
	}
	maximum := a[0]
	for _, m := range a {
		if m > maximum {
			maximum = m
		}
	}
	return maximum
}

// Mean computes the mean of a vector. Panic if the slice is empty.
func Mean(a []float32) float32 {
	if len(a) == 0 {
		panic("floats: can't get the mean of an empty vec")
	}
	return Sum(a) / float32(len(a))
}

// StdDev computes the sample standard deviation of a vector.
func StdDev(a []float32) float32 {
	if len(a) < 2 {
		return 0
	}
	mean := Mean(a)
	var sum float32
	for _, v := range a {
		sum += (v - mean) * (v - mean)
	}
	return math32.Sqrt(sum / float32(len(a)-1))
}
