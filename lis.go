// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

// Indices returns the indices (into X) of a longest strictly
// increasing subsequence of X(0), X(1), ..., X(srclen-1).
//
// Unlike Engine, it keeps one predecessor pointer per input element,
// so all input must be available up front.
func Indices(srclen int, X func(int) int) []int {
	return indices(srclen, X, false)
}

// NonDecreasingIndices is like Indices, but the subsequence may
// repeat equal values.
func NonDecreasingIndices(srclen int, X func(int) int) []int {
	return indices(srclen, X, true)
}

func indices(srclen int, X func(int) int, allowEqual bool) []int {
	if srclen == 0 {
		return nil
	}
	M := make([]int, srclen+1) // M[j] == index into X such that X[M[j]] is the smallest X[k] where k<=i and an increasing subsequence with length j ends at X[k]
	P := make([]int, srclen)   // P[k] == index in X of predecessor of X[k] in longest increasing subsequence ending at X[k]
	L := 0                     // length of longest increasing subsequence found so far
	for i := range P {
		lo, hi := 1, L
		for lo <= hi {
			mid := (lo + hi + 1) / 2
			if x := X(M[mid]); x < X(i) || (allowEqual && x == X(i)) {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		if i > 0 {
			P[i] = M[lo-1]
		}
		M[lo] = i
		if lo > L {
			L = lo
		}
	}
	ret := make([]int, L)
	for k, i := M[L], len(ret)-1; i >= 0; k, i = P[k], i-1 {
		ret[i] = k
	}
	return ret
}

// Values returns the elements of a longest strictly increasing (or,
// if nonDecreasing is true, non-decreasing) subsequence of in.
func Values(in []int, nonDecreasing bool) []int {
	idx := indices(len(in), func(i int) int { return in[i] }, nonDecreasing)
	out := make([]int, len(idx))
	for i, k := range idx {
		out[i] = in[k]
	}
	return out
}
