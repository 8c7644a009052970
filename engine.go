// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"sort"
)

// prior is the value a push overwrote in the tails array. ok==false
// means the push appended instead of overwriting.
type prior struct {
	value int
	ok    bool
}

// Engine computes a longest strictly increasing subsequence of the
// values passed to Push, using a tails array and a journal of
// overwritten values instead of per-element predecessor pointers.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	// Compute a longest non-decreasing subsequence instead (equal
	// values may repeat). Must not change between Push and
	// Backtrack.
	NonDecreasing bool

	// If not nil, Observer is called with a copy of the tails array
	// after each push ("push") and each backtrack step ("pop").
	Observer func(phase string, tails []int)

	// tails[j] is the smallest last element of an increasing
	// subsequence of length j+1 seen so far.
	tails []int
	// history[i] is the element of tails overwritten when the i-th
	// value was pushed.
	history []prior
}

// Push updates the tails array with the next input value.
func (e *Engine) Push(v int) {
	j := e.insertionPoint(v)
	if j == len(e.tails) {
		e.history = append(e.history, prior{})
		e.tails = append(e.tails, v)
	} else {
		e.history = append(e.history, prior{value: e.tails[j], ok: true})
		e.tails[j] = v
	}
	e.notify("push")
}

// Len returns the length of the longest increasing subsequence of the
// values pushed so far.
func (e *Engine) Len() int {
	return len(e.tails)
}

// Pushed returns the number of values pushed since the last
// Backtrack or Reset.
func (e *Engine) Pushed() int {
	return len(e.history)
}

// Tails returns a copy of the current tails array.
func (e *Engine) Tails() []int {
	return append([]int(nil), e.tails...)
}

// Reset discards all pushed values.
func (e *Engine) Reset() {
	e.tails = e.tails[:0]
	e.history = e.history[:0]
}

// Backtrack returns one longest increasing subsequence of the pushed
// values, in input order. It consumes the engine state: afterward
// Len() and Pushed() are both zero.
//
// When several subsequences share the maximum length, which one is
// returned is determined by the unwinding order and is not otherwise
// specified.
func (e *Engine) Backtrack() []int {
	result := make([]int, len(e.tails))
	cursor := len(result) - 1
	for len(e.history) > 0 {
		if cursor >= 0 {
			result[cursor] = e.tails[cursor]
		}
		h := e.history[len(e.history)-1]
		e.history = e.history[:len(e.history)-1]
		j := e.restorePoint(h)
		if h.ok {
			e.tails[j] = h.value
		} else {
			e.tails = e.tails[:len(e.tails)-1]
		}
		e.notify("pop")
		if j == cursor {
			cursor--
		}
	}
	return result
}

// insertionPoint returns the index of the slot v replaces: the first
// entry not less than v, or (NonDecreasing) the first entry greater
// than v.
func (e *Engine) insertionPoint(v int) int {
	if e.NonDecreasing {
		return sort.Search(len(e.tails), func(i int) bool { return e.tails[i] > v })
	}
	return sort.SearchInts(e.tails, v)
}

// restorePoint returns the slot that held p.value before the most
// recent push overwrote it. An appended slot is always the last one.
//
// The pushed value is <= p.value (strict) or < p.value
// (NonDecreasing), and the next slot is > p.value or >= p.value
// respectively, so the slot is the last entry <= p.value or < p.value.
func (e *Engine) restorePoint(p prior) int {
	if !p.ok {
		return len(e.tails) - 1
	}
	if e.NonDecreasing {
		return sort.SearchInts(e.tails, p.value) - 1
	}
	return sort.Search(len(e.tails), func(i int) bool { return e.tails[i] > p.value }) - 1
}

func (e *Engine) notify(phase string) {
	if e.Observer != nil {
		e.Observer(phase, e.Tails())
	}
}
