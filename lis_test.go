// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"gopkg.in/check.v1"
)

type lisSuite struct{}

var _ = check.Suite(&lisSuite{})

func (s *lisSuite) TestIndices(c *check.C) {
	for _, trial := range []struct {
		in  []int
		out []int
	}{
		{},
		{
			in: []int{},
		},
		{
			in:  []int{0},
			out: []int{0},
		},
		{
			in:  []int{1, 2, 3, 4},
			out: []int{0, 1, 2, 3},
		},
		{
			in:  []int{1, 2, 2, 4},
			out: []int{0, 2, 3},
		},
		{
			in:  []int{4, 3, 2, 1},
			out: []int{3},
		},
		{
			in:  []int{1, 3, 2, 4},
			out: []int{0, 2, 3},
		},
		{
			in:  []int{1, 0, 0, 0, 4},
			out: []int{3, 4},
		},
		{
			in:  []int{0, 1, 2, 1, 4, 5},
			out: []int{0, 1, 2, 4, 5},
		},
	} {
		c.Logf("=== %v", trial)
		c.Check(Indices(len(trial.in), func(i int) int { return trial.in[i] }), check.DeepEquals, trial.out)
	}
}

func (s *lisSuite) TestValues(c *check.C) {
	c.Check(Values(nil, false), check.HasLen, 0)
	c.Check(Values([]int{10, 9, 2, 5, 3, 7, 101, 18}, false), check.DeepEquals, []int{2, 3, 7, 18})
	c.Check(Values([]int{2, 2, 2}, false), check.DeepEquals, []int{2})
	c.Check(Values([]int{2, 2, 2}, true), check.DeepEquals, []int{2, 2, 2})
}

func (s *lisSuite) TestNonDecreasingIndices(c *check.C) {
	for _, trial := range []struct {
		in  []int
		out []int
	}{
		{},
		{
			in:  []int{1, 2, 2, 4},
			out: []int{0, 1, 2, 3},
		},
		{
			in:  []int{1, 0, 0, 0, 4},
			out: []int{1, 2, 3, 4},
		},
		{
			in:  []int{3, 3, 1, 2, 2, 1},
			out: []int{2, 3, 4},
		},
	} {
		c.Logf("=== %v", trial)
		c.Check(NonDecreasingIndices(len(trial.in), func(i int) int { return trial.in[i] }), check.DeepEquals, trial.out)
	}
}
