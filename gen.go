// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// gencmd writes uniformly distributed random integers, one per line,
// suitable as input to the run command.
type gencmd struct{}

func (cmd *gencmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	n := flags.Int("n", 20, "number of values")
	min := flags.Int("min", 0, "smallest value")
	max := flags.Int("max", 100, "largest value + 1")
	seed := flags.Uint64("seed", 0, "random seed (0 = choose one and log it)")
	outputFilename := flags.String("o", "-", "output `file` (.gz suffix compresses)")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if *n < 0 {
		err = fmt.Errorf("%s: -n must not be negative", prog)
		return 2
	} else if *max <= *min {
		err = fmt.Errorf("%s: -max must be greater than -min", prog)
		return 2
	}

	logger := newLogger(stderr, false)
	if *seed == 0 {
		*seed = rand.Uint64()
		logger.Infof("using -seed=%d", *seed)
	}
	dist := distuv.Uniform{Min: float64(*min), Max: float64(*max), Src: rand.NewSource(*seed)}

	output, err := zcreate(*outputFilename, stdout)
	if err != nil {
		return 1
	}
	defer output.Close()
	bufw := bufio.NewWriter(output)
	for i := 0; i < *n; i++ {
		v := int(math.Floor(dist.Rand()))
		if v >= *max {
			v = *max - 1
		}
		fmt.Fprintf(bufw, "%d\n", v)
	}
	err = bufw.Flush()
	if err != nil {
		return 1
	}
	err = output.Close()
	if err != nil {
		return 1
	}
	return 0
}
