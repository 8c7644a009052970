// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

type runcmd struct {
	method string
	format string
	strict bool
	trace  bool
	verify bool

	nonDecreasing bool
}

func (cmd *runcmd) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	inputFilename := flags.String("i", "-", "input `file` (integers separated by whitespace; .gz and .npy also accepted)")
	outputFilename := flags.String("o", "-", "output `file`")
	outputNumpy := flags.String("output-numpy", "", "also write the subsequence to numpy `file`")
	flags.StringVar(&cmd.method, "method", "history", "algorithm: history or predecessor")
	flags.StringVar(&cmd.format, "format", "count", "output format: count or lines")
	flags.BoolVar(&cmd.strict, "strict", false, "fail on a malformed input token instead of ending input there")
	flags.BoolVar(&cmd.trace, "trace", false, "log the tails array after every step")
	flags.BoolVar(&cmd.verify, "verify", false, "check the result against the predecessor method")
	flags.BoolVar(&cmd.nonDecreasing, "non-decreasing", false, "allow equal values to repeat in the subsequence")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() > 0 {
		err = fmt.Errorf("%s: unexpected arguments %q", prog, flags.Args())
		return 2
	} else if cmd.method != "history" && cmd.method != "predecessor" {
		err = fmt.Errorf("%s: unknown method %q", prog, cmd.method)
		return 2
	} else if cmd.format != "count" && cmd.format != "lines" {
		err = fmt.Errorf("%s: unknown format %q", prog, cmd.format)
		return 2
	}

	logger := newLogger(stderr, cmd.trace)

	engine := Engine{NonDecreasing: cmd.nonDecreasing}
	if cmd.trace {
		engine.Observer = func(phase string, tails []int) {
			logger.WithField("phase", phase).Debugf("L: %s", joinInts(tails, " "))
		}
	}
	var values []int
	keep := cmd.method == "predecessor" || cmd.verify
	push := func(v int) {
		if cmd.method == "history" {
			engine.Push(v)
		}
		if keep {
			values = append(values, v)
		}
	}

	input, err := zopen(*inputFilename, stdin)
	if err != nil {
		return 1
	}
	defer input.Close()
	var n int
	if strings.HasSuffix(*inputFilename, ".npy") {
		n, err = readNumpy(input, push)
	} else {
		n, err = readInts(input, cmd.strict, logger, push)
	}
	if err != nil {
		return 1
	}
	err = input.Close()
	if err != nil {
		return 1
	}

	var result []int
	if cmd.method == "history" {
		result = engine.Backtrack()
	} else {
		result = Values(values, cmd.nonDecreasing)
	}
	logger.WithFields(log.Fields{
		"method": cmd.method,
		"inputs": n,
		"length": len(result),
	}).Debug("done")

	if cmd.verify {
		err = verify(values, result, cmd.nonDecreasing)
		if err != nil {
			logger.WithError(err).Error("verify failed")
			return 1
		}
	}

	output, err := zcreate(*outputFilename, stdout)
	if err != nil {
		return 1
	}
	defer output.Close()
	err = writeResult(output, result, cmd.format)
	if err != nil {
		return 1
	}
	err = output.Close()
	if err != nil {
		return 1
	}
	if *outputNumpy != "" {
		err = writeNumpy(*outputNumpy, result)
		if err != nil {
			return 1
		}
	}
	return 0
}

// verify returns an error if result is not an increasing subsequence
// of in with the same length as the one found by the predecessor
// method.
func verify(in, result []int, nonDecreasing bool) error {
	if want := len(indices(len(in), func(i int) int { return in[i] }, nonDecreasing)); len(result) != want {
		return fmt.Errorf("result has length %d, expected %d", len(result), want)
	}
	pos := 0
	for i, v := range result {
		if i > 0 && (v < result[i-1] || (v == result[i-1] && !nonDecreasing)) {
			return fmt.Errorf("result is not increasing at position %d (%d <= %d)", i, v, result[i-1])
		}
		for pos < len(in) && in[pos] != v {
			pos++
		}
		if pos == len(in) {
			return errors.New("result is not a subsequence of input")
		}
		pos++
	}
	return nil
}
