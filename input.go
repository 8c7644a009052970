// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/kshedden/gonpy"
	log "github.com/sirupsen/logrus"
)

// zopen returns a reader for the given file ("-" means stdin),
// transparently decompressing the input if fnm ends with ".gz".
func zopen(fnm string, stdin io.Reader) (io.ReadCloser, error) {
	var f io.ReadCloser
	if fnm == "-" {
		f = ioutil.NopCloser(stdin)
	} else {
		var err error
		f, err = os.Open(fnm)
		if err != nil {
			return nil, err
		}
	}
	if !strings.HasSuffix(fnm, ".gz") {
		return f, nil
	}
	rdr, err := pgzip.NewReader(bufio.NewReaderSize(f, 4*1024*1024))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", fnm, err)
	}
	return gzipr{rdr, f}, nil
}

// gzipr wraps a ReadCloser and a Closer, presenting a single Close()
// method that closes both wrapped objects.
type gzipr struct {
	io.ReadCloser
	io.Closer
}

func (gr gzipr) Close() error {
	e1 := gr.ReadCloser.Close()
	e2 := gr.Closer.Close()
	if e1 != nil {
		return e1
	}
	return e2
}

// readInts calls fn for each whitespace-separated integer in r, and
// returns the number of integers read.
//
// A token that does not parse as an int (or is too long to scan) ends
// the input: if strict is true, an error is returned, otherwise a
// warning is logged and the integers read so far are kept.
func readInts(r io.Reader, strict bool, logger log.FieldLogger, fn func(int)) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	n := 0
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			if strict {
				return n, fmt.Errorf("input token %d: %w", n+1, err)
			}
			logger.Warnf("ignoring input from token %d on: %s", n+1, err)
			return n, nil
		}
		fn(v)
		n++
	}
	err := scanner.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		if strict {
			return n, fmt.Errorf("input token %d: %w", n+1, err)
		}
		logger.Warnf("ignoring input from token %d on: %s", n+1, err)
		return n, nil
	}
	return n, err
}

// readNumpy calls fn for each element of a 1-D (or flattened) integer
// npy array.
func readNumpy(r io.Reader, fn func(int)) (int, error) {
	npy, err := gonpy.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("gonpy.NewReader: %w", err)
	}
	switch strings.TrimLeft(npy.Dtype, "<>|=") {
	case "i8":
		data, err := npy.GetInt64()
		if err != nil {
			return 0, err
		}
		for _, v := range data {
			fn(int(v))
		}
		return len(data), nil
	case "i4":
		data, err := npy.GetInt32()
		if err != nil {
			return 0, err
		}
		for _, v := range data {
			fn(int(v))
		}
		return len(data), nil
	case "i2":
		data, err := npy.GetInt16()
		if err != nil {
			return 0, err
		}
		for _, v := range data {
			fn(int(v))
		}
		return len(data), nil
	default:
		return 0, fmt.Errorf("unsupported npy dtype %q", npy.Dtype)
	}
}
