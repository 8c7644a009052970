// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
	"github.com/kshedden/gonpy"
)

// zcreate returns a writer for the given file ("-" means stdout),
// compressing the output if fnm ends with ".gz".
func zcreate(fnm string, stdout io.Writer) (io.WriteCloser, error) {
	var f io.WriteCloser
	if fnm == "-" {
		f = nopCloser{stdout}
	} else {
		var err error
		f, err = os.OpenFile(fnm, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, err
		}
	}
	if !strings.HasSuffix(fnm, ".gz") {
		return f, nil
	}
	return gzipw{pgzip.NewWriter(f), f}, nil
}

// gzipw closes the compressor before the underlying file.
type gzipw struct {
	*pgzip.Writer
	f io.Closer
}

func (gw gzipw) Close() error {
	e1 := gw.Writer.Close()
	e2 := gw.f.Close()
	if e1 != nil {
		return e1
	}
	return e2
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func joinInts(vals []int, sep string) string {
	var sb strings.Builder
	for i, v := range vals {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// writeResult writes a subsequence in the given format:
//
//	count: "4: 2 3 7 18\n" (empty subsequence: "0:\n")
//	lines: one value per line
func writeResult(w io.Writer, result []int, format string) error {
	bufw := bufio.NewWriter(w)
	switch format {
	case "count":
		fmt.Fprintf(bufw, "%d:", len(result))
		for _, v := range result {
			fmt.Fprintf(bufw, " %d", v)
		}
		bufw.WriteString("\n")
	case "lines":
		for _, v := range result {
			fmt.Fprintf(bufw, "%d\n", v)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return bufw.Flush()
}

// writeNumpy writes a subsequence to fnm as a 1-D int64 npy array.
func writeNumpy(fnm string, result []int) error {
	f, err := os.OpenFile(fnm, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	bufw := bufio.NewWriter(f)
	npw, err := gonpy.NewWriter(nopCloser{bufw})
	if err != nil {
		return fmt.Errorf("gonpy.NewWriter: %w", err)
	}
	data := make([]int64, len(result))
	for i, v := range result {
		data[i] = int64(v)
	}
	npw.Shape = []int{len(data)}
	err = npw.WriteInt64(data)
	if err != nil {
		return err
	}
	err = bufw.Flush()
	if err != nil {
		return err
	}
	return f.Close()
}
