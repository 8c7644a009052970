// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package lis

import (
	"io"
	"os"
	"strings"

	"git.arvados.org/arvados.git/lib/cmd"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	handler = cmd.Multi(map[string]cmd.Handler{
		"version":   cmd.Version,
		"-version":  cmd.Version,
		"--version": cmd.Version,

		"run": &runcmd{},
		"gen": &gencmd{},
	})
)

func Main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		logrus.StandardLogger().Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	}
	os.Exit(handler.RunCommand(os.Args[0], defaultSubcommand(os.Args[1:]), os.Stdin, os.Stdout, os.Stderr))
}

// defaultSubcommand inserts "run" when no subcommand is given, so
// "lis <input" and "lis -trace <input" work.
func defaultSubcommand(args []string) []string {
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && handler[args[0]] == nil) {
		return append([]string{"run"}, args...)
	}
	return args
}

// newLogger returns a logger that writes to stderr using the standard
// logger's formatter, at debug level if debug is true.
func newLogger(stderr io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.Out = stderr
	logger.Formatter = logrus.StandardLogger().Formatter
	if debug {
		logger.Level = logrus.DebugLevel
	}
	return logger
}
