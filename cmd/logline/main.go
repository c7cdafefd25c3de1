// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is a small demonstration command for the logline library.
// It writes sample records to standard error so the format and colors can
// be inspected in a terminal or captured through a pipe.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/matt-FFFFFF/logline"
	"github.com/matt-FFFFFF/logline/internal/color"
	"github.com/urfave/cli/v3"
)

const (
	levelFlag  = "level"
	countFlag  = "count"
	messageArg = "message"
)

// ErrUnknownLevel is returned when the --level flag does not name a level.
var ErrUnknownLevel = errors.New("unknown level, expected one of DEBUG, INFO, WARN, ERROR, FATAL")

var rootCmd = &cli.Command{
	Name:    "logline",
	Usage:   "logline [--level error] [--count 3] [message]",
	Version: logline.Version,
	Description: `Logline is a single-line logging library that stamps each record with the
wall-clock time, severity, and call site, and writes it to standard error
with severity coloring. This command emits sample records: one per level by
default, or the given message at the given level.`,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      messageArg,
			UsageText: "[MESSAGE]",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    levelFlag,
			Aliases: []string{"l"},
			Usage:   "Level to log the message at (debug, info, warn, error, fatal)",
			Value:   "info",
		},
		&cli.IntFlag{
			Name:    countFlag,
			Aliases: []string{"n"},
			Usage:   "Number of times to emit the sample records",
			Value:   1,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	count := cmd.Int(countFlag)
	if count < 1 {
		return cli.Exit("count must be at least 1", 1)
	}

	fmt.Fprintln(cmd.Writer, color.Colorize("logline demo, records follow on stderr", color.Bold))

	if !color.Enabled() {
		fmt.Fprintln(cmd.Writer, "note: color output is off for this terminal, but records always carry their escape sequences")
	}

	if msg := cmd.StringArg(messageArg); msg != "" {
		level, err := parseLevel(cmd.String(levelFlag))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		for range count {
			logline.New(level).Append(msg).Send()
		}

		return nil
	}

	for range count {
		logline.Debug().Append("resolving ", 3, " upstreams").Send()
		logline.Infof("listening on %s", "127.0.0.1:8080")
		logline.Warn().Append("disk at ", 93, "%").Send()
		logline.Errorf("timeout after %d retries", 3)
		logline.Fatal().Append("unrecoverable state, shutting down").Send()
	}

	return nil
}

func parseLevel(name string) (logline.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return logline.LevelDebug, nil
	case "INFO":
		return logline.LevelInfo, nil
	case "WARN":
		return logline.LevelWarn, nil
	case "ERROR":
		return logline.LevelError, nil
	case "FATAL":
		return logline.LevelFatal, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

func main() {
	if err := rootCmd.Run(context.Background(), os.Args); err != nil {
		logline.Errorf("%v", err)
		os.Exit(1)
	}
}
