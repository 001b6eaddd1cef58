// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/go-air/circgen/bench"
)

func runCmd() *cobra.Command {
	var (
		dir     string
		cmdline string
		timeout time.Duration
		csvPath string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a solver command over a corpus and collect a results table",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c, e := bench.OpenCorpus(dir)
			if e != nil {
				return e
			}
			_, e = bench.RunCmd(c, cmdline, timeout, csvPath, log)
			return e
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "corpus", "corpus root directory")
	cmd.Flags().StringVar(&cmdline, "cmd", "", "command to run on each instance")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-instance timeout")
	cmd.Flags().StringVar(&csvPath, "csv", "results.csv", "results table path")
	cmd.MarkFlagRequired("cmd")
	return cmd
}
