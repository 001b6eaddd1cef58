// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-air/circgen/bench"
)

type genOpts struct {
	config   string
	out      string
	seed     int64
	numBench int
	numAag   int
}

func (o *genOpts) bind(fs *pflag.FlagSet) {
	fs.StringVar(&o.config, "config", "", "yaml corpus config file")
	fs.StringVar(&o.out, "out", "", "corpus output directory")
	fs.Int64Var(&o.seed, "seed", -1, "corpus seed")
	fs.IntVar(&o.numBench, "num-bench", -1, "gate-list instances per family")
	fs.IntVar(&o.numAag, "num-aag", -1, "aag instances")
}

func genCmd() *cobra.Command {
	o := &genOpts{}
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate a benchmark corpus",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cfg := bench.DefaultConfig()
			if o.config != "" {
				var e error
				if cfg, e = bench.LoadConfig(o.config); e != nil {
					return e
				}
			}
			// explicit flags win over the config file
			if o.out != "" {
				cfg.OutDir = o.out
			}
			if o.seed >= 0 {
				cfg.Seed = o.seed
			}
			if o.numBench >= 0 {
				cfg.NumBench = o.numBench
			}
			if o.numAag >= 0 {
				cfg.NumAag = o.numAag
			}
			_, e := bench.Build(cfg, log)
			return e
		},
	}
	o.bind(cmd.Flags())
	return cmd
}
