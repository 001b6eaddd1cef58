// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Circgen generates corpora of random combinational circuit
// benchmarks in gate-list (.bench) and ASCII AIGER (.aag) formats
// and runs external solver commands over them.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "circgen",
		Short:         "random circuit benchmark corpora",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if *verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}
	root.AddCommand(genCmd(), runCmd())
	if e := root.Execute(); e != nil {
		log.Error(e)
		os.Exit(1)
	}
}
