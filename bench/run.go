// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// resultCols are the columns of the results table.  Everything
// after wall_ms is scraped from the tool's stdout as key=value
// pairs and left blank when absent.
var resultCols = []string{
	"path", "status", "wall_ms",
	"solve_calls", "cnf_vars", "cnf_clauses",
	"aig_inputs", "aig_ands", "cone_inputs",
}

// Result is one row of a run's results table.
type Result struct {
	Path   string
	Status string // ok | timeout | error
	WallMs int64
	Stats  map[string]string
}

// RunCmd executes cmd on every instance of c with a per-instance
// timeout and writes the collected rows as CSV to csvPath.  The
// instance path is appended as the command's last argument.
// Instance failures and timeouts become rows, not errors; RunCmd
// only fails on setup or CSV IO.
func RunCmd(c *Corpus, cmd string, ito time.Duration, csvPath string, log logrus.FieldLogger) ([]Result, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	args := strings.Fields(cmd)
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	insts := c.Insts()
	results := make([]Result, 0, len(insts))
	for _, inst := range insts {
		p := filepath.Join(c.Root, inst)
		res := runOne(args, p, ito)
		log.WithFields(logrus.Fields{
			"path":    inst,
			"status":  res.Status,
			"wall_ms": res.WallMs,
		}).Info("instance done")
		results = append(results, res)
	}
	if e := writeResults(csvPath, results); e != nil {
		return nil, e
	}
	return results, nil
}

func runOne(args []string, inst string, ito time.Duration) Result {
	ctx, cancel := context.WithTimeout(context.Background(), ito)
	defer cancel()
	var out bytes.Buffer
	ex := exec.CommandContext(ctx, args[0], append(append([]string{}, args[1:]...), inst)...)
	ex.Stdout = &out
	start := time.Now()
	e := ex.Run()
	res := Result{
		Path:   inst,
		Status: "ok",
		WallMs: time.Since(start).Milliseconds(),
		Stats:  parseStats(out.String()),
	}
	switch {
	case ctx.Err() == context.DeadlineExceeded:
		res.Status = "timeout"
	case e != nil:
		res.Status = "error"
	}
	return res
}

// parseStats collects key=value tokens from the tool's stdout.
func parseStats(out string) map[string]string {
	stats := make(map[string]string)
	for _, f := range strings.Fields(out) {
		k, v, ok := strings.Cut(f, "=")
		if !ok || k == "" || v == "" {
			continue
		}
		stats[k] = v
	}
	return stats
}

func writeResults(path string, results []Result) error {
	f, e := os.Create(path)
	if e != nil {
		return errors.Wrapf(e, "creating results table %s", path)
	}
	w := csv.NewWriter(f)
	if e := w.Write(resultCols); e != nil {
		f.Close()
		return errors.Wrap(e, "writing results table")
	}
	for _, r := range results {
		row := make([]string, 0, len(resultCols))
		row = append(row, r.Path, r.Status, strconv.FormatInt(r.WallMs, 10))
		for _, col := range resultCols[3:] {
			row = append(row, r.Stats[col])
		}
		if e := w.Write(row); e != nil {
			f.Close()
			return errors.Wrap(e, "writing results table")
		}
	}
	w.Flush()
	if e := w.Error(); e != nil {
		f.Close()
		return errors.Wrap(e, "writing results table")
	}
	return f.Close()
}
