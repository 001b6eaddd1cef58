// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/go-air/circgen/gen"
)

// CorpusConfig parameterizes corpus generation.  The zero value is
// not usable; start from DefaultConfig.
type CorpusConfig struct {
	Seed        int64      `yaml:"seed"`
	OutDir      string     `yaml:"out_dir"`
	NumBench    int        `yaml:"num_bench"` // gate-list instances per family
	NumAag      int        `yaml:"num_aag"`
	Bench       gen.Config `yaml:"bench"`
	Aag         gen.Config `yaml:"aag"`
	SubsetDir   string     `yaml:"subset_dir"`
	SubsetBench int        `yaml:"subset_bench"`
	SubsetAag   int        `yaml:"subset_aag"`
}

// DefaultConfig returns the sample corpus parameters.
func DefaultConfig() CorpusConfig {
	return CorpusConfig{
		Seed:        1,
		OutDir:      "corpus",
		NumBench:    30,
		NumAag:      120,
		Bench:       gen.Config{MinIn: 6, MaxIn: 16, MinGates: 16, MaxGates: 48},
		Aag:         gen.Config{MinIn: 6, MaxIn: 16, MinGates: 18, MaxGates: 56},
		SubsetDir:   "run15",
		SubsetBench: 8,
		SubsetAag:   7,
	}
}

// LoadConfig reads a yaml config file over the defaults.
func LoadConfig(path string) (CorpusConfig, error) {
	cfg := DefaultConfig()
	buf, e := os.ReadFile(path)
	if e != nil {
		return cfg, errors.Wrapf(e, "reading config %s", path)
	}
	if e := yaml.Unmarshal(buf, &cfg); e != nil {
		return cfg, errors.Wrapf(e, "parsing config %s", path)
	}
	return cfg, nil
}

func (cfg CorpusConfig) check() error {
	if cfg.NumBench < 0 || cfg.NumAag < 0 {
		return errors.Wrapf(gen.ErrConfig, "instance counts %d/%d", cfg.NumBench, cfg.NumAag)
	}
	if cfg.SubsetBench < 0 || cfg.SubsetAag < 0 {
		return errors.Wrapf(gen.ErrConfig, "subset counts %d/%d", cfg.SubsetBench, cfg.SubsetAag)
	}
	if cfg.SubsetBench > cfg.NumBench*len(gen.Families) {
		return errors.Wrapf(gen.ErrConfig, "subset wants %d gate-list instances of %d", cfg.SubsetBench, cfg.NumBench*len(gen.Families))
	}
	if cfg.SubsetAag > cfg.NumAag {
		return errors.Wrapf(gen.ErrConfig, "subset wants %d aag instances of %d", cfg.SubsetAag, cfg.NumAag)
	}
	if cfg.SubsetDir == "" || cfg.OutDir == "" {
		return errors.Wrap(gen.ErrConfig, "empty directory name")
	}
	return nil
}

// Corpus lists the instance files of a generated corpus, relative
// paths rooted at Root, in generation order.
type Corpus struct {
	Root      string
	Bench     map[string][]string // family -> instances
	Aag       []string
	Flat      []string
	SubsetDir string
	Subset    []string
}

// Build generates a corpus under cfg.OutDir.  All randomness comes
// from one source seeded with cfg.Seed, consumed in a fixed order
// (families in gen.Families order, then aag instances), so the
// same config reproduces the same bytes.  Build fails if
// cfg.OutDir already exists.
func Build(cfg CorpusConfig, log logrus.FieldLogger) (*Corpus, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if e := cfg.check(); e != nil {
		return nil, e
	}
	if _, ste := os.Stat(cfg.OutDir); ste == nil {
		return nil, fmt.Errorf("corpus root %s already exists", cfg.OutDir)
	}
	c := &Corpus{
		Root:      cfg.OutDir,
		Bench:     make(map[string][]string, len(gen.Families)),
		SubsetDir: cfg.SubsetDir,
	}
	for _, d := range []string{dirBench, dirAag, dirFlat, cfg.SubsetDir} {
		if e := os.MkdirAll(filepath.Join(cfg.OutDir, d), 0755); e != nil {
			return nil, errors.Wrap(e, "creating corpus layout")
		}
	}

	r := rand.New(rand.NewSource(cfg.Seed))
	type inst struct {
		name string
		data []byte
	}
	var flat []inst

	for _, f := range gen.Families {
		fd := filepath.Join(cfg.OutDir, dirBench, f.String())
		if e := os.MkdirAll(fd, 0755); e != nil {
			return nil, errors.Wrap(e, "creating family dir")
		}
		for i := 0; i < cfg.NumBench; i++ {
			prefix := fmt.Sprintf("%s%d", f, i)
			circ, e := gen.RandC(r, f, cfg.Bench, prefix)
			if e != nil {
				return nil, errors.Wrapf(e, "family %s instance %d", f, i)
			}
			var buf bytes.Buffer
			if e := circ.Write(&buf); e != nil {
				return nil, errors.Wrapf(e, "family %s instance %d", f, i)
			}
			nm := fmt.Sprintf("%s_%04d.bench", f, i)
			if e := writeNew(filepath.Join(fd, nm), buf.Bytes()); e != nil {
				return nil, e
			}
			c.Bench[f.String()] = append(c.Bench[f.String()], filepath.Join(dirBench, f.String(), nm))
			flat = append(flat, inst{nm, buf.Bytes()})
		}
		log.WithFields(logrus.Fields{"family": f.String(), "n": cfg.NumBench}).Info("generated gate-list instances")
	}
	for i := 0; i < cfg.NumAag; i++ {
		g, e := gen.RandAig(r, cfg.Aag)
		if e != nil {
			return nil, errors.Wrapf(e, "aag instance %d", i)
		}
		var buf bytes.Buffer
		if e := g.WriteAscii(&buf); e != nil {
			return nil, errors.Wrapf(e, "aag instance %d", i)
		}
		nm := fmt.Sprintf("inst_%04d.aag", i)
		if e := writeNew(filepath.Join(cfg.OutDir, dirAag, nm), buf.Bytes()); e != nil {
			return nil, e
		}
		c.Aag = append(c.Aag, filepath.Join(dirAag, nm))
	}
	log.WithFields(logrus.Fields{"n": cfg.NumAag}).Info("generated aag instances")

	// derived views: flat copies of every gate-list instance, then
	// the fixed-size subset in generation order
	for _, in := range flat {
		if e := writeNew(filepath.Join(cfg.OutDir, dirFlat, in.name), in.data); e != nil {
			return nil, e
		}
		c.Flat = append(c.Flat, filepath.Join(dirFlat, in.name))
	}
	for i := 0; i < cfg.SubsetBench; i++ {
		nm := fmt.Sprintf("bench_%04d.bench", i)
		if e := writeNew(filepath.Join(cfg.OutDir, cfg.SubsetDir, nm), flat[i].data); e != nil {
			return nil, e
		}
		c.Subset = append(c.Subset, filepath.Join(cfg.SubsetDir, nm))
	}
	for i := 0; i < cfg.SubsetAag; i++ {
		data, e := os.ReadFile(filepath.Join(cfg.OutDir, c.Aag[i]))
		if e != nil {
			return nil, errors.Wrap(e, "reading aag instance for subset")
		}
		nm := fmt.Sprintf("aag_%04d.aag", i)
		if e := writeNew(filepath.Join(cfg.OutDir, cfg.SubsetDir, nm), data); e != nil {
			return nil, e
		}
		c.Subset = append(c.Subset, filepath.Join(cfg.SubsetDir, nm))
	}
	log.WithFields(logrus.Fields{
		"root":   cfg.OutDir,
		"flat":   len(c.Flat),
		"subset": len(c.Subset),
	}).Info("corpus complete")
	return c, nil
}

// OpenCorpus lists an existing corpus tree.
func OpenCorpus(root string) (*Corpus, error) {
	c := &Corpus{Root: root, Bench: make(map[string][]string)}
	fams, e := os.ReadDir(filepath.Join(root, dirBench))
	if e != nil {
		return nil, errors.Wrapf(e, "opening corpus %s", root)
	}
	for _, fd := range fams {
		if !fd.IsDir() {
			continue
		}
		insts, e := listDir(root, filepath.Join(dirBench, fd.Name()))
		if e != nil {
			return nil, e
		}
		c.Bench[fd.Name()] = insts
	}
	if c.Aag, e = listDir(root, dirAag); e != nil {
		return nil, e
	}
	if c.Flat, e = listDir(root, dirFlat); e != nil {
		return nil, e
	}
	subs, e := os.ReadDir(root)
	if e != nil {
		return nil, errors.Wrapf(e, "opening corpus %s", root)
	}
	var extra []string
	for _, d := range subs {
		if !d.IsDir() || d.Name() == dirBench || d.Name() == dirAag || d.Name() == dirFlat {
			continue
		}
		extra = append(extra, d.Name())
	}
	switch len(extra) {
	case 0:
	case 1:
		c.SubsetDir = extra[0]
		if c.Subset, e = listDir(root, extra[0]); e != nil {
			return nil, e
		}
	default:
		sort.Strings(extra)
		return nil, errors.Errorf("ambiguous subset directory in %s: %s", root, strings.Join(extra, ", "))
	}
	return c, nil
}

// Insts returns every instance of c: the per-family gate-list
// instances then the aag instances, in generation order.  Families
// not named by gen.Families follow in sorted order.
func (c *Corpus) Insts() []string {
	var res []string
	done := make(map[string]bool, len(c.Bench))
	for _, f := range gen.Families {
		if insts, ok := c.Bench[f.String()]; ok {
			res = append(res, insts...)
			done[f.String()] = true
		}
	}
	rest := make([]string, 0, len(c.Bench))
	for f := range c.Bench {
		if !done[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	for _, f := range rest {
		res = append(res, c.Bench[f]...)
	}
	res = append(res, c.Aag...)
	return res
}

func listDir(root, dir string) ([]string, error) {
	ents, e := os.ReadDir(filepath.Join(root, dir))
	if e != nil {
		return nil, errors.Wrapf(e, "listing %s", dir)
	}
	res := make([]string, 0, len(ents))
	for _, ent := range ents {
		if ent.IsDir() {
			continue
		}
		res = append(res, filepath.Join(dir, ent.Name()))
	}
	sort.Strings(res)
	return res, nil
}

// writeNew writes a whole serialized instance to a fresh file.
// Instances are immutable: an existing file is an error, not a
// truncate.
func writeNew(path string, data []byte) error {
	f, e := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if e != nil {
		return errors.Wrapf(e, "writing %s", path)
	}
	if _, e := f.Write(data); e != nil {
		f.Close()
		return errors.Wrapf(e, "writing %s", path)
	}
	return f.Close()
}

const (
	dirBench = "bench"
	dirAag   = "aag"
	dirFlat  = "flat"
)
