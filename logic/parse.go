// Copyright 2026 The Circgen Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Errors related to reading gate-list files.
var (
	ErrSyntax    = errors.New("gate-list syntax error")
	ErrDupOutput = errors.New("more than one OUTPUT line")
	ErrUndefined = errors.New("reference to undefined signal")
)

// Read parses a gate-list file.  The grammar is one statement per
// line: INPUT(name), name = OP(a[,b]), OUTPUT(name).  Blank lines
// and lines starting with '#' are skipped.  Exactly one OUTPUT
// statement is required; it may name any signal defined in the
// file.
func Read(r io.Reader) (*C, error) {
	c := NewC("n")
	sigs := make(map[string]Sig)
	outName := ""
	haveOut := false
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lno := 0
	for sc.Scan() {
		lno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		switch {
		case strings.HasPrefix(line, "INPUT("):
			nm, ok := argOf(line, "INPUT")
			if !ok {
				return nil, lineErr(lno, line)
			}
			if _, dup := sigs[nm]; dup {
				return nil, fmt.Errorf("line %d: input %q redefined: %w", lno, nm, ErrSyntax)
			}
			sigs[nm] = c.NewIn(nm)
		case strings.HasPrefix(line, "OUTPUT("):
			nm, ok := argOf(line, "OUTPUT")
			if !ok {
				return nil, lineErr(lno, line)
			}
			if haveOut {
				return nil, fmt.Errorf("line %d: %w", lno, ErrDupOutput)
			}
			outName, haveOut = nm, true
		default:
			nm, op, args, ok := gateOf(line)
			if !ok {
				return nil, lineErr(lno, line)
			}
			if _, dup := sigs[nm]; dup {
				return nil, fmt.Errorf("line %d: gate %q redefined: %w", lno, nm, ErrSyntax)
			}
			ss := make([]Sig, 0, 2)
			for _, a := range args {
				s, defined := sigs[a]
				if !defined {
					return nil, fmt.Errorf("line %d: operand %q: %w", lno, a, ErrUndefined)
				}
				ss = append(ss, s)
			}
			s, e := c.newGate(nm, op, ss...)
			if e != nil {
				return nil, fmt.Errorf("line %d: %w", lno, e)
			}
			sigs[nm] = s
		}
	}
	if e := sc.Err(); e != nil {
		return nil, e
	}
	if !haveOut {
		return nil, ErrNoOutput
	}
	s, defined := sigs[outName]
	if !defined {
		return nil, fmt.Errorf("output %q: %w", outName, ErrUndefined)
	}
	c.SetOutput(s)
	return c, nil
}

// argOf extracts name from "KW(name)".
func argOf(line, kw string) (string, bool) {
	if !strings.HasSuffix(line, ")") {
		return "", false
	}
	nm := strings.TrimSpace(line[len(kw)+1 : len(line)-1])
	return nm, nm != ""
}

// gateOf parses "name = OP(a[,b])".
func gateOf(line string) (string, Op, []string, bool) {
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", 0, nil, false
	}
	nm := strings.TrimSpace(line[:eq])
	rhs := strings.TrimSpace(line[eq+1:])
	open := strings.Index(rhs, "(")
	if nm == "" || open < 0 || !strings.HasSuffix(rhs, ")") {
		return "", 0, nil, false
	}
	op, ok := ParseOp(strings.TrimSpace(rhs[:open]))
	if !ok {
		return "", 0, nil, false
	}
	args := strings.Split(rhs[open+1:len(rhs)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
		if args[i] == "" {
			return "", 0, nil, false
		}
	}
	return nm, op, args, true
}

func lineErr(lno int, line string) error {
	return fmt.Errorf("line %d: %q: %w", lno, line, ErrSyntax)
}
