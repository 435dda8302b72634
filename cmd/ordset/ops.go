package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/ordset/Sets"
)

var errBadOp = errors.New("bad operation")

type opKind uint8

const (
	opInsert opKind = iota
	opDelete
	opMember
	opPred
	opRank
	opSelect
	opSize
)

var opNames = map[string]opKind{
	"insert": opInsert,
	"delete": opDelete,
	"member": opMember,
	"pred":   opPred,
	"rank":   opRank,
	"select": opSelect,
	"size":   opSize,
}

// op is one parsed operation. x is the value argument, j the position of
// select.
type op struct {
	kind opKind
	name string
	x    int32
	j    uint
}

// parseOp reads "name:arg", or "size" which takes no argument.
func parseOp(s string) (op, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	kind, ok := opNames[name]
	if !ok {
		return op{}, fmt.Errorf("%w %q: unknown name %q", errBadOp, s, name)
	}
	o := op{kind: kind, name: name}
	switch {
	case kind == opSize:
		if hasArg {
			return op{}, fmt.Errorf("%w %q: size takes no argument", errBadOp, s)
		}
	case !hasArg:
		return op{}, fmt.Errorf("%w %q: missing argument", errBadOp, s)
	case kind == opSelect:
		j, err := strconv.ParseUint(arg, 10, 0)
		if err != nil {
			return op{}, fmt.Errorf("%w %q: %w", errBadOp, s, err)
		}
		o.j = uint(j)
	default:
		x, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return op{}, fmt.Errorf("%w %q: %w", errBadOp, s, err)
		}
		o.x = int32(x)
	}
	return o, nil
}

// parseOps parses all of ss and stops at the first bad one.
func parseOps(ss []string) ([]op, error) {
	ops := make([]op, 0, len(ss))
	for _, s := range ss {
		o, err := parseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

// readScript splits r into whitespace separated operations.
func readScript(r io.Reader) ([]string, error) {
	var ss []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		ss = append(ss, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ss, nil
}

// apply o to s and describe the outcome in one line.
func apply(s Sets.Set, o op) string {
	switch o.kind {
	case opInsert:
		return fmt.Sprintf("insert %d: %t", o.x, s.Insert(o.x))
	case opDelete:
		return fmt.Sprintf("delete %d: %t", o.x, s.Delete(o.x))
	case opMember:
		return fmt.Sprintf("member %d: %t", o.x, s.Member(o.x))
	case opPred:
		return "pred " + strconv.FormatInt(int64(o.x), 10) + ": " + optional(s.Predecessor(o.x))
	case opRank:
		return fmt.Sprintf("rank %d: %d", o.x, s.Rank(o.x))
	case opSelect:
		return "select " + strconv.FormatUint(uint64(o.j), 10) + ": " + optional(s.Select(o.j))
	default:
		return fmt.Sprintf("size: %d", s.Size())
	}
}

func optional(v int32, ok bool) string {
	if !ok {
		return "none"
	}
	return strconv.FormatInt(int64(v), 10)
}
