package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-m-twostay/ordset/Sets"
)

func TestParseOp(t *testing.T) {
	good := map[string]op{
		"insert:5":        {kind: opInsert, name: "insert", x: 5},
		"delete:-7":       {kind: opDelete, name: "delete", x: -7},
		"member:0":        {kind: opMember, name: "member"},
		"pred:2147483647": {kind: opPred, name: "pred", x: 2147483647},
		"rank:3":          {kind: opRank, name: "rank", x: 3},
		"select:4":        {kind: opSelect, name: "select", j: 4},
		"size":            {kind: opSize, name: "size"},
	}
	for s, want := range good {
		got, err := parseOp(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	for _, s := range []string{
		"", "push:1", "insert", "insert:", "insert:x", "insert:2147483648",
		"select:-1", "size:1", "rank:1.5",
	} {
		_, err := parseOp(s)
		assert.True(t, errors.Is(err, errBadOp), "%q gave %v", s, err)
	}
}

func TestReadScript(t *testing.T) {
	ss, err := readScript(strings.NewReader("insert:1  insert:2\n\trank:2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"insert:1", "insert:2", "rank:2"}, ss)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"ordset"}, args...))
	return out.String(), err
}

func TestRun(t *testing.T) {
	for _, name := range Sets.Backends() {
		out, err := run(t, "--backend", name, "run",
			"insert:1", "insert:5", "insert:2", "insert:1", "pred:5", "pred:1",
			"rank:4", "select:2", "select:3", "delete:5", "size")
		require.NoError(t, err, name)
		assert.Equal(t, "insert 1: true\ninsert 5: true\ninsert 2: true\ninsert 1: false\n"+
			"pred 5: 2\npred 1: none\nrank 4: 2\nselect 2: 5\nselect 3: none\n"+
			"delete 5: true\nsize: 2\n", out, name)
	}
}

func TestRun_Script(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(p, []byte("insert:3 insert:9\nmember:9\n"), 0o600))
	out, err := run(t, "run", "--script", p, "size")
	require.NoError(t, err)
	assert.Equal(t, "insert 3: true\ninsert 9: true\nmember 9: true\nsize: 2\n", out)
}

func TestRun_Errors(t *testing.T) {
	_, err := run(t, "run")
	assert.Error(t, err)
	_, err = run(t, "run", "insert:1", "jump:2")
	assert.True(t, errors.Is(err, errBadOp))
	_, err = run(t, "--backend", "splay", "run", "size")
	assert.True(t, errors.Is(err, Sets.ErrUnknownBackend))
	_, err = run(t, "run", "--script", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	for _, line := range []string{
		"size: 5", "member 3: true", "member 6: false", "pred 1: none", "pred 5: 4",
		"rank 1: 1", "rank 3: 3", "rank 6: 5", "select 0: 1", "select 3: 4",
		"select 4: 5", "delete 6: false", "delete 3: true", "select 2: 4", "size: 4",
	} {
		assert.Contains(t, out, line+"\n")
	}
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", "2", "1", "3", "3")
	require.NoError(t, err)
	assert.Equal(t, "2 (3)\n├── 1 (1)\n└── 3 (1)\n", out)

	out, err = run(t, "dump", "--bst", "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "1\n├── nil\n└── 2\n", out)

	_, err = run(t, "dump", "1", "two")
	assert.Error(t, err)
}

func TestBackendsCommand(t *testing.T) {
	out, err := run(t, "backends")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(Sets.Backends(), "\n")+"\n", out)
}

func TestBench(t *testing.T) {
	out, err := run(t, "--log-level", "error", "bench", "--n", "500", "--queries", "50", "--only", "ostree", "--only", "array")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "array"))
	assert.True(t, strings.HasPrefix(lines[2], "ostree"))

	out, err = run(t, "bench", "--n", "300", "--queries", "10", "--parallel")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(Sets.Backends())+1)
	for i, name := range Sets.Backends() {
		assert.True(t, strings.HasPrefix(lines[i+1], name), lines[i+1])
	}

	for _, name := range Sets.Backends() {
		res, err := bench(name, 300, 30, 1)
		require.NoError(t, err, name)
		assert.NotZero(t, res.size, name)
	}
}
