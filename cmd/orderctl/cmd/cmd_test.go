package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempBook(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "book.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadCmdPrintsParsedBook(t *testing.T) {
	path := writeTempBook(t, "a; a1; 3; 10\na; a2; 4; 11\nb; b1; 5; 9")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"load", "--file", path})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "ask")
	require.Contains(t, out.String(), "bid")
}

func TestLoadCmdRejectsUnknownSideToken(t *testing.T) {
	path := writeTempBook(t, "x; a1; 3; 10")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"load", "--file", path})

	require.Error(t, root.Execute())
}

func TestMatchCmdReportsTrades(t *testing.T) {
	path := writeTempBook(t, "a; a1; 5; 10\nb; b1; 5; 10")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"match", "--file", path})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "buy: b1")
}

func TestBenchCmdRunsEveryEngine(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"bench", "--orders", "100", "--ticks", "20"})

	require.NoError(t, root.Execute())
	for _, name := range []string{"deque", "btree", "skiplist", "heap"} {
		require.Contains(t, out.String(), name)
	}
}
