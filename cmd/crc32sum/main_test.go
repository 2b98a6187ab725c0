package main

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOutput(&out)
	cmd.SetArgs(append([]string{"--quiet"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "crc32sum")
	require.NoError(t, err)
	return dir
}

func TestSumAndCheck(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	digits := filepath.Join(dir, "digits")
	empty := filepath.Join(dir, "empty file")
	require.NoError(t, ioutil.WriteFile(digits, []byte("123456789"), 0644))
	require.NoError(t, ioutil.WriteFile(empty, nil, 0644))

	out, err := run(t, "sum", digits, empty)
	require.NoError(t, err)
	want := fmt.Sprintf("cbf43926  9  %s\n00000000  0  %s\n", digits, empty)
	require.Equal(t, want, out)

	list := filepath.Join(dir, "SUMS")
	require.NoError(t, ioutil.WriteFile(list, []byte(out), 0644))
	out, err = run(t, "check", list)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%s: OK\n%s: OK\n", digits, empty), out)

	require.NoError(t, ioutil.WriteFile(digits, []byte("123456780"), 0644))
	out, err = run(t, "check", list)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(out, digits+": FAILED\n"))
}

func TestSumHuman(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	big := filepath.Join(dir, "big")
	content := bytes.Repeat([]byte("k"), 3*1024)
	require.NoError(t, ioutil.WriteFile(big, content, 0644))

	out, err := run(t, "sum", "--human", big)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%08x  3.0 KiB  %s\n", crc32.ChecksumIEEE(content), big), out)

	list := filepath.Join(dir, "SUMS")
	require.NoError(t, ioutil.WriteFile(list, []byte(out), 0644))
	out, err = run(t, "check", list)
	require.NoError(t, err)
	require.Equal(t, big+": OK\n", out)
}

func TestParseSumLine(t *testing.T) {
	line, err := parseSumLine("cbf43926  9  name with  spaces")
	require.NoError(t, err)
	require.Equal(t, sumLine{sum: 0xcbf43926, size: 9, name: "name with  spaces"}, line)

	line, err = parseSumLine("cbf43926  1.5 MiB  name")
	require.NoError(t, err)
	require.Equal(t, int64(-1), line.size)

	for _, bad := range []string{"cbf43926 9 name", "zzzzzzzz  9  name", "cbf43926  -1  name", "cbf43926  lots  name", "cbf43926  9  "} {
		_, err := parseSumLine(bad)
		require.Error(t, err, bad)
	}
}

func TestCheckMalformed(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	list := filepath.Join(dir, "SUMS")
	require.NoError(t, ioutil.WriteFile(list, []byte("xyz  9  name\n"), 0644))
	_, err := run(t, "check", list)
	require.Error(t, err)
}

func TestSealUnseal(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	content := bytes.Repeat([]byte("sealed content "), 20000)
	in := filepath.Join(dir, "in")
	sealed := filepath.Join(dir, "in.sealed")
	out := filepath.Join(dir, "out")
	require.NoError(t, ioutil.WriteFile(in, content, 0644))

	_, err := run(t, "seal", "--block-size", "4096", in, sealed)
	require.NoError(t, err)
	_, err = run(t, "unseal", "--block-size", "4096", "--paranoid", sealed, out)
	require.NoError(t, err)
	got, err := ioutil.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.Equal(content, got))

	_, err = run(t, "seal", "--compression", "lz4", in, sealed)
	require.Error(t, err)
}
