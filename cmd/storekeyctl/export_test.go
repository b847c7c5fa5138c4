package main

import (
	"bufio"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stalwartlabs/storekey/memkv"
)

func TestSeedEngineParsesHexLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.hex")
	content := "# comment\n\n" + hex.EncodeToString([]byte("k1")) + " " + hex.EncodeToString([]byte("v1")) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	eng := memkv.NewEngine(nil)
	n, err := seedEngine(eng, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	v, ok := eng.Get([]byte("k1"))
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), v)
}

func TestSeedEngineRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.hex")
	require.NoError(t, os.WriteFile(path, []byte("not-a-valid-line\n"), 0o644))

	_, err := seedEngine(memkv.NewEngine(nil), path)
	assert.Error(t, err)
}

func TestWriteExportUncompressedRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dump")
	out, err := os.Create(path)
	require.NoError(t, err)

	rows := []memkv.KV{{Key: []byte("a"), Value: []byte("1")}, {Key: []byte("b"), Value: []byte("2")}}
	require.NoError(t, writeExport(out, rows, false))
	out.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, hex.EncodeToString([]byte("a"))+" "+hex.EncodeToString([]byte("1")), lines[0])
}

func TestWriteChunkedExportSplitsAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "snapshot.dump")

	rows := []memkv.KV{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("3")},
		{Key: []byte("d"), Value: []byte("4")},
	}
	require.NoError(t, writeChunkedExport(base, rows, 2, false))

	for _, path := range []string{base, base + ".1"} {
		_, err := os.Stat(path)
		assert.NoError(t, err, "expected chunk file %s to exist", path)
	}
	_, err := os.Stat(base + ".2")
	assert.True(t, os.IsNotExist(err))

	first, err := os.ReadFile(base)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(first)), "\n"), 2)
}

func TestWriteExportCompressedIsReadableByZstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.zst")
	out, err := os.Create(path)
	require.NoError(t, err)

	rows := []memkv.KV{{Key: []byte("a"), Value: []byte("1")}}
	require.NoError(t, writeExport(out, rows, true))
	out.Close()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()

	scanner := bufio.NewScanner(dec)
	require.True(t, scanner.Scan())
	assert.Equal(t, hex.EncodeToString([]byte("a"))+" "+hex.EncodeToString([]byte("1")), scanner.Text())
}
