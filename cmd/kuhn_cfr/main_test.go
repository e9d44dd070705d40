package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/majkelelele/kuhncfr/internal/config"
	"github.com/majkelelele/kuhncfr/ldbstore"
)

func TestRun_ResumesFromCheckpoint(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "kuhn-cfr-")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	cfg := config.Default()
	cfg.Iterations = 200
	cfg.CheckpointDB = tmpDir
	cfg.SimulateGames = 100

	var buf bytes.Buffer
	require.NoError(t, run(cfg, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 12)

	require.NoError(t, run(cfg, ioutil.Discard))

	store, err := ldbstore.Open(tmpDir, &opt.Options{ErrorIfMissing: true})
	require.NoError(t, err)
	defer store.Close()

	table, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 400, table.Iter())
}

func TestRun_ClosesStoreOnError(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "kuhn-cfr-")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	cfg := config.Default()
	cfg.Iterations = 0
	cfg.CheckpointDB = tmpDir
	assert.Error(t, run(cfg, ioutil.Discard))

	// LevelDB holds an exclusive lock until the store is closed.
	store, err := ldbstore.Open(tmpDir, &opt.Options{})
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
