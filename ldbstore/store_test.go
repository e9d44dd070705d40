package ldbstore

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/majkelelele/kuhncfr"
)

func TestSaveLoad(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "cfr-test-")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	store, err := Open(tmpDir, &opt.Options{})
	require.NoError(t, err)
	runID := store.RunID()

	_, ok, err := store.Load()
	require.NoError(t, err)
	assert.False(t, ok, "empty store should have no checkpoint")

	trainer, err := cfr.NewTrainer(cfr.Params{Iterations: 1000, Seed: 7})
	require.NoError(t, err)
	trainer.Train()
	require.NoError(t, store.Save(trainer.Table()))
	require.NoError(t, store.Close())

	store, err = Open(tmpDir, &opt.Options{ErrorIfMissing: true})
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, runID, store.RunID())

	table, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1000, table.Iter())

	expected := trainer.Table().States()
	for i, st := range table.States() {
		assert.Equal(t, expected[i].Key(), st.Key())
		assert.Equal(t, expected[i].RegretSum(), st.RegretSum(), "%v", st.Key())
		assert.Equal(t, expected[i].StrategySum(), st.StrategySum(), "%v", st.Key())
		assert.Equal(t, expected[i].Strategy(), st.Strategy(), "%v", st.Key())
	}
}

func TestResume(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "cfr-test-")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	store, err := Open(tmpDir, &opt.Options{})
	require.NoError(t, err)
	defer store.Close()

	params := cfr.Params{Iterations: 500, Seed: 11}
	trainer, err := cfr.NewTrainer(params)
	require.NoError(t, err)
	trainer.Train()
	require.NoError(t, store.Save(trainer.Table()))

	table, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)

	resumed, err := cfr.NewTrainerWithTable(params, table)
	require.NoError(t, err)
	resumed.Train()
	assert.Equal(t, 1000, resumed.Iter())
	require.NoError(t, store.Save(resumed.Table()))

	table, ok, err = store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1000, table.Iter())
}

func TestDecodeF64s(t *testing.T) {
	v := []float64{-1.5, 0, 3.25}
	decoded, err := decodeF64s(encodeF64s(v))
	require.NoError(t, err)
	assert.Equal(t, v, decoded)

	_, err = decodeF64s([]byte{1, 2, 3})
	assert.Error(t, err)
}

func BenchmarkSave(b *testing.B) {
	tmpDir, err := ioutil.TempDir("", "cfr-test-")
	if err != nil {
		b.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := Open(tmpDir, &opt.Options{})
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()

	table := cfr.NewTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := store.Save(table); err != nil {
			b.Fatal(err)
		}
	}
}
