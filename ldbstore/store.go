package ldbstore

import (
	"encoding/binary"
	"math"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/majkelelele/kuhncfr"
	"github.com/majkelelele/kuhncfr/kuhn"
)

const (
	regretPrefix      = "rs:"
	strategySumPrefix = "ss:"
	iterKey           = "meta:iter"
	runIDKey          = "meta:run_id"
)

// Store persists snapshots of a cfr.Table. Each Save overwrites the
// previous snapshot.
type Store struct {
	path  string
	runID uuid.UUID

	db    *leveldb.DB
	rOpts *opt.ReadOptions
	wOpts *opt.WriteOptions
}

// Open opens (or creates) the LevelDB database at the given path.
// A new database is assigned a random run id.
func Open(path string, opts *opt.Options) (*Store, error) {
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb at %s", path)
	}

	s := &Store{
		path:  path,
		db:    db,
		wOpts: &opt.WriteOptions{Sync: true},
	}

	if err := s.initRunID(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) initRunID() error {
	buf, err := s.db.Get([]byte(runIDKey), s.rOpts)
	if err == leveldb.ErrNotFound {
		s.runID = uuid.New()
		err = s.db.Put([]byte(runIDKey), []byte(s.runID.String()), s.wOpts)
		return errors.Wrap(err, "put run id")
	} else if err != nil {
		return errors.Wrap(err, "get run id")
	}

	s.runID, err = uuid.ParseBytes(buf)
	return errors.Wrapf(err, "invalid run id %q", buf)
}

// RunID identifies the training run that owns this database.
func (s *Store) RunID() uuid.UUID {
	return s.runID
}

// Close implements io.Closer.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes the sums of every information state in the table, and the
// number of iterations trained, in a single batch.
func (s *Store) Save(table *cfr.Table) error {
	batch := new(leveldb.Batch)
	for _, st := range table.States() {
		key := st.Key().String()
		regretSum := st.RegretSum()
		batch.Put([]byte(regretPrefix+key), encodeF64s(regretSum[:]))
		strategySum := st.StrategySum()
		batch.Put([]byte(strategySumPrefix+key), encodeF64s(strategySum[:]))
	}

	iter := make([]byte, 8)
	binary.LittleEndian.PutUint64(iter, uint64(table.Iter()))
	batch.Put([]byte(iterKey), iter)

	if err := s.db.Write(batch, s.wOpts); err != nil {
		return errors.Wrapf(err, "write checkpoint to %s", s.path)
	}

	glog.V(1).Infof("Saved %d information states at iter %d to %s (run %s)",
		table.Len(), table.Iter(), s.path, s.runID)
	return nil
}

// Load restores the most recent snapshot into a new Table. It returns
// false if nothing has been saved yet.
func (s *Store) Load() (*cfr.Table, bool, error) {
	buf, err := s.db.Get([]byte(iterKey), s.rOpts)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	} else if err != nil {
		return nil, false, errors.Wrap(err, "get iter")
	} else if len(buf) != 8 {
		return nil, false, errors.Errorf("invalid encoded iter has len %d", len(buf))
	}

	table := cfr.NewTable()
	table.SetIter(int(binary.LittleEndian.Uint64(buf)))
	for _, st := range table.States() {
		key := st.Key().String()
		regretSum, err := s.getSums(regretPrefix + key)
		if err != nil {
			return nil, false, err
		}

		strategySum, err := s.getSums(strategySumPrefix + key)
		if err != nil {
			return nil, false, err
		}

		st.Restore(regretSum, strategySum)
	}

	glog.V(1).Infof("Loaded %d information states at iter %d from %s (run %s)",
		table.Len(), table.Iter(), s.path, s.runID)
	return table, true, nil
}

func (s *Store) getSums(key string) ([kuhn.NumActions]float64, error) {
	var result [kuhn.NumActions]float64
	buf, err := s.db.Get([]byte(key), s.rOpts)
	if err != nil {
		return result, errors.Wrapf(err, "get %s", key)
	}

	v, err := decodeF64s(buf)
	if err != nil {
		return result, errors.Wrapf(err, "decode %s", key)
	}

	if len(v) != kuhn.NumActions {
		return result, errors.Errorf("%s has %d actions, expected %d", key, len(v), kuhn.NumActions)
	}

	copy(result[:], v)
	return result, nil
}

func encodeF64s(v []float64) []byte {
	result := make([]byte, 8*len(v))
	for i, x := range v {
		bits := math.Float64bits(x)
		binary.LittleEndian.PutUint64(result[8*i:8*(i+1)], bits)
	}

	return result
}

func decodeF64s(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, errors.Errorf("invalid encoded buffer of floats has len %d", len(buf))
	}

	n := len(buf) / 8
	result := make([]float64, n)
	for i := range result {
		bits := binary.LittleEndian.Uint64(buf[8*i : 8*(i+1)])
		result[i] = math.Float64frombits(bits)
	}

	return result, nil
}
