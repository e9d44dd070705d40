package cfr

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/pkg/errors"
)

// LoadTable reads a Table previously written with MarshalTo.
func LoadTable(r io.Reader) (*Table, error) {
	dec := gob.NewDecoder(r)
	var iter int64
	if err := dec.Decode(&iter); err != nil {
		return nil, errors.Wrap(err, "decode iter")
	}

	var nStates int64
	if err := dec.Decode(&nStates); err != nil {
		return nil, errors.Wrap(err, "decode number of states")
	}

	t := NewTable()
	if int(nStates) != t.Len() {
		return nil, errors.Errorf("snapshot has %d information states, expected %d",
			nStates, t.Len())
	}

	for i := int64(0); i < nStates; i++ {
		var s InfoState
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrapf(err, "decode information state %d", i)
		}

		dst, ok := t.Get(s.key)
		if !ok {
			return nil, errors.Errorf("snapshot has unknown information state: %v", s.key)
		}

		dst.Restore(s.regretSum, s.strategySum)
	}

	t.iter = int(iter)
	return t, nil
}

// MarshalTo writes a snapshot of the accumulated regrets and strategies to w.
func (t *Table) MarshalTo(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(int64(t.iter)); err != nil {
		return errors.Wrap(err, "encode iter")
	}

	if err := enc.Encode(int64(len(t.order))); err != nil {
		return errors.Wrap(err, "encode number of states")
	}

	for _, s := range t.order {
		if err := enc.Encode(s); err != nil {
			return errors.Wrapf(err, "encode information state %v", s.key)
		}
	}

	return nil
}

// GobDecode implements gob.GobDecoder.
func (s *InfoState) GobDecode(buf []byte) error {
	r := bytes.NewReader(buf)
	dec := gob.NewDecoder(r)

	if err := dec.Decode(&s.key); err != nil {
		return err
	}

	if err := dec.Decode(&s.regretSum); err != nil {
		return err
	}

	if err := dec.Decode(&s.strategySum); err != nil {
		return err
	}

	s.regretMatching()
	return nil
}

// GobEncode implements gob.GobEncoder.
func (s *InfoState) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(s.key); err != nil {
		return nil, err
	}

	if err := enc.Encode(s.regretSum); err != nil {
		return nil, err
	}

	if err := enc.Encode(s.strategySum); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
