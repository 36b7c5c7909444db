package orm

import (
	"encoding/binary"

	"github.com/iov-one/trustbridge"
)

// Sequence maintains a counter, and generates a series of keys. Each
// key is greater than the last, both NextInt() as well as
// bytes.Compare() on NextVal().
//
// The sequence is zero based: the first value handed out is 0, and
// the persisted counter state is the number of values issued so far.
// A value, once issued, is never handed out again, even if the entity
// it identified was later deactivated.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter. Sequence is using the
// following pattern to construct a key:
//   _s.<bucket>:<name>
func NewSequence(bucket, name string) Sequence {
	id := "_s." + bucket + ":" + name
	return Sequence{
		id: []byte(id),
	}
}

// NextVal returns the next free value of the sequence as 8 bytes and
// advances the counter.
func (s *Sequence) NextVal(db trustbridge.KVStore) ([]byte, error) {
	val, err := s.increment(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt returns the next free value of the sequence as int64 and
// advances the counter.
func (s *Sequence) NextInt(db trustbridge.KVStore) (int64, error) {
	return s.increment(db)
}

// Latest returns the number of values issued so far. This method does
// not modify the sequence state. Use NextVal or NextInt to acquire a
// value that was not given to anyone else.
func (s *Sequence) Latest(db trustbridge.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	return DecodeSequence(raw), nil
}

func (s *Sequence) increment(db trustbridge.KVStore) (int64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, err
	}
	val := DecodeSequence(raw)
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, err
	}
	return val, nil
}

// DecodeSequence converts the stored counter state to int64. A nil
// value decodes to zero.
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence converts an int64 to its 8 byte representation.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}
