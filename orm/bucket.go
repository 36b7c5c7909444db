package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
)

const (
	// SeqID is a constant to use to get a default ID sequence.
	SeqID = "id"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well as references
// to sequences.
//
// This is a generic building block that should generally be embedded
// in a type-safe wrapper to ensure all data is the same type.
// Bucket is a prefixed subspace of the DB; proto defines the default
// Model, all elements of this type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ trustbridge.QueryHandler = Bucket{}

// NewBucket creates a bucket to store data.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// Register registers this Bucket on the query router.
// You can define a name here for queries, which is different than
// the bucket name used to prefix the data.
func (b Bucket) Register(name string, r trustbridge.QueryRouter) {
	if name == "" {
		name = b.name
	}
	root := "/" + name
	r.Register(root, b)
}

// Query handles queries from the QueryRouter.
func (b Bucket) Query(db trustbridge.ReadOnlyKVStore, mod string, data []byte) ([]trustbridge.Model, error) {
	switch mod {
	case trustbridge.KeyQueryMod:
		key := b.DBKey(data)
		value, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if value == nil {
			return nil, nil
		}
		return []trustbridge.Model{{Key: key, Value: value}}, nil
	case trustbridge.PrefixQueryMod:
		prefix := b.DBKey(data)
		return queryPrefix(db, prefix)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %s", mod)
	}
}

// DBKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't want
// consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get one element.
func (b Bucket) Get(db trustbridge.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data (Model) and reconstructs the data
// this Bucket would return.
//
// Used internally as part of Get. It is exposed mainly as a test
// helper, but can work for any code that wants to parse.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrap(err, "cannot parse stored object")
	}
	obj.SetKey(key)
	return obj, nil
}

// Save will write a model, it must be of the same type as proto.
func (b Bucket) Save(db trustbridge.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrap(err, "invalid object")
	}

	bz, err := model.Value().Marshal()
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete will remove the value at a key.
func (b Bucket) Delete(db trustbridge.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Sequence returns a Sequence by name.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

// queryPrefix returns all models with the given key prefix, in
// ascending key order.
func queryPrefix(db trustbridge.ReadOnlyKVStore, prefix []byte) ([]trustbridge.Model, error) {
	iter, err := db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var res []trustbridge.Model
	for iter.Valid() {
		res = append(res, trustbridge.Model{
			Key:   append([]byte(nil), iter.Key()...),
			Value: append([]byte(nil), iter.Value()...),
		})
		if err := iter.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// prefixEnd returns the smallest key that is bigger than all keys
// with the given prefix. A nil result means unbounded.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	// all 0xff... no end
	return nil
}
