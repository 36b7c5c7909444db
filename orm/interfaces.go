/*
Package orm provides an easy to use db wrapper.

It breaks the state space into prefixed sections called Buckets. Each
bucket contains only one type of object and has a primary key index.
A Sequence produces unique ids within a bucket.
*/
package orm

import (
	"github.com/iov-one/trustbridge"
)

// Validater is an object that can be validated. The name is
// intentional (Validator already carries a consensus meaning).
type Validater interface {
	Validate() error
}

// Keyed is anything that can identify itself.
type Keyed interface {
	Key() []byte
	SetKey([]byte)
}

// Cloneable will create a new object that can be loaded into.
type Cloneable interface {
	Clone() Object
}

// Object is what is stored in the bucket.
// Key is joined with the bucket prefix to form the full db key.
// Value is the data stored.
//
// This can be a light wrapper around a protobuf-defined type.
type Object interface {
	Keyed
	Cloneable
	// Validate returns an error if the object is not in a valid state
	// to save to the db (eg. field missing, out of range, ...)
	Validater
	Value() trustbridge.Persistent
}

// CloneableData is an intelligent Value that can be embedded in a
// simple object to handle much of the details.
type CloneableData interface {
	Validater
	trustbridge.Persistent
	Copy() CloneableData
}

// Model is implemented by any entity that can be stored using
// ModelBucket. This is the same interface as CloneableData; using the
// right type name provides an easier to read API.
type Model interface {
	trustbridge.Persistent
	Validater
	Copy() CloneableData
}

// Reader defines an interface that allows reading objects from the
// db.
type Reader interface {
	Get(db trustbridge.ReadOnlyKVStore, key []byte) (Object, error)
}
