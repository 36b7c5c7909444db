package trustbridge

// ReadOnlyKVStore is a simple interface to read data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is
	// exclusive. Start must be less than end, or the Iterator is
	// invalid. A nil bound is interpreted as the edge of the domain.
	// CONTRACT: No writes may happen within a domain while an
	// iterator exists over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End
	// is exclusive. Start must be greater than end, or the Iterator
	// is invalid.
	// CONTRACT: No writes may happen within a domain while an
	// iterator exists over it.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is a minimal interface for writing. Both KVStore and
// Batch satisfy it.
type SetDeleter interface {
	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// KVStore is a simple interface to get/set data.
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but at least
// these are required.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that can write multiple ops atomically.
	NewBatch() Batch
}

/*
Iterator allows us to access a set of items within a range of keys.
These may all be preloaded, or loaded on demand.

  var iter Iterator = ...
  defer iter.Close()

  for ; iter.Valid(); err = iter.Next() {
    k, v := iter.Key(), iter.Value()
    // ...
  }
*/
type Iterator interface {
	// Valid returns whether the current position is valid.
	// Once invalid, an Iterator is forever invalid.
	Valid() bool

	// Next moves the iterator to the next sequential key in the
	// database, as defined by order of iteration.
	//
	// If Valid returns false, this method will panic.
	Next() error

	// Key returns the key of the cursor.
	// If Valid returns false, this method will panic.
	// CONTRACT: key readonly []byte
	Key() (key []byte)

	// Value returns the value of the cursor.
	// If Valid returns false, this method will panic.
	// CONTRACT: value readonly []byte
	Value() (value []byte)

	// Close releases the Iterator.
	Close()
}

// Batch can write multiple operations to be committed in one shot to
// the underlying store.
type Batch interface {
	SetDeleter
	Write() error
}

///////////////////////////////////////////////////////////
// Caching conditional execution
//
// These extend KVStore to allow grouping temporary writes which may
// be committed or discarded together. Like Postgresql SAVEPOINT /
// ROLLBACK TO SAVEPOINT.

// CacheableKVStore is a KVStore that supports CacheWrapping.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted data
// that we can view with all queries.
//
// At the end, call Write to use the cached data, or Discard to drop
// it.
type KVCacheWrap interface {
	// CacheableKVStore allows us to use this Cache recursively.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}

///////////////////////////////////////////////////////////
// Loading / committing data
//
// These reflect stores that can persist state to disk, load on start
// up, and maintain some history.

// CommitKVStore is a store that can persist the current state and
// later load it again.
type CommitKVStore interface {
	// Get returns the value at the last committed state.
	// Returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// LoadLatestVersion loads the latest persisted version. If there
	// was a crash during the last commit, it is guaranteed to return
	// a stable state, even if older.
	LoadLatestVersion() error

	// LatestVersion returns info on the latest version saved to disk.
	LatestVersion() CommitID

	// Commit the next version to disk, and returns info.
	Commit() (CommitID, error)

	// CacheWrap gives a savepoint to perform actions on top of the
	// committed state.
	CacheWrap() KVCacheWrap
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
