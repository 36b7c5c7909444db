/*
Package iavl provides a durable CommitKVStore backed by a merkle
tree. Every Commit persists a new hashed version, so the registry
state survives restarts and a crash during commit falls back to the
last stable version on load.
*/
package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/iov-one/trustbridge/store"
)

// amount of versions to cache in memory
const cacheSize = 10000

// CommitStore manages an iavl committed state.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with leveldb disk backing. The
// database is named after name and placed inside the given directory.
func NewCommitStore(dir, name string) (CommitStore, error) {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		return CommitStore{}, err
	}
	tree := iavl.NewMutableTree(db, cacheSize)
	return CommitStore{tree: tree}, nil
}

// MockCommitStore returns a store with an in-memory backing, useful
// for tests. All versioning works as with the disk variant, but
// nothing survives the process.
func MockCommitStore() CommitStore {
	tree := iavl.NewMutableTree(dbm.NewMemDB(), cacheSize)
	return CommitStore{tree: tree}
}

// Get returns the value at the last committed state.
// Returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	version := s.tree.Version()
	_, val := s.tree.GetVersioned(key, version)
	return val, nil
}

// Commit persists the working tree as the next version and returns
// its id.
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, err
	}
	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was
// a crash during the last commit, it is guaranteed to return a stable
// state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	return err
}

// LatestVersion returns info on the latest version saved to disk.
func (s CommitStore) LatestVersion() store.CommitID {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}
}

// CacheWrap gives us a savepoint to perform actions on the working
// tree. Write moves the changes into the working tree; they become
// durable on the next Commit.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	w := treeWriter{tree: s.tree}
	return store.NewBTreeCacheWrap(w, store.NewNonAtomicBatch(w), nil)
}

// treeWriter exposes the mutable working tree as a KVStore, so the
// generic btree cache wrap can layer on top of it.
type treeWriter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeWriter{}

// Get reads from the working tree.
func (w treeWriter) Get(key []byte) ([]byte, error) {
	_, val := w.tree.Get(key)
	return val, nil
}

// Has checks the working tree.
func (w treeWriter) Has(key []byte) (bool, error) {
	return w.tree.Has(key), nil
}

// Set writes to the working tree.
func (w treeWriter) Set(key, value []byte) error {
	w.tree.Set(key, value)
	return nil
}

// Delete removes from the working tree.
func (w treeWriter) Delete(key []byte) error {
	w.tree.Remove(key)
	return nil
}

// Iterator over a domain of keys in ascending order. The result is
// materialized, as the underlying tree does not expose a cursor.
func (w treeWriter) Iterator(start, end []byte) (store.Iterator, error) {
	var res []store.Model
	w.tree.IterateRange(start, end, true, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res), nil
}

// ReverseIterator over a domain of keys in descending order.
func (w treeWriter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	var res []store.Model
	w.tree.IterateRange(start, end, false, func(key, value []byte) bool {
		res = append(res, store.Model{Key: key, Value: value})
		return false
	})
	return store.NewSliceIterator(res), nil
}

// NewBatch returns a batch that writes to the working tree.
func (w treeWriter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(w)
}
