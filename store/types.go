//nolint
package store

import "github.com/iov-one/trustbridge"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = trustbridge.ReadOnlyKVStore
type KVStore = trustbridge.KVStore
type SetDeleter = trustbridge.SetDeleter
type Batch = trustbridge.Batch
type Iterator = trustbridge.Iterator
type CacheableKVStore = trustbridge.CacheableKVStore
type KVCacheWrap = trustbridge.KVCacheWrap
type CommitKVStore = trustbridge.CommitKVStore
type CommitID = trustbridge.CommitID
type Model = trustbridge.Model
