package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// qget is a test helper that fails on storage errors.
func qget(t *testing.T, db ReadOnlyKVStore, key []byte) []byte {
	t.Helper()
	res, err := db.Get(key)
	require.NoError(t, err)
	return res
}

func qhas(t *testing.T, db ReadOnlyKVStore, key []byte) bool {
	t.Helper()
	res, err := db.Has(key)
	require.NoError(t, err)
	return res
}

// TestBTreeCacheGetSet does basic sanity checks on our cache.
//
// Other tests handle deletes, setting the same value, and iterating
// over ranges.
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and all
	// queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results that
	// are written to it
	k, v := []byte("french"), []byte("fry")
	assert.Nil(t, qget(t, base, k))
	assert.False(t, qhas(t, base, k))
	require.NoError(t, base.Set(k, v))
	assert.Equal(t, v, qget(t, base, k))
	assert.True(t, qhas(t, base, k))

	// now layer another btree on top and make sure that we get base
	// data
	cache := base.CacheWrap()
	assert.Equal(t, v, qget(t, cache, k))
	assert.True(t, qhas(t, cache, k))

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assert.Nil(t, qget(t, cache, k2))
	require.NoError(t, cache.Set(k2, v2))
	assert.Equal(t, v2, qget(t, cache, k2))
	assert.Nil(t, qget(t, base, k2))
	assert.True(t, qhas(t, cache, k2))
	assert.False(t, qhas(t, base, k2))

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assert.Equal(t, v, qget(t, base, k))
	assert.Equal(t, v2, qget(t, base, k2))

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	assert.Equal(t, v, qget(t, c2, k))
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	assert.Equal(t, v2, qget(t, c3, k2))
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assert.Nil(t, qget(t, base, k))
	assert.Equal(t, v2, qget(t, base, k2))
	assert.Nil(t, qget(t, base, k3))
}

// TestBTreeCacheConflicts checks that we can handle overwriting
// values and deleting underlying values.
func TestBTreeCacheConflicts(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}

	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := map[string]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model
	}{
		"overwrite one, delete another, add a third": {
			parentOps: []Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			childOps:  []Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			parentQueries: []Model{
				{Key: ks[1], Value: vs[1]},
				{Key: ks[2], Value: vs[2]},
				{Key: ks[3], Value: nil},
			},
			childQueries: []Model{
				{Key: ks[1], Value: vs[11]},
				{Key: ks[2], Value: nil},
				{Key: ks[3], Value: vs[7]},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent := devnull.CacheWrap()
			for _, op := range tc.parentOps {
				require.NoError(t, op.Apply(parent))
			}

			child := parent.CacheWrap()
			for _, op := range tc.childOps {
				require.NoError(t, op.Apply(child))
			}

			for _, q := range tc.parentQueries {
				assert.Equal(t, q.Value, qget(t, parent, q.Key))
			}
			for _, q := range tc.childQueries {
				assert.Equal(t, q.Value, qget(t, child, q.Key))
			}

			// write child and verify the parent sees the child state
			require.NoError(t, child.Write())
			for _, q := range tc.childQueries {
				assert.Equal(t, q.Value, qget(t, parent, q.Key))
			}
		})
	}
}

// TestBTreeIteration covers iterating over written and cached data,
// including shadowed deletes.
func TestBTreeIteration(t *testing.T) {
	base := MemStore()

	pairs := []Model{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
		{Key: []byte("c"), Value: []byte("3")},
		{Key: []byte("d"), Value: []byte("4")},
	}
	for _, p := range pairs {
		require.NoError(t, base.Set(p.Key, p.Value))
	}

	// full ascending iteration
	assert.Equal(t, pairs, collect(t, base, nil, nil, false))

	// reverse iteration
	rev := collect(t, base, nil, nil, true)
	require.Len(t, rev, len(pairs))
	for i := range pairs {
		assert.Equal(t, pairs[len(pairs)-1-i], rev[i])
	}

	// bounded iteration, end is exclusive
	assert.Equal(t, pairs[1:3], collect(t, base, []byte("b"), []byte("d"), false))

	// cache layer shadows a delete and adds a key
	cache := base.CacheWrap()
	require.NoError(t, cache.Delete([]byte("b")))
	require.NoError(t, cache.Set([]byte("e"), []byte("5")))
	want := []Model{pairs[0], pairs[2], pairs[3], {Key: []byte("e"), Value: []byte("5")}}
	assert.Equal(t, want, collect(t, cache, nil, nil, false))

	// base is untouched until write
	assert.Equal(t, pairs, collect(t, base, nil, nil, false))
	require.NoError(t, cache.Write())
	assert.Equal(t, want, collect(t, base, nil, nil, false))
}

func collect(t *testing.T, db ReadOnlyKVStore, start, end []byte, reverse bool) []Model {
	t.Helper()
	var (
		iter Iterator
		err  error
	)
	if reverse {
		iter, err = db.ReverseIterator(start, end)
	} else {
		iter, err = db.Iterator(start, end)
	}
	require.NoError(t, err)
	defer iter.Close()

	var res []Model
	for iter.Valid() {
		res = append(res, Model{
			Key:   append([]byte(nil), iter.Key()...),
			Value: append([]byte(nil), iter.Value()...),
		})
		require.NoError(t, iter.Next())
	}
	return res
}

// randKeys returns a slice of count distinct random byte slices of
// the given size, in sorted order.
func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = make([]byte, size)
		if _, err := rand.Read(res[i]); err != nil {
			panic(err)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return bytes.Compare(res[i], res[j]) < 0
	})
	return res
}
