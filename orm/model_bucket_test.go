package orm

import (
	"testing"

	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	require.NoError(t, b.Put(db, []byte("c1"), &counter{Count: 1}))

	var c counter
	require.NoError(t, b.One(db, []byte("c1"), &c))
	assert.Equal(t, int64(1), c.Count)

	err := b.One(db, []byte("unknown"), &c)
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, b.Delete(db, []byte("c1")))
	err = b.Delete(db, []byte("c1"))
	assert.True(t, errors.ErrNotFound.Is(err))

	err = b.Has(db, []byte("c1"))
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestModelBucketPutValidates(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Put(db, []byte("c1"), &counter{Count: -1})
	assert.Error(t, err)

	err = b.Put(db, nil, &counter{Count: 1})
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestModelBucketHasNilKey(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	err := b.Has(db, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
}
