package utils

import (
	"context"
	"testing"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHandler writes the key, value pair and returns the error (may be nil)
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ trustbridge.Handler = writeHandler{}

func (h writeHandler) Check(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &trustbridge.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &trustbridge.DeliverResult{}, h.err
}

func has(t *testing.T, db trustbridge.ReadOnlyKVStore, key []byte) bool {
	t.Helper()
	ok, err := db.Has(key)
	require.NoError(t, err)
	return ok
}

func TestSavepointDeliverCommit(t *testing.T) {
	db := store.MemStore()
	h := writeHandler{key: []byte("a"), value: []byte("1")}
	stack := tbtest.Decorate(h, NewSavepoint().OnDeliver())

	_, err := stack.Deliver(context.Background(), db, &tbtest.Tx{})
	require.NoError(t, err)
	assert.True(t, has(t, db, []byte("a")))
}

func TestSavepointDeliverDiscardOnError(t *testing.T) {
	db := store.MemStore()
	boom := errors.Wrap(errors.ErrState, "boom")
	h := writeHandler{key: []byte("a"), value: []byte("1"), err: boom}
	stack := tbtest.Decorate(h, NewSavepoint().OnDeliver())

	_, err := stack.Deliver(context.Background(), db, &tbtest.Tx{})
	assert.Error(t, err)

	// the partial write is rolled back
	assert.False(t, has(t, db, []byte("a")))
}

func TestSavepointCheckDiscardOnError(t *testing.T) {
	db := store.MemStore()
	boom := errors.Wrap(errors.ErrState, "boom")
	h := writeHandler{key: []byte("a"), value: []byte("1"), err: boom}
	stack := tbtest.Decorate(h, NewSavepoint().OnCheck())

	_, err := stack.Check(context.Background(), db, &tbtest.Tx{})
	assert.Error(t, err)
	assert.False(t, has(t, db, []byte("a")))
}

func TestSavepointInactive(t *testing.T) {
	db := store.MemStore()
	boom := errors.Wrap(errors.ErrState, "boom")
	h := writeHandler{key: []byte("a"), value: []byte("1"), err: boom}
	// deliver-only savepoint does not isolate checks
	stack := tbtest.Decorate(h, NewSavepoint().OnDeliver())

	_, err := stack.Check(context.Background(), db, &tbtest.Tx{})
	assert.Error(t, err)
	assert.True(t, has(t, db, []byte("a")))
}
