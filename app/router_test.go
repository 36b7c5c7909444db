package app

import (
	"context"
	"testing"

	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	good := &tbtest.Handler{}
	r.Handle("test/good", good)

	assert.NotNil(t, r.Handler("test/good"))
	assert.Nil(t, r.Handler("test/missing"))

	db := store.MemStore()
	tx := &tbtest.Tx{Msg: &tbtest.Msg{RoutePath: "test/good"}}
	_, err := r.Deliver(context.Background(), db, tx)
	require.NoError(t, err)
	_, err = r.Check(context.Background(), db, tx)
	require.NoError(t, err)
	assert.Equal(t, 2, good.CallCount())

	// unknown path
	bad := &tbtest.Tx{Msg: &tbtest.Msg{RoutePath: "test/missing"}}
	_, err = r.Deliver(context.Background(), db, bad)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", &tbtest.Handler{})

	// duplicate registration
	assert.Panics(t, func() { r.Handle("test/good", &tbtest.Handler{}) })
	// malformed paths
	assert.Panics(t, func() { r.Handle("nopath", &tbtest.Handler{}) })
	assert.Panics(t, func() { r.Handle("UPPER/case", &tbtest.Handler{}) })
}
