package utils

import (
	"context"
	"testing"

	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionTagger(t *testing.T) {
	db := store.MemStore()
	h := &tbtest.Handler{}
	stack := tbtest.Decorate(h, NewActionTagger())
	tx := &tbtest.Tx{Msg: &tbtest.Msg{RoutePath: "escrow/create"}}

	res, err := stack.Deliver(context.Background(), db, tx)
	require.NoError(t, err)
	require.Len(t, res.Tags, 1)
	assert.Equal(t, ActionKey, string(res.Tags[0].Key))
	assert.Equal(t, "escrow/create", string(res.Tags[0].Value))

	// check adds no tags
	cres, err := stack.Check(context.Background(), db, tx)
	require.NoError(t, err)
	assert.NotNil(t, cres)
}

func TestActionTaggerErrorPassthrough(t *testing.T) {
	db := store.MemStore()
	boom := errors.Wrap(errors.ErrState, "boom")
	h := &tbtest.Handler{DeliverErr: boom}
	stack := tbtest.Decorate(h, NewActionTagger())
	tx := &tbtest.Tx{Msg: &tbtest.Msg{RoutePath: "escrow/release"}}

	_, err := stack.Deliver(context.Background(), db, tx)
	assert.Error(t, err)
}
