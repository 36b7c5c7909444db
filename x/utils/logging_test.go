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
	"github.com/tendermint/tendermint/libs/log"
)

func TestLoggingPassthrough(t *testing.T) {
	h := &tbtest.Handler{
		DeliverResult: trustbridge.DeliverResult{Log: "all good"},
	}
	stack := tbtest.Decorate(h, NewLogging())

	ctx := trustbridge.WithLogger(context.Background(), log.NewNopLogger())
	db := store.MemStore()

	res, err := stack.Deliver(ctx, db, &tbtest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, "all good", res.Log)
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestLoggingPassesError(t *testing.T) {
	boom := errors.Wrap(errors.ErrState, "boom")
	h := &tbtest.Handler{CheckErr: boom}
	stack := tbtest.Decorate(h, NewLogging())

	// no logger in the context, the nop default is used
	_, err := stack.Check(context.Background(), store.MemStore(), &tbtest.Tx{})
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, 1, h.CheckCallCount())
}
