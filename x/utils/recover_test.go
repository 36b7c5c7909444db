package utils

import (
	"context"
	"testing"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
)

type panicHandler struct{}

var _ trustbridge.Handler = panicHandler{}

func (panicHandler) Check(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.CheckResult, error) {
	panic("blown up in check")
}

func (panicHandler) Deliver(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.DeliverResult, error) {
	panic("blown up in deliver")
}

func TestRecovery(t *testing.T) {
	db := store.MemStore()
	stack := tbtest.Decorate(panicHandler{}, NewRecovery())

	_, err := stack.Deliver(context.Background(), db, &tbtest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = stack.Check(context.Background(), db, &tbtest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))
}
