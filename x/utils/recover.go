package utils

import (
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ trustbridge.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx, next trustbridge.Checker) (_ *trustbridge.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx trustbridge.Context, store trustbridge.KVStore, tx trustbridge.Tx, next trustbridge.Deliverer) (_ *trustbridge.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
