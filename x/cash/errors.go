package cash

import "github.com/iov-one/trustbridge/errors"

// ABCI Response Codes
// cash takes 1020-1029
var (
	// ErrInsufficientFunds is returned when the source cannot cover a
	// transfer. A source without a wallet cannot cover anything.
	ErrInsufficientFunds = errors.Register(1020, "insufficient funds")
)
