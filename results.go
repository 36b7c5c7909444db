package trustbridge

import (
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult captures any non-error abci result to make sure people
// use error for error cases.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the maximum units of work we allow this tx to
	// perform.
	GasAllocated int64
}

// NewCheck sets the gas used and the response data but no more info.
// These are the most common info needed to be set by the Handler.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

// DeliverResult captures any non-error abci result to make sure
// people use error for error cases.
//
// Tags are the emitted events: fire-and-forget observability data
// published by the host after a successful delivery. Handlers never
// read them back.
type DeliverResult struct {
	Data []byte
	Log  string
	Tags []common.KVPair
}
