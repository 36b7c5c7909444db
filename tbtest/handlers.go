package tbtest

import "github.com/iov-one/trustbridge"

// Handler is a mock implementation of the trustbridge.Handler
// interface. Each method call is counted.
type Handler struct {
	checkCall   int
	CheckResult trustbridge.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult trustbridge.DeliverResult
	DeliverErr    error
}

var _ trustbridge.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.CheckResult, error) {
	h.checkCall++
	return &h.CheckResult, h.CheckErr
}

func (h *Handler) Deliver(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.DeliverResult, error) {
	h.deliverCall++
	return &h.DeliverResult, h.DeliverErr
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}

// Decorator is a mock implementation of the trustbridge.Decorator
// interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding
// method. If error attributes are not set then the wrapped handler
// method is called and its result returned.
// Each method call is counted. Regardless of the method call result
// the counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error
}

var _ trustbridge.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx, next trustbridge.Checker) (*trustbridge.CheckResult, error) {
	d.checkCall++

	if d.CheckErr != nil {
		return &trustbridge.CheckResult{}, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx, next trustbridge.Deliverer) (*trustbridge.DeliverResult, error) {
	d.deliverCall++

	if d.DeliverErr != nil {
		return &trustbridge.DeliverResult{}, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}

// Decorate wraps the handler with a single decorator and returns them
// as a combined handler.
func Decorate(h trustbridge.Handler, d trustbridge.Decorator) trustbridge.Handler {
	return &decoratedHandler{hn: h, dc: d}
}

type decoratedHandler struct {
	hn trustbridge.Handler
	dc trustbridge.Decorator
}

var _ trustbridge.Handler = (*decoratedHandler)(nil)

func (d *decoratedHandler) Check(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.CheckResult, error) {
	return d.dc.Check(ctx, db, tx, d.hn)
}

func (d *decoratedHandler) Deliver(ctx trustbridge.Context, db trustbridge.KVStore, tx trustbridge.Tx) (*trustbridge.DeliverResult, error) {
	return d.dc.Deliver(ctx, db, tx, d.hn)
}
