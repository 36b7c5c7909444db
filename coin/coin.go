package coin

import (
	"regexp"

	"github.com/iov-one/trustbridge/errors"
)

// IsCC validates a currency code: 3 or 4 upper case letters.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxInt is the upper bound for the whole part of a coin.
	MaxInt int64 = 999999999999999 // 10^15-1
	// MinInt is the lower bound for the whole part of a coin.
	MinInt = -MaxInt

	// FracUnit is the number of fractional units in one whole unit.
	FracUnit int64 = 1000000000 // 10^9
	// MaxFrac is the upper bound for the fractional part of a coin.
	MaxFrac = FracUnit - 1
	// MinFrac is the lower bound for the fractional part of a coin.
	MinFrac = -MaxFrac
)

// NewCoin returns a coin value.
func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{
		Whole:      whole,
		Fractional: fractional,
		Ticker:     ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// ID returns the ticker of this coin.
func (c Coin) ID() string {
	return c.Ticker
}

// Add returns the sum of both coins, normalized. A zero value without
// a ticker acts as the neutral element. Mixing two currencies is an
// error, as is a sum that leaves the permitted range.
func (c Coin) Add(o Coin) (Coin, error) {
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		err := errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
		return Coin{}, err
	}

	c.Whole += o.Whole
	c.Fractional += o.Fractional
	return c.normalize()
}

// Negative returns the coin with the opposite sign, so that
// c.Add(c.Negative()) is zero.
func (c Coin) Negative() Coin {
	return Coin{
		Ticker:     c.Ticker,
		Whole:      -1 * c.Whole,
		Fractional: -1 * c.Fractional,
	}
}

// Subtract returns the value of c reduced by the given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare orders two normalized coins by value, ignoring the ticker.
// The caller decides whether the currencies must match.
//
// Returns 1 when c is larger, -1 when o is larger, 0 otherwise.
func (c Coin) Compare(o Coin) int {
	switch {
	case c.Whole > o.Whole:
		return 1
	case c.Whole < o.Whole:
		return -1
	case c.Fractional > o.Fractional:
		return 1
	case c.Fractional < o.Fractional:
		return -1
	}
	return 0
}

// Equals returns true when every field matches.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker &&
		c.Whole == o.Whole &&
		c.Fractional == o.Fractional
}

// IsEmpty treats a nil coin the same as a zero value.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true when both amounts are 0.
func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

// IsPositive returns true for a value strictly above 0.
func (c Coin) IsPositive() bool {
	return c.Whole > 0 ||
		(c.Whole == 0 && c.Fractional > 0)
}

// IsNonNegative returns true for 0 or above.
func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsGTE returns true when c is of the same currency and at least as
// large as o. Both coins must be normalized.
func (c Coin) IsGTE(o Coin) bool {
	if !c.SameType(o) || c.Whole < o.Whole {
		return false
	}
	if (c.Whole == o.Whole) &&
		(c.Fractional < o.Fractional) {
		return false
	}
	return true
}

// SameType returns true when both coins share the currency.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Ticker:     c.Ticker,
		Whole:      c.Whole,
		Fractional: c.Fractional,
	}
}

// Validate ensures the ticker is a proper currency code, both amounts
// are within range and their signs agree. Negative values pass, so
// callers that require a payment amount must check IsPositive
// themselves.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		return errors.Wrapf(errors.ErrOverflow, "whole %d", c.Whole)
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		return errors.Wrapf(errors.ErrOverflow, "fractional %d", c.Fractional)
	}
	if c.Whole != 0 && c.Fractional != 0 &&
		((c.Whole > 0) != (c.Fractional > 0)) {
		return errors.Wrap(errors.ErrState, "mismatched sign")
	}
	return nil
}

// normalize rolls fractional overflow into the whole part and aligns
// the signs of both parts. Errors when the whole part leaves the
// permitted range.
func (c Coin) normalize() (Coin, error) {
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}

	if (c.Whole > 0) && (c.Fractional < 0) {
		c.Whole--
		c.Fractional += FracUnit
	} else if (c.Whole < 0) && (c.Fractional > 0) {
		c.Whole++
		c.Fractional -= FracUnit
	}

	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.Wrapf(errors.ErrOverflow, "whole %d", c.Whole)
	}
	return c, nil
}
