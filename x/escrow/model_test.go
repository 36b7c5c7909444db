package escrow

import (
	"testing"

	"github.com/iov-one/trustbridge/coin"
	"github.com/iov-one/trustbridge/store"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscrowValidate(t *testing.T) {
	addr := tbtest.NewCondition().Address()

	esc := Escrow{
		Amount:      coin.NewCoinp(10, 0, "IOV"),
		Owner:       addr,
		Beneficiary: addr,
		Arbiter:     addr,
		Active:      true,
	}
	assert.NoError(t, esc.Validate())

	noAmount := esc
	noAmount.Amount = nil
	assert.Error(t, noAmount.Validate())

	negative := esc
	negative.Amount = coin.NewCoinp(-1, 0, "IOV")
	assert.Error(t, negative.Validate())

	noOwner := esc
	noOwner.Owner = nil
	assert.Error(t, noOwner.Validate())
}

func TestEscrowRoundTrip(t *testing.T) {
	db := store.MemStore()
	bucket := NewBucket()

	esc := &Escrow{
		Amount:      coin.NewCoinp(7, 900, "BTC"),
		Owner:       tbtest.NewCondition().Address(),
		Beneficiary: tbtest.NewCondition().Address(),
		Arbiter:     tbtest.NewCondition().Address(),
		Active:      true,
	}
	id := tbtest.SequenceID(0)
	require.NoError(t, bucket.Put(db, id, esc))

	got, err := GetEscrow(db, bucket, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Amount.Equals(*esc.Amount))
	assert.Equal(t, esc.Owner, got.Owner)
	assert.Equal(t, esc.Beneficiary, got.Beneficiary)
	assert.Equal(t, esc.Arbiter, got.Arbiter)
	assert.True(t, got.Active)
}

func TestCustodyCondition(t *testing.T) {
	a := Condition(tbtest.SequenceID(0))
	b := Condition(tbtest.SequenceID(1))

	// distinct escrows get distinct custody accounts
	assert.False(t, a.Address().Equals(b.Address()))
	// deterministic
	assert.True(t, a.Address().Equals(Condition(tbtest.SequenceID(0)).Address()))
}
