package x

import (
	"context"
	"testing"

	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/tbtest"
	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	a := tbtest.NewCondition()
	b := tbtest.NewCondition()
	c := tbtest.NewCondition()

	ctx1 := context.Background()
	auth1 := &tbtest.Auth{Signer: a}
	ctx2 := context.Background()
	auth2 := &tbtest.Auth{Signers: []trustbridge.Condition{b, c}}

	cases := map[string]struct {
		ctx        trustbridge.Context
		auth       Authenticator
		mainSigner trustbridge.Condition
		has        trustbridge.Address
		notHave    trustbridge.Address
		all        []trustbridge.Address
	}{
		"single signer": {
			ctx:        ctx1,
			auth:       auth1,
			mainSigner: a,
			has:        a.Address(),
			notHave:    b.Address(),
			all:        []trustbridge.Address{a.Address()},
		},
		"multiple signers": {
			ctx:        ctx2,
			auth:       auth2,
			mainSigner: b,
			has:        c.Address(),
			notHave:    a.Address(),
			all:        []trustbridge.Address{b.Address(), c.Address()},
		},
		"chained authenticators": {
			ctx:        ctx1,
			auth:       ChainAuth(auth2, auth1),
			mainSigner: b,
			has:        a.Address(),
			notHave:    tbtest.NewCondition().Address(),
			all:        []trustbridge.Address{a.Address(), b.Address(), c.Address()},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.mainSigner, MainSigner(tc.ctx, tc.auth))
			assert.True(t, tc.auth.HasAddress(tc.ctx, tc.has))
			assert.False(t, tc.auth.HasAddress(tc.ctx, tc.notHave))
			assert.True(t, HasAllAddresses(tc.ctx, tc.auth, tc.all))
			assert.False(t, HasAllAddresses(tc.ctx, tc.auth,
				append([]trustbridge.Address{tc.notHave}, tc.all...)))

			addrs := GetAddresses(tc.ctx, tc.auth)
			assert.Equal(t, len(tc.all), len(addrs))
		})
	}
}

func TestMainSignerEmpty(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, MainSigner(ctx, &tbtest.Auth{}))
	assert.Equal(t, 0, len(GetAddresses(ctx, &tbtest.Auth{})))
}
