package escrow

import (
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
)

const optKey = "escrow"

// adminStoreKey is where the admin address is persisted.
var adminStoreKey = []byte("_c:escrow:admin")

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ trustbridge.Initializer = Initializer{}

// FromGenesis stores the configured admin address. The address is
// recorded for bookkeeping only. No operation in this package
// consults it.
func (Initializer) FromGenesis(opts trustbridge.Options, kv trustbridge.KVStore) error {
	var conf struct {
		Admin trustbridge.Address `json:"admin"`
	}
	if err := opts.ReadOptions(optKey, &conf); err != nil {
		return err
	}
	if conf.Admin == nil {
		return nil
	}
	if err := conf.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin address")
	}
	return kv.Set(adminStoreKey, conf.Admin)
}

// Admin returns the address stored by the genesis initializer, or nil
// when none was configured.
func Admin(db trustbridge.ReadOnlyKVStore) (trustbridge.Address, error) {
	raw, err := db.Get(adminStoreKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return trustbridge.Address(raw), nil
}
