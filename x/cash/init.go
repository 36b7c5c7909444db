package cash

import (
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use trustbridge.Address, so address in hex, not base64
type GenesisAccount struct {
	Address trustbridge.Address `json:"address"`
	Set
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ trustbridge.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts trustbridge.Options, kv trustbridge.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrap(err, "genesis account address")
		}
		wallet, err := WalletWith(acct.Address, acct.Set.Coins...)
		if err != nil {
			return err
		}
		if err := bucket.Save(kv, wallet); err != nil {
			return err
		}
	}
	return nil
}
