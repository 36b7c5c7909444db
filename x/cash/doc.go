/*
Package cash maintains the ledger of wallets. A wallet is a set of
coins bound to an address.

The package exposes no message handlers. Balances change through the
Controller, which other extensions consume as a collaborator, and
through the genesis initializer.
*/
package cash
