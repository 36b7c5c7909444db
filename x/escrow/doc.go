/*
Package escrow implements a third party arbitrated escrow.

An escrow locks an amount taken from the owner wallet under a custody
account derived from the escrow ID. Only the arbiter may release the
locked funds to the beneficiary. A released escrow stays in the store
forever, deactivated.

There is no timeout and no return path. Once created, the funds leave
custody only through an arbiter release.
*/
package escrow
