/*
Package trustbridge defines the common interfaces that tie the escrow
registry together: messages and transactions, the key-value storage
contracts, the handler/decorator execution pipeline, and read-only
query routing.

Extensions live under x/ and only depend on these interfaces, never on
a concrete store or host. The host environment is expected to provide
a transaction boundary around every state-mutating call; the
x/utils.Savepoint decorator replicates that boundary when the backing
store supports cache wrapping.
*/
package trustbridge
