package tbtest

import (
	"encoding/binary"
	"math/rand"

	"github.com/iov-one/trustbridge"
)

// NewCondition returns a random condition. Each call returns a
// different value.
func NewCondition() trustbridge.Condition {
	data := make([]byte, 20)
	rand.Read(data)
	return trustbridge.NewCondition("test", "rand", data)
}

// SequenceID returns an ID as generated by a zero based sequence for
// the n-th call. The first issued value is SequenceID(0).
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
