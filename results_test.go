package trustbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCheck(t *testing.T) {
	res := NewCheck(300, "all good")
	assert.Equal(t, int64(300), res.GasAllocated)
	assert.Equal(t, "all good", res.Log)
	assert.Nil(t, res.Data)
}
