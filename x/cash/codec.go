package cash

import (
	"fmt"
	"io"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/trustbridge/coin"
)

// Set may contain Coin of many different currencies.
// It handles adding and subtracting sets of currencies.
//
// The binary encoding follows codec.proto and is maintained by hand
// to stay wire compatible with the generated form.
type Set struct {
	Coins []*coin.Coin `protobuf:"bytes,1,rep,name=coins" json:"coins,omitempty"`
}

var _ proto.Message = (*Set)(nil)

func (m *Set) Reset()         { *m = Set{} }
func (m *Set) String() string { return proto.CompactTextString(m) }
func (*Set) ProtoMessage()    {}

func (m *Set) GetCoins() []*coin.Coin {
	if m != nil {
		return m.Coins
	}
	return nil
}

func (m *Set) Size() (n int) {
	if m == nil {
		return 0
	}
	for _, c := range m.Coins {
		l := c.Size()
		n += 1 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Set) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	var i int
	for _, c := range m.Coins {
		data[i] = 0xa
		i++
		i = encodeVarintCodec(data, i, uint64(c.Size()))
		n, err := c.MarshalTo(data[i:])
		if err != nil {
			return nil, err
		}
		i += n
	}
	return data[:i], nil
}

func (m *Set) Unmarshal(data []byte) error {
	l := len(data)
	var idx int
	for idx < l {
		wire, n, err := decodeVarintCodec(data[idx:])
		if err != nil {
			return err
		}
		idx += n
		fieldNum := int32(wire >> 3)
		wireType := int(wire & 0x7)
		switch fieldNum {
		case 1:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Coins", wireType)
			}
			raw, n, err := decodeBytesCodec(data[idx:])
			if err != nil {
				return err
			}
			idx += n
			var c coin.Coin
			if err := c.Unmarshal(raw); err != nil {
				return err
			}
			m.Coins = append(m.Coins, &c)
		default:
			n, err := skipFieldCodec(data[idx:], wireType)
			if err != nil {
				return err
			}
			idx += n
		}
	}
	return nil
}

func encodeVarintCodec(data []byte, offset int, v uint64) int {
	for v >= 1<<7 {
		data[offset] = uint8(v&0x7f | 0x80)
		v >>= 7
		offset++
	}
	data[offset] = uint8(v)
	return offset + 1
}

func sovCodec(x uint64) (n int) {
	for {
		n++
		x >>= 7
		if x == 0 {
			return n
		}
	}
}

func decodeVarintCodec(data []byte) (uint64, int, error) {
	var v uint64
	for i, shift := 0, uint(0); shift < 64; shift += 7 {
		if i >= len(data) {
			return 0, 0, io.ErrUnexpectedEOF
		}
		b := data[i]
		i++
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, i, nil
		}
	}
	return 0, 0, fmt.Errorf("proto: varint overflow")
}

func decodeBytesCodec(data []byte) ([]byte, int, error) {
	size, n, err := decodeVarintCodec(data)
	if err != nil {
		return nil, 0, err
	}
	end := n + int(size)
	if int(size) < 0 || end > len(data) {
		return nil, 0, io.ErrUnexpectedEOF
	}
	return data[n:end], end, nil
}

func skipFieldCodec(data []byte, wireType int) (int, error) {
	switch wireType {
	case 0:
		_, n, err := decodeVarintCodec(data)
		return n, err
	case 1:
		if len(data) < 8 {
			return 0, io.ErrUnexpectedEOF
		}
		return 8, nil
	case 2:
		_, n, err := decodeBytesCodec(data)
		return n, err
	case 5:
		if len(data) < 4 {
			return 0, io.ErrUnexpectedEOF
		}
		return 4, nil
	default:
		return 0, fmt.Errorf("proto: unsupported wire type %d", wireType)
	}
}
