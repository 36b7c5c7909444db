package coin

import (
	"fmt"
	"io"

	"github.com/gogo/protobuf/proto"
)

// Coin can hold any amount between -1 billion and +1 billion at
// steps of 10^-9. It is a fixed-point decimal representation and
// uses whole and fractional together to express one amount.
//
// The binary encoding follows codec.proto and is maintained by hand
// to stay wire compatible with the generated form.
type Coin struct {
	// Whole coins, -10^15 < whole < 10^15
	Whole int64 `protobuf:"varint,1,opt,name=whole,proto3" json:"whole,omitempty"`
	// Billionth of coins. 0 <= abs(fractional) < 10^9
	// If fractional != 0, must have same sign as whole
	Fractional int64 `protobuf:"varint,2,opt,name=fractional,proto3" json:"fractional,omitempty"`
	// Ticker is 3-4 upper-case letters and all coins of the same
	// currency can be combined
	Ticker string `protobuf:"bytes,3,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

var _ proto.Message = (*Coin)(nil)

func (m *Coin) Reset()         { *m = Coin{} }
func (m *Coin) String() string { return proto.CompactTextString(m) }
func (*Coin) ProtoMessage()    {}

func (m *Coin) GetWhole() int64 {
	if m != nil {
		return m.Whole
	}
	return 0
}

func (m *Coin) GetFractional() int64 {
	if m != nil {
		return m.Fractional
	}
	return 0
}

func (m *Coin) GetTicker() string {
	if m != nil {
		return m.Ticker
	}
	return ""
}

func (m *Coin) Size() (n int) {
	if m == nil {
		return 0
	}
	if m.Whole != 0 {
		n += 1 + sovCodec(uint64(m.Whole))
	}
	if m.Fractional != 0 {
		n += 1 + sovCodec(uint64(m.Fractional))
	}
	if l := len(m.Ticker); l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *Coin) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	n, err := m.MarshalTo(data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

func (m *Coin) MarshalTo(data []byte) (int, error) {
	var i int
	if m.Whole != 0 {
		data[i] = 0x8
		i++
		i = encodeVarintCodec(data, i, uint64(m.Whole))
	}
	if m.Fractional != 0 {
		data[i] = 0x10
		i++
		i = encodeVarintCodec(data, i, uint64(m.Fractional))
	}
	if len(m.Ticker) > 0 {
		data[i] = 0x1a
		i++
		i = encodeVarintCodec(data, i, uint64(len(m.Ticker)))
		i += copy(data[i:], m.Ticker)
	}
	return i, nil
}

func (m *Coin) Unmarshal(data []byte) error {
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
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field Whole", wireType)
			}
			v, n, err := decodeVarintCodec(data[idx:])
			if err != nil {
				return err
			}
			idx += n
			m.Whole = int64(v)
		case 2:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field Fractional", wireType)
			}
			v, n, err := decodeVarintCodec(data[idx:])
			if err != nil {
				return err
			}
			idx += n
			m.Fractional = int64(v)
		case 3:
			if wireType != 2 {
				return fmt.Errorf("proto: wrong wireType = %d for field Ticker", wireType)
			}
			raw, n, err := decodeBytesCodec(data[idx:])
			if err != nil {
				return err
			}
			idx += n
			m.Ticker = string(raw)
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
