package escrow

import (
	"fmt"
	"io"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/trustbridge"
	"github.com/iov-one/trustbridge/coin"
)

// Escrow holds some coins in custody.
// The arbiter can release them to the beneficiary.
//
// The binary encoding follows codec.proto and is maintained by hand
// to stay wire compatible with the generated form.
type Escrow struct {
	Amount *coin.Coin `protobuf:"bytes,1,opt,name=amount" json:"amount,omitempty"`
	// Owner funded the escrow and is recorded for bookkeeping.
	Owner       trustbridge.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/trustbridge.Address" json:"owner,omitempty"`
	Beneficiary trustbridge.Address `protobuf:"bytes,3,opt,name=beneficiary,proto3,casttype=github.com/iov-one/trustbridge.Address" json:"beneficiary,omitempty"`
	Arbiter     trustbridge.Address `protobuf:"bytes,4,opt,name=arbiter,proto3,casttype=github.com/iov-one/trustbridge.Address" json:"arbiter,omitempty"`
	// Active is true until the funds were released.
	Active bool `protobuf:"varint,5,opt,name=active,proto3" json:"active,omitempty"`
}

var _ proto.Message = (*Escrow)(nil)

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString(m) }
func (*Escrow) ProtoMessage()    {}

func (m *Escrow) GetAmount() *coin.Coin {
	if m != nil {
		return m.Amount
	}
	return nil
}

func (m *Escrow) Size() (n int) {
	if m == nil {
		return 0
	}
	if m.Amount != nil {
		l := m.Amount.Size()
		n += 1 + l + sovCodec(uint64(l))
	}
	if l := len(m.Owner); l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	if l := len(m.Beneficiary); l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	if l := len(m.Arbiter); l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	if m.Active {
		n += 2
	}
	return n
}

func (m *Escrow) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	var i int
	if m.Amount != nil {
		data[i] = 0xa
		i++
		i = encodeVarintCodec(data, i, uint64(m.Amount.Size()))
		n, err := m.Amount.MarshalTo(data[i:])
		if err != nil {
			return nil, err
		}
		i += n
	}
	i = putBytesField(data, i, 0x12, m.Owner)
	i = putBytesField(data, i, 0x1a, m.Beneficiary)
	i = putBytesField(data, i, 0x22, m.Arbiter)
	if m.Active {
		data[i] = 0x28
		data[i+1] = 1
		i += 2
	}
	return data[:i], nil
}

func (m *Escrow) Unmarshal(data []byte) error {
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
				return fmt.Errorf("proto: wrong wireType = %d for field Amount", wireType)
			}
			raw, n, err := decodeBytesCodec(data[idx:])
			if err != nil {
				return err
			}
			idx += n
			m.Amount = new(coin.Coin)
			if err := m.Amount.Unmarshal(raw); err != nil {
				return err
			}
		case 2:
			raw, n, err := getBytesField(data[idx:], wireType, "Owner")
			if err != nil {
				return err
			}
			idx += n
			m.Owner = raw
		case 3:
			raw, n, err := getBytesField(data[idx:], wireType, "Beneficiary")
			if err != nil {
				return err
			}
			idx += n
			m.Beneficiary = raw
		case 4:
			raw, n, err := getBytesField(data[idx:], wireType, "Arbiter")
			if err != nil {
				return err
			}
			idx += n
			m.Arbiter = raw
		case 5:
			if wireType != 0 {
				return fmt.Errorf("proto: wrong wireType = %d for field Active", wireType)
			}
			v, n, err := decodeVarintCodec(data[idx:])
			if err != nil {
				return err
			}
			idx += n
			m.Active = v != 0
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

// CreateEscrowMsg locks the amount from the main signer wallet under
// a new escrow.
type CreateEscrowMsg struct {
	Amount      *coin.Coin          `protobuf:"bytes,1,opt,name=amount" json:"amount,omitempty"`
	Beneficiary trustbridge.Address `protobuf:"bytes,2,opt,name=beneficiary,proto3,casttype=github.com/iov-one/trustbridge.Address" json:"beneficiary,omitempty"`
	Arbiter     trustbridge.Address `protobuf:"bytes,3,opt,name=arbiter,proto3,casttype=github.com/iov-one/trustbridge.Address" json:"arbiter,omitempty"`
}

var _ proto.Message = (*CreateEscrowMsg)(nil)

func (m *CreateEscrowMsg) Reset()         { *m = CreateEscrowMsg{} }
func (m *CreateEscrowMsg) String() string { return proto.CompactTextString(m) }
func (*CreateEscrowMsg) ProtoMessage()    {}

func (m *CreateEscrowMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	if m.Amount != nil {
		l := m.Amount.Size()
		n += 1 + l + sovCodec(uint64(l))
	}
	if l := len(m.Beneficiary); l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	if l := len(m.Arbiter); l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *CreateEscrowMsg) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	var i int
	if m.Amount != nil {
		data[i] = 0xa
		i++
		i = encodeVarintCodec(data, i, uint64(m.Amount.Size()))
		n, err := m.Amount.MarshalTo(data[i:])
		if err != nil {
			return nil, err
		}
		i += n
	}
	i = putBytesField(data, i, 0x12, m.Beneficiary)
	i = putBytesField(data, i, 0x1a, m.Arbiter)
	return data[:i], nil
}

func (m *CreateEscrowMsg) Unmarshal(data []byte) error {
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
				return fmt.Errorf("proto: wrong wireType = %d for field Amount", wireType)
			}
			raw, n, err := decodeBytesCodec(data[idx:])
			if err != nil {
				return err
			}
			idx += n
			m.Amount = new(coin.Coin)
			if err := m.Amount.Unmarshal(raw); err != nil {
				return err
			}
		case 2:
			raw, n, err := getBytesField(data[idx:], wireType, "Beneficiary")
			if err != nil {
				return err
			}
			idx += n
			m.Beneficiary = raw
		case 3:
			raw, n, err := getBytesField(data[idx:], wireType, "Arbiter")
			if err != nil {
				return err
			}
			idx += n
			m.Arbiter = raw
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

// ReleaseEscrowMsg releases the escrowed funds to the beneficiary.
// Only the arbiter of the escrow can do this.
type ReleaseEscrowMsg struct {
	EscrowId []byte `protobuf:"bytes,1,opt,name=escrow_id,json=escrowId,proto3" json:"escrow_id,omitempty"`
}

var _ proto.Message = (*ReleaseEscrowMsg)(nil)

func (m *ReleaseEscrowMsg) Reset()         { *m = ReleaseEscrowMsg{} }
func (m *ReleaseEscrowMsg) String() string { return proto.CompactTextString(m) }
func (*ReleaseEscrowMsg) ProtoMessage()    {}

func (m *ReleaseEscrowMsg) Size() (n int) {
	if m == nil {
		return 0
	}
	if l := len(m.EscrowId); l > 0 {
		n += 1 + l + sovCodec(uint64(l))
	}
	return n
}

func (m *ReleaseEscrowMsg) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	i := putBytesField(data, 0, 0xa, m.EscrowId)
	return data[:i], nil
}

func (m *ReleaseEscrowMsg) Unmarshal(data []byte) error {
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
			raw, n, err := getBytesField(data[idx:], wireType, "EscrowId")
			if err != nil {
				return err
			}
			idx += n
			m.EscrowId = raw
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

func putBytesField(data []byte, offset int, key byte, raw []byte) int {
	if len(raw) == 0 {
		return offset
	}
	data[offset] = key
	offset++
	offset = encodeVarintCodec(data, offset, uint64(len(raw)))
	offset += copy(data[offset:], raw)
	return offset
}

func getBytesField(data []byte, wireType int, field string) ([]byte, int, error) {
	if wireType != 2 {
		return nil, 0, fmt.Errorf("proto: wrong wireType = %d for field %s", wireType, field)
	}
	raw, n, err := decodeBytesCodec(data)
	if err != nil {
		return nil, 0, err
	}
	return append([]byte(nil), raw...), n, nil
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
