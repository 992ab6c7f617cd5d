package parser

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"simple-linkedlist/internal/platform/datatype"
	platformerror "simple-linkedlist/internal/platform/error"
)

type ValueMarshaler[T datatype.Element] struct {
	Value T
}

func NewValueMarshaler[T datatype.Element](val T) *ValueMarshaler[T] {
	return &ValueMarshaler[T]{
		Value: val,
	}
}

func (m *ValueMarshaler[T]) MarshalBinary() ([]byte, error) {
	buf := bytes.Buffer{}
	switch v := any(m.Value).(type) {
	case string:
		buf.WriteString(v)
	default:
		if err := binary.Write(&buf, binary.LittleEndian, m.Value); err != nil {
			return nil, fmt.Errorf("ValueMarshaler.MarshalBinary: %w", err)
		}
	}
	return buf.Bytes(), nil
}

type ValueUnmarshaler[T datatype.Element] struct {
	Value T
}

func NewValueUnmarshaler[T datatype.Element]() *ValueUnmarshaler[T] {
	return &ValueUnmarshaler[T]{}
}

func (u *ValueUnmarshaler[T]) UnmarshalBinary(data []byte) error {
	var value T
	switch v := any(&value).(type) {
	case *string:
		*v = string(data)
	default:
		if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &value); err != nil {
			return fmt.Errorf("ValueUnmarshaler.UnmarshalBinary: %w", err)
		}
	}
	u.Value = value
	return nil
}

// TLVMarshaler writes one record: type tag, uint32 little-endian payload
// length, payload.
type TLVMarshaler[T datatype.Element] struct {
	Value          T
	ValueMarshaler *ValueMarshaler[T]
}

func NewTLVMarshaler[T datatype.Element](val T) *TLVMarshaler[T] {
	return &TLVMarshaler[T]{
		Value:          val,
		ValueMarshaler: NewValueMarshaler(val),
	}
}

func (m *TLVMarshaler[T]) MarshalBinary() ([]byte, error) {
	typeFlag, err := datatype.TypeOf(m.Value)
	if err != nil {
		return nil, &platformerror.UnsupportedDataTypeError{DataType: fmt.Sprintf("%T", m.Value)}
	}
	valueBuf, err := m.ValueMarshaler.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("TLVMarshaler.MarshalBinary: %w", err)
	}

	buf := bytes.Buffer{}
	// datatype
	buf.WriteByte(typeFlag)
	// length
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(valueBuf))); err != nil {
		return nil, fmt.Errorf("TLVMarshaler.MarshalBinary: %w", err)
	}
	buf.Write(valueBuf)
	return buf.Bytes(), nil
}

type TLVUnmarshaler[T datatype.Element] struct {
	dataType    byte
	length      uint32
	Value       T
	unmarshaler *ValueUnmarshaler[T]
	BytesRead   uint32
}

func NewTLVUnmarshaler[T datatype.Element](unmarshaler *ValueUnmarshaler[T]) *TLVUnmarshaler[T] {
	return &TLVUnmarshaler[T]{
		unmarshaler: unmarshaler,
	}
}

// UnmarshalBinary decodes one record. The record's tag must match T.
func (u *TLVUnmarshaler[T]) UnmarshalBinary(data []byte) error {
	u.BytesRead = 0
	if len(data) < datatype.LenMeta {
		return platformerror.NewIncompleteReadError(datatype.LenMeta, len(data))
	}

	var zero T
	expected, err := datatype.TypeOf(zero)
	if err != nil {
		return fmt.Errorf("TLVUnmarshaler.UnmarshalBinary: %w", err)
	}
	// datatype
	u.dataType = data[0]
	if u.dataType != expected {
		return &platformerror.UnsupportedDataTypeError{
			DataType: fmt.Sprintf("%s, want %s", datatype.TypeName(u.dataType), datatype.TypeName(expected)),
		}
	}
	u.BytesRead += datatype.LenByte
	// length
	u.length = binary.LittleEndian.Uint32(data[u.BytesRead:])
	u.BytesRead += datatype.LenInt32
	if size, fixed := datatype.FixedLen(u.dataType); fixed && int(u.length) != size {
		return platformerror.NewInvalidLengthError(datatype.TypeName(u.dataType), size, int(u.length))
	}
	payload := data[u.BytesRead:]
	if uint32(len(payload)) < u.length {
		return platformerror.NewIncompleteReadError(int(u.length), len(payload))
	}
	// value
	if err := u.unmarshaler.UnmarshalBinary(payload[:u.length]); err != nil {
		return fmt.Errorf("TLVUnmarshaler.UnmarshalBinary: %w", err)
	}
	u.Value = u.unmarshaler.Value
	u.BytesRead += u.length
	return nil
}
