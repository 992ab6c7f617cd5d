package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"simple-linkedlist/internal/platform"
	"simple-linkedlist/internal/platform/datatype"
	platformerror "simple-linkedlist/internal/platform/error"
	platformio "simple-linkedlist/internal/platform/io"

	"github.com/hashicorp/go-msgpack/codec"
)

const (
	FormatMsgpack = "msgpack"
	FormatTLV     = "tlv"
)

// Codec turns a list into bytes and back. Decoding yields a fresh list
// with the same traversal order.
type Codec[T comparable] interface {
	Encode(list *platform.LinkedList[T]) ([]byte, error)
	Decode(data []byte) (*platform.LinkedList[T], error)
}

func NewCodec[T datatype.Element](format string) (Codec[T], error) {
	switch format {
	case FormatMsgpack:
		return NewMsgpackCodec[T](), nil
	case FormatTLV:
		return NewTLVCodec[T](), nil
	default:
		return nil, platformerror.NewUnknownFormatError(format)
	}
}

type MsgpackCodec[T comparable] struct {
	handle *codec.MsgpackHandle
}

func NewMsgpackCodec[T comparable]() *MsgpackCodec[T] {
	return &MsgpackCodec[T]{
		handle: new(codec.MsgpackHandle),
	}
}

// Encode writes the values as one msgpack array.
func (c *MsgpackCodec[T]) Encode(list *platform.LinkedList[T]) ([]byte, error) {
	var encoded []byte
	enc := codec.NewEncoderBytes(&encoded, c.handle)
	if err := enc.Encode(list.Values()); err != nil {
		return nil, platformerror.NewStackTraceError(err.Error(), platformerror.BinaryWriteErrorCode)
	}
	return encoded, nil
}

func (c *MsgpackCodec[T]) Decode(data []byte) (*platform.LinkedList[T], error) {
	var values []T
	dec := codec.NewDecoderBytes(data, c.handle)
	if err := dec.Decode(&values); err != nil {
		return nil, platformerror.NewStackTraceError(err.Error(), platformerror.BinaryReadErrorCode)
	}
	return platform.NewLinkedListFrom(values...), nil
}

type TLVCodec[T datatype.Element] struct{}

func NewTLVCodec[T datatype.Element]() *TLVCodec[T] {
	return &TLVCodec[T]{}
}

// Encode writes one TLV record per value, back to back.
func (c *TLVCodec[T]) Encode(list *platform.LinkedList[T]) ([]byte, error) {
	buf := bytes.Buffer{}
	for val := range list.All() {
		record, err := NewTLVMarshaler(val).MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("TLVCodec.Encode: %w", err)
		}
		buf.Write(record)
	}
	return buf.Bytes(), nil
}

func (c *TLVCodec[T]) Decode(data []byte) (*platform.LinkedList[T], error) {
	p := NewTLVParser[T](platformio.NewReader(bytes.NewReader(data)))
	values := make([]T, 0)
	for {
		val, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("TLVCodec.Decode: %w", err)
		}
		values = append(values, val)
	}
	return platform.NewLinkedListFrom(values...), nil
}
