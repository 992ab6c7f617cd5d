package parser

import (
	"errors"
	"fmt"
	"io"

	"simple-linkedlist/internal/platform/datatype"
	platformio "simple-linkedlist/internal/platform/io"
)

// TLVParser reads a stream of TLV records that all carry T's tag.
type TLVParser[T datatype.Element] struct {
	reader *platformio.Reader
}

func NewTLVParser[T datatype.Element](reader *platformio.Reader) *TLVParser[T] {
	return &TLVParser[T]{
		reader: reader,
	}
}

// Next returns the next value, or io.EOF once the stream is exhausted.
func (p *TLVParser[T]) Next() (T, error) {
	var zero T
	data, err := p.reader.ReadTLV()
	if errors.Is(err, io.EOF) {
		return zero, io.EOF
	}
	if err != nil {
		return zero, fmt.Errorf("TLVParser.Next: %w", err)
	}

	tlvUnmarshaler := NewTLVUnmarshaler(NewValueUnmarshaler[T]())
	if err := tlvUnmarshaler.UnmarshalBinary(data); err != nil {
		return zero, fmt.Errorf("TLVParser.Next: %w", err)
	}
	return tlvUnmarshaler.Value, nil
}
