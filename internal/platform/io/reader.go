package io

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"simple-linkedlist/internal/platform/datatype"
	platformerror "simple-linkedlist/internal/platform/error"
)

type Reader struct {
	reader io.Reader
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{reader: reader}
}

// Read fills b completely. A short read yields IncompleteReadError; a read
// that finds no bytes at all yields io.EOF.
func (r *Reader) Read(b []byte) (int, error) {
	if b == nil {
		return 0, fmt.Errorf("Reader.Read: nil buffer given")
	}
	n, err := io.ReadFull(r.reader, b)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return n, platformerror.NewIncompleteReadError(len(b), n)
	}
	if err != nil {
		return n, err
	}
	return n, nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	buf := make([]byte, datatype.LenInt32)
	if _, err := r.Read(buf); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func (r *Reader) ReadByte() (byte, error) {
	buf := make([]byte, datatype.LenByte)
	if _, err := r.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadTLV returns one whole record: tag, length and payload. io.EOF is
// returned unwrapped when the stream ends on a record boundary.
func (r *Reader) ReadTLV() ([]byte, error) {
	buf := bytes.Buffer{}
	dataType, err := r.ReadByte()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("Reader.ReadTLV: dataType: %w", err)
	}
	buf.WriteByte(dataType)
	length, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("Reader.ReadTLV: len: %w", truncated(err, datatype.LenInt32))
	}
	if err = binary.Write(&buf, binary.LittleEndian, length); err != nil {
		return nil, fmt.Errorf("Reader.ReadTLV: len: %w", err)
	}
	// the header length is untrusted; buf only grows by what is actually read
	n, err := io.CopyN(&buf, r.reader, int64(length))
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("Reader.ReadTLV: val: %w", platformerror.NewIncompleteReadError(int(length), int(n)))
	}
	if err != nil {
		return nil, fmt.Errorf("Reader.ReadTLV: val: %w", err)
	}
	return buf.Bytes(), nil
}

// truncated turns an EOF inside a record into an incomplete read.
func truncated(err error, expected int) error {
	if errors.Is(err, io.EOF) {
		return platformerror.NewIncompleteReadError(expected, 0)
	}
	return err
}
