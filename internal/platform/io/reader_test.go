package io

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"testing"

	platformerror "simple-linkedlist/internal/platform/error"

	"github.com/stretchr/testify/require"
)

func TestReader_ReadTLV(t *testing.T) {
	stream := []byte{
		2, 3, 0, 0, 0, 'a', 'b', 'c',
		4, 1, 0, 0, 0, 1,
	}
	r := NewReader(bytes.NewReader(stream))

	record, err := r.ReadTLV()
	require.NoError(t, err)
	require.Equal(t, stream[:8], record)

	record, err = r.ReadTLV()
	require.NoError(t, err)
	require.Equal(t, stream[8:], record)

	_, err = r.ReadTLV()
	require.ErrorIs(t, err, io.EOF)
}

func TestReader_ReadTLVTruncated(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
	}{
		{name: "partial length", stream: []byte{2, 3, 0}},
		{name: "missing payload", stream: []byte{2, 3, 0, 0, 0}},
		{name: "partial payload", stream: []byte{2, 3, 0, 0, 0, 'a'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(bytes.NewReader(tt.stream)).ReadTLV()
			var readErr *platformerror.IncompleteReadError
			require.True(t, errors.As(err, &readErr), "got %v", err)
		})
	}
}

func TestReader_ReadTLVOversizedLength(t *testing.T) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	_, err := NewReader(bytes.NewReader([]byte{1, 0xff, 0xff, 0xff, 0xff})).ReadTLV()

	runtime.ReadMemStats(&after)
	var readErr *platformerror.IncompleteReadError
	require.True(t, errors.As(err, &readErr), "got %v", err)
	require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestReader_ReadNilBuffer(t *testing.T) {
	_, err := NewReader(bytes.NewReader(nil)).Read(nil)
	require.Error(t, err)
}
