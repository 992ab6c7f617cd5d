package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTLVMarshaler(t *testing.T) {
	tests := []struct {
		name string
		got  func() ([]byte, error)
		want []byte
	}{
		{
			name: "byte",
			got:  NewTLVMarshaler(byte(9)).MarshalBinary,
			want: []byte{3, 1, 0, 0, 0, 9},
		},
		{
			name: "bool",
			got:  NewTLVMarshaler(true).MarshalBinary,
			want: []byte{4, 1, 0, 0, 0, 1},
		},
		{
			name: "int64",
			got:  NewTLVMarshaler(int64(2)).MarshalBinary,
			want: []byte{1, 8, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			name: "string",
			got:  NewTLVMarshaler("hi").MarshalBinary,
			want: []byte{2, 2, 0, 0, 0, 'h', 'i'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTLVUnmarshaler(t *testing.T) {
	data, err := NewTLVMarshaler(int32(-3)).MarshalBinary()
	require.NoError(t, err)
	data = append(data, 0xff)

	u := NewTLVUnmarshaler(NewValueUnmarshaler[int32]())
	require.NoError(t, u.UnmarshalBinary(data))
	require.Equal(t, int32(-3), u.Value)
	require.Equal(t, uint32(9), u.BytesRead)
}
