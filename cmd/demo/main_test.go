package main

import (
	"bytes"
	"strings"
	"testing"

	"simple-linkedlist/internal/platform"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	for _, format := range []string{"msgpack", "tlv"} {
		t.Run(format, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, run(&out, format))

			text := out.String()
			require.Contains(t, text, "Original..\n0 -> 1 -> 2 -> 3 -> 4 -> 5\n")
			require.Contains(t, text, "Delete end..\n1 -> 2 -> 3 -> 4\n")
			require.Contains(t, text, "Delete 3..\n<NULL>\n")
			require.Contains(t, text, "Delete dupes: after..\n1 -> 2 -> 3\n")
			require.Contains(t, text, "0 to last = 9\n")
			require.Contains(t, text, "8 to last = 1\n")
			require.Contains(t, text, "9 to last = none\n")
			require.True(t, strings.HasSuffix(text, "round-trips: true\n"), text)
		})
	}
}

func TestRun_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(&out, "yaml"))
}

func TestInsert_Refused(t *testing.T) {
	ll := platform.NewLinkedListFrom[int64](1, 2)
	require.Error(t, insert(ll.AddToEnd, ll.Front()))
	require.Error(t, insert(ll.AddToFront, nil))
	require.Equal(t, []int64{1, 2}, ll.Values())

	require.NoError(t, appendValues(ll, 3))
	require.Equal(t, []int64{1, 2, 3}, ll.Values())
}
