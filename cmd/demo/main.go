package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"simple-linkedlist/internal/platform"
	"simple-linkedlist/internal/platform/helper"
	"simple-linkedlist/internal/platform/parser"

	"github.com/google/uuid"
)

func main() {
	level := flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	format := flag.String("format", parser.FormatMsgpack, "snapshot format (msgpack, tlv)")
	flag.Parse()

	if err := helper.SetLevel(*level); err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	runID := uuid.New().String()
	helper.Log.WithField("run", runID).Infof("starting walkthrough, snapshot format %s", *format)
	if err := run(os.Stdout, *format); err != nil {
		log.Fatal(err)
	}
	helper.Log.WithField("run", runID).Infof("walkthrough completed in %v", time.Since(start))
}

func run(w io.Writer, format string) error {
	ll := platform.NewLinkedList[int64]()
	if err := appendValues(ll, 1, 2, 3, 4, 5); err != nil {
		return err
	}
	if err := insert(ll.AddToFront, platform.NewNode(int64(0))); err != nil {
		return err
	}

	section(w, "Original", ll)

	ll.DeleteFront()
	section(w, "Delete front", ll)

	ll.DeleteLast()
	section(w, "Delete end", ll)

	for _, val := range []int64{1000, 2, 1, 4, 3, 1} {
		removed := ll.DeleteByVal(val)
		helper.Log.Debugf("deleteByVal(%d) removed=%v", val, removed)
		section(w, fmt.Sprintf("Delete %d", val), ll)
	}

	ll.Clear()
	section(w, "Delete dupes empty: orig", ll)
	ll.DeleteDupes()
	section(w, "Delete dupes empty: after", ll)

	if err := appendValues(ll, 1, 1, 2, 3, 3, 2, 1, 3, 2, 1); err != nil {
		return err
	}
	section(w, "Delete dupes: orig", ll)
	removed := ll.DeleteDupes()
	helper.Log.Debugf("deleteDupes removed %d nodes", removed)
	section(w, "Delete dupes: after", ll)

	ll.Clear()
	if err := appendValues(ll, 1, 2, 3, 4, 5, 6, 7, 8, 9); err != nil {
		return err
	}
	section(w, "Long ordered list", ll)
	for k := 0; k < 10; k++ {
		if val, ok := ll.KthToLast(k); ok {
			_, _ = fmt.Fprintf(w, "%d to last = %d\n", k, val)
		} else {
			_, _ = fmt.Fprintf(w, "%d to last = none\n", k)
		}
	}

	return snapshot(w, format, ll)
}

// insert splices node in with add and turns a refusal into an error.
func insert(add func(*platform.Node[int64]) bool, node *platform.Node[int64]) error {
	if !add(node) {
		helper.Log.Errorf("insertion of node %v refused", node)
		return fmt.Errorf("insert: node %v refused", node)
	}
	return nil
}

func appendValues(ll *platform.LinkedList[int64], values ...int64) error {
	for _, val := range values {
		if err := insert(ll.AddToEnd, platform.NewNode(val)); err != nil {
			return err
		}
	}
	return nil
}

func snapshot(w io.Writer, format string, ll *platform.LinkedList[int64]) error {
	c, err := parser.NewCodec[int64](format)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	data, err := c.Encode(ll)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	decoded, err := c.Decode(data)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Snapshot (%s, %d bytes) round-trips: %v\n", format, len(data), decoded.Equal(ll))
	return nil
}

func section(w io.Writer, title string, ll *platform.LinkedList[int64]) {
	_, _ = fmt.Fprintf(w, "%s..\n%s\n", title, ll)
}
