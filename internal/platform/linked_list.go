package platform

import (
	"fmt"
	"hash/maphash"
	"iter"
	"strings"

	"simple-linkedlist/internal/platform/helper"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	EmptyListMarker = "<NULL>"
	ListSeparator   = " -> "
)

var hashSeed = maphash.MakeSeed()

type (
	Node[T comparable] struct {
		val  T
		next *Node[T]
		// owner and gen mark the chain the node is linked into; the tag is
		// stale once owner.gen moves past gen.
		owner *LinkedList[T]
		gen   uint64
	}

	// LinkedList is a singly linked, forward-only list. Its length is not
	// cached and it is not safe for concurrent use.
	LinkedList[T comparable] struct {
		id   string
		head *Node[T]
		gen  uint64
	}
)

func NewNode[T comparable](val T) *Node[T] {
	return &Node[T]{val: val}
}

func (n *Node[T]) Value() T {
	return n.val
}

func (n *Node[T]) SetValue(val T) {
	n.val = val
}

func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) String() string {
	if n.next != nil {
		return fmt.Sprintf("(%v, %p)", n.val, n.next)
	}
	return fmt.Sprintf("(%v, nil)", n.val)
}

func (n *Node[T]) attached() bool {
	return n.owner != nil && n.owner.gen == n.gen
}

func (n *Node[T]) detach() {
	n.next = nil
	n.owner = nil
	n.gen = 0
}

func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{
		id: generateID(),
	}
}

// NewLinkedListFrom builds a list whose traversal order matches values.
func NewLinkedListFrom[T comparable](values ...T) *LinkedList[T] {
	l := NewLinkedList[T]()
	var last *Node[T]
	for _, val := range values {
		node := NewNode(val)
		l.attach(node)
		if last == nil {
			l.head = node
		} else {
			last.next = node
		}
		last = node
	}
	return l
}

func generateID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func (l *LinkedList[T]) ID() string {
	return l.id
}

func (l *LinkedList[T]) log() *logrus.Entry {
	return helper.Log.WithField("list", l.id)
}

func (l *LinkedList[T]) attach(node *Node[T]) {
	node.owner = l
	node.gen = l.gen
}

// accept reports whether node may be spliced into l. Nodes still linked
// into a live chain, of this list or another, are refused.
func (l *LinkedList[T]) accept(node *Node[T]) bool {
	if node == nil {
		l.log().Debug("refusing nil node")
		return false
	}
	if node.attached() {
		l.log().Debugf("refusing node %v: already linked into list %s", node, node.owner.id)
		return false
	}
	return true
}

// All yields every value from head to the terminal node.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.next {
			if !yield(node.val) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Traverse(visit func(T)) {
	for val := range l.All() {
		if visit != nil {
			visit(val)
		}
	}
}

func (l *LinkedList[T]) Len() int {
	count := 0
	for node := l.head; node != nil; node = node.next {
		count++
	}
	return count
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0)
	for val := range l.All() {
		values = append(values, val)
	}
	return values
}

func (l *LinkedList[T]) String() string {
	if l.head == nil {
		return EmptyListMarker
	}
	var sb strings.Builder
	for node := l.head; node != nil; node = node.next {
		if node != l.head {
			sb.WriteString(ListSeparator)
		}
		_, _ = fmt.Fprint(&sb, node.val)
	}
	return sb.String()
}

// AddToFront makes node the new head. It returns false, leaving both
// chains untouched, when node is nil or still linked into a list.
func (l *LinkedList[T]) AddToFront(node *Node[T]) bool {
	if !l.accept(node) {
		return false
	}
	node.next = l.head
	l.attach(node)
	l.head = node
	return true
}

// AddToEnd appends node after the last node, discarding any link the
// node still carries. Same refusal rules as AddToFront.
func (l *LinkedList[T]) AddToEnd(node *Node[T]) bool {
	if !l.accept(node) {
		return false
	}
	node.next = nil
	l.attach(node)
	if l.head == nil {
		l.head = node
		return true
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = node
	return true
}

// DeleteFront unlinks the head and returns it, or nil on an empty list.
func (l *LinkedList[T]) DeleteFront() *Node[T] {
	if l.head == nil {
		return nil
	}
	node := l.head
	l.head = node.next
	node.detach()
	return node
}

// DeleteLast unlinks the last node and returns it, or nil on an empty list.
func (l *LinkedList[T]) DeleteLast() *Node[T] {
	if l.head == nil {
		return nil
	}
	if l.head.next == nil {
		node := l.head
		l.head = nil
		node.detach()
		return node
	}
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	node := prev.next
	prev.next = nil
	node.detach()
	return node
}

// DeleteByVal removes the first node, in traversal order, whose value
// equals val. Later occurrences are kept.
func (l *LinkedList[T]) DeleteByVal(val T) bool {
	var prev *Node[T]
	for node := l.head; node != nil; prev, node = node, node.next {
		if node.val != val {
			continue
		}
		if prev == nil {
			l.head = node.next
		} else {
			prev.next = node.next
		}
		node.detach()
		return true
	}
	return false
}

// DeleteDupes keeps the first occurrence of every value and removes the
// rest, preserving the order of survivors. It returns the number of
// nodes removed.
func (l *LinkedList[T]) DeleteDupes() int {
	if l.head == nil || l.head.next == nil {
		return 0
	}

	seen := map[T]struct{}{l.head.val: {}}
	kept := l.head
	removed := 0
	for node := l.head.next; node != nil; {
		next := node.next
		if _, ok := seen[node.val]; ok {
			kept.next = next
			node.detach()
			removed++
		} else {
			seen[node.val] = struct{}{}
			kept = node
		}
		node = next
	}

	l.log().Tracef("deleteDupes removed %d nodes", removed)
	return removed
}

// Clear drops the whole chain. Dropped nodes become insertable again.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.gen++
	l.log().Trace("cleared")
}

// KthToLast returns the value k positions before the last element, with
// 0 meaning the last element. The bool is false when k is out of range.
func (l *LinkedList[T]) KthToLast(k int) (T, bool) {
	var zero T
	if l.head == nil || k < 0 {
		return zero, false
	}

	var candidate *Node[T]
	idx := 0
	for node := l.head; node != nil; node = node.next {
		if idx == k {
			candidate = l.head
		} else if idx > k {
			candidate = candidate.next
		}
		idx++
	}

	if candidate == nil {
		return zero, false
	}
	return candidate.val, true
}

func (l *LinkedList[T]) FrontValue() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.val, true
}

func (l *LinkedList[T]) Front() *Node[T] {
	return l.head
}

// Equal reports whether both lists hold the same values in the same
// order. A list is always equal to itself; nil is never equal to a list.
func (l *LinkedList[T]) Equal(other *LinkedList[T]) bool {
	if l == other {
		return true
	}
	if l == nil || other == nil {
		return false
	}
	a, b := l.head, other.head
	for a != nil && b != nil {
		if a.val != b.val {
			return false
		}
		a, b = a.next, b.next
	}
	return a == nil && b == nil
}

// Hash combines element hashes in traversal order. Lists that are Equal
// hash equal within one process. A nil list hashes like an empty one.
func (l *LinkedList[T]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	if l == nil {
		return h.Sum64()
	}
	for node := l.head; node != nil; node = node.next {
		maphash.WriteComparable(&h, node.val)
	}
	return h.Sum64()
}
