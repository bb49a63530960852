package ordskiplist

import (
	"fmt"
	"iter"
)

// All returns an iterator over the elements in ascending order.
func (l *OSkipList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.nodes[head].levels[0].forward; n != head; n = l.nodes[n].levels[0].forward {
			if !yield(l.nodes[n].value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in descending order. It
// follows backward links from the last element, so it costs the same as All.
func (l *OSkipList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != head; n = l.nodes[n].backward {
			if !yield(l.nodes[n].value) {
				return
			}
		}
	}
}

// IterateRange passes to f the index and value of each element in [from, to),
// in order, halting if f returns false. The 'from' argument must be >= 0 and
// <= the length of the OSkipList, as must 'to'. If to <= from, this is a no-op.
func (l *OSkipList[T]) IterateRange(from, to int, f func(int, T) bool) error {
	if from < 0 || from > l.size {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, from, l.size)
	}
	if to < 0 || to > l.size {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, to, l.size)
	}

	// Returning early for this case saves the cost of finding the 'from' node.
	if to <= from {
		return nil
	}

	var chainBuf [maxHeight]handle
	var ranksBuf [maxHeight]int
	chain, ranks := chainBuf[:l.height], ranksBuf[:l.height]
	seek(l, chain, ranks, from)

	n := l.nodes[chain[0]].levels[0].forward
	for i := from; i < to; i++ {
		if !f(i, l.nodes[n].value) {
			return nil
		}
		n = l.nodes[n].levels[0].forward
	}
	return nil
}

// Iterate passes each element to f in ascending order, halting if f returns
// false.
func (l *OSkipList[T]) Iterate(f func(T) bool) {
	for v := range l.All() {
		if !f(v) {
			return
		}
	}
}

// IterateI is like Iterate but also passes the index of each element.
func (l *OSkipList[T]) IterateI(f func(int, T) bool) {
	i := 0
	for v := range l.All() {
		if !f(i, v) {
			return
		}
		i++
	}
}

// IterateReverse passes each element to f in descending order, halting if f
// returns false.
func (l *OSkipList[T]) IterateReverse(f func(T) bool) {
	for v := range l.Backward() {
		if !f(v) {
			return
		}
	}
}

// ForAll is like Iterate except that the iteration always continues to the
// end.
func (l *OSkipList[T]) ForAll(f func(T)) {
	for v := range l.All() {
		f(v)
	}
}

// ForAllI is like IterateI except that the iteration always continues to the
// end.
func (l *OSkipList[T]) ForAllI(f func(int, T)) {
	i := 0
	for v := range l.All() {
		f(i, v)
		i++
	}
}

// Values returns the elements in ascending order as a new slice.
func (l *OSkipList[T]) Values() []T {
	vs := make([]T, 0, l.size)
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

// CopyToSlice copies the elements in ascending order to slice, which must
// have room for Length() elements.
func (l *OSkipList[T]) CopyToSlice(slice []T) {
	i := 0
	for v := range l.All() {
		slice[i] = v
		i++
	}
}
