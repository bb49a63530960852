// Package ordskiplist provides a skip list based implementation of sorted
// sequences with O(log n) insertion, removal, rank lookup and indexing. The
// element type is arbitrary; ordering is given by a comparison function
// supplied when the OSkipList is created. Elements that compare equal are kept
// in the order in which they were added.
//
// Each node records, for every level it is on, how many positions its forward
// link skips. Summing these spans on the way down from the head gives the rank
// of any node, which is what makes indexing by position as cheap as searching
// by value.
//
// The height of an OSkipList follows its length. It grows by one level when
// the length exceeds 2^(height+1) and shrinks by one level when the length
// drops below 2^height. New nodes draw their level count from fair coin flips,
// capped at the current height. After long sequences of insertions and
// removals the distribution of levels can drift; Preen() rebuilds it.
//
// Each OSkipList draws random bits from a BitSource. By default this is a
// private PCG32 generator seeded from the address of the OSkipList. Use
// WithSeed(), WithSource(), Seed() or SeedFrom() for reproducible behavior.
//
// The fastest way to visit the elements in order is to use All(), Backward(),
// Iterate(), IterateI(), IterateReverse(), ForAll() or ForAllI(). The behavior
// of these methods is unspecified if the OSkipList is mutated while iterating.
// If you wish to mutate an OSkipList while iterating through it, iterate by
// index.
//
// An OSkipList is not safe for concurrent use. Callers sharing one between
// goroutines must hold a lock around every operation, including iteration.
package ordskiplist

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/addrummond/ordskiplist/pcg"
)

// maxHeight bounds the height of an OSkipList. A handle addresses at most
// 2^31 nodes, and the height only grows when the length exceeds
// 2^(height+1), so this is never reached in practice.
const maxHeight = 32

// BitSource supplies the random bits used to choose node levels. Each call to
// Uint32 must return 32 uniformly distributed bits. *pcg.Source and
// *math/rand/v2.Rand both satisfy BitSource.
type BitSource interface {
	Uint32() uint32
}

// OSkipList is an indexable sorted skip list. The zero value is not ready to
// use; create OSkipLists with New or NewOrdered.
type OSkipList[T any] struct {
	nodes  []node[T]
	free   []handle
	tail   handle
	height int
	size   int

	compare func(a, b T) int

	src   BitSource
	rand  pcg.Source
	bits  uint32
	nBits int

	logger *slog.Logger
}

// New creates an empty OSkipList ordered by compare, which must return a
// negative number if a < b, zero if a == b and a positive number if a > b,
// and must define a total order.
func New[T any](compare func(a, b T) int, opts ...Option) *OSkipList[T] {
	if compare == nil {
		panic("ordskiplist: New called with nil compare function")
	}

	var c config
	for _, opt := range opts {
		opt(&c)
	}

	l := &OSkipList[T]{
		compare: compare,
		src:     c.src,
		logger:  c.logger,
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	if c.seeded {
		l.Seed(c.seed1, c.seed2)
	}
	l.Clear()
	return l
}

// NewOrdered creates an empty OSkipList of an ordered type, using the natural
// ordering given by cmp.Compare.
func NewOrdered[T cmp.Ordered](opts ...Option) *OSkipList[T] {
	return New(cmp.Compare[T], opts...)
}

// Seed seeds the private random number generator of the OSkipList and stops
// any BitSource supplied with WithSource from being used. If Seed is called,
// it should be called immediately following creation of the OSkipList.
func (l *OSkipList[T]) Seed(seed1 uint64, seed2 uint64) {
	l.src = nil
	l.rand.Seed(seed1, seed2)
	l.bits, l.nBits = 0, 0
}

// SeedFrom makes the OSkipList draw random bits the way l2 would: it copies
// the state of l2's private generator, or shares l2's BitSource. If SeedFrom
// is called, it should be called immediately following creation of the
// OSkipList.
func (l *OSkipList[T]) SeedFrom(l2 *OSkipList[T]) {
	l.src = l2.src
	l.rand = l2.rand
	l.bits, l.nBits = 0, 0
}

// Length returns the number of elements in the OSkipList.
func (l *OSkipList[T]) Length() int {
	return l.size
}

// Height returns the current number of levels.
func (l *OSkipList[T]) Height() int {
	return l.height
}

// Clear empties an OSkipList. The random number generator state is kept.
func (l *OSkipList[T]) Clear() {
	l.nodes = []node[T]{newHead[T](1)}
	l.free = nil
	l.tail = head
	l.height = 1
	l.size = 0
}

// Copy copies the OSkipList. It does not rerandomize: the copy draws the same
// random bits as the original would have. If the original has not drawn any
// bits yet, its private generator is seeded first so that both start from
// the same state. Seed() and SeedFrom() may be called on the result prior to
// any other operations.
func (l *OSkipList[T]) Copy() *OSkipList[T] {
	if l.src == nil && l.rand.IsUninitialized() {
		fastSeed(l)
	}
	cp := *l
	cp.nodes = make([]node[T], len(l.nodes))
	for i, n := range l.nodes {
		n.levels = append([]level(nil), n.levels...)
		cp.nodes[i] = n
	}
	cp.free = append([]handle(nil), l.free...)
	return &cp
}

// Add inserts an element, after every existing element that compares equal
// to it.
func (l *OSkipList[T]) Add(elem T) {
	// Fixed-size buffers keep the walk state on the stack.
	var chainBuf [maxHeight]handle
	var ranksBuf [maxHeight]int
	chain, ranks := chainBuf[:l.height], ranksBuf[:l.height]
	walk(l, chain, ranks, func(_ int, v T) bool {
		return l.compare(v, elem) <= 0
	})

	nLevels := randomLevels(l)
	n := alloc(l, elem, nLevels)
	nd := &l.nodes[n]

	for lvl := 0; lvl < nLevels; lvl++ {
		prev := &l.nodes[chain[lvl]].levels[lvl]
		d := ranks[0] - ranks[lvl] // distance from chain[lvl] to chain[0]
		nd.levels[lvl] = level{forward: prev.forward, span: prev.span - d}
		*prev = level{forward: n, span: d + 1}
	}
	for lvl := nLevels; lvl < l.height; lvl++ {
		l.nodes[chain[lvl]].levels[lvl].span++
	}

	nd.backward = chain[0]
	if next := nd.levels[0].forward; next != head {
		l.nodes[next].backward = n
	} else {
		l.tail = n
	}

	l.size++
	if l.size > 1<<(l.height+1) {
		grow(l)
	}

	check(l)
}

// AddAll adds each of the given elements in turn.
func (l *OSkipList[T]) AddAll(elems ...T) {
	for _, e := range elems {
		l.Add(e)
	}
}

// Remove removes the first element that compares equal to elem. It returns an
// error wrapping ErrNotFound, and leaves the OSkipList unchanged, if there is
// no such element.
func (l *OSkipList[T]) Remove(elem T) error {
	var chainBuf [maxHeight]handle
	var ranksBuf [maxHeight]int
	chain, ranks := chainBuf[:l.height], ranksBuf[:l.height]
	if !findFirst(l, chain, ranks, elem) {
		return fmt.Errorf("%w: %v", ErrNotFound, elem)
	}
	unlink(l, chain)
	return nil
}

// Index returns the position of the first element that compares equal to
// elem, or an error wrapping ErrNotFound.
func (l *OSkipList[T]) Index(elem T) (int, error) {
	var chainBuf [maxHeight]handle
	var ranksBuf [maxHeight]int
	chain, ranks := chainBuf[:l.height], ranksBuf[:l.height]
	if !findFirst(l, chain, ranks, elem) {
		return -1, fmt.Errorf("%w: %v", ErrNotFound, elem)
	}
	return ranks[0], nil
}

// Contains reports whether some element compares equal to elem.
func (l *OSkipList[T]) Contains(elem T) bool {
	_, err := l.Index(elem)
	return err == nil
}

// Count returns the number of elements that compare equal to elem.
func (l *OSkipList[T]) Count(elem T) int {
	var chainBuf [maxHeight]handle
	var ranksBuf [maxHeight]int
	chain, ranks := chainBuf[:l.height], ranksBuf[:l.height]

	walk(l, chain, ranks, func(_ int, v T) bool {
		return l.compare(v, elem) < 0
	})
	before := ranks[0]
	walk(l, chain, ranks, func(_ int, v T) bool {
		return l.compare(v, elem) <= 0
	})
	return ranks[0] - before
}

// At retrieves the element at the specified index. Negative indices count
// back from the end, so At(-1) is the last element. An error wrapping
// ErrOutOfRange is returned if i is not in [-Length(), Length()).
func (l *OSkipList[T]) At(i int) (T, error) {
	i, err := l.normalize(i)
	if err != nil {
		var zero T
		return zero, err
	}

	var chainBuf [maxHeight]handle
	var ranksBuf [maxHeight]int
	chain, ranks := chainBuf[:l.height], ranksBuf[:l.height]
	seek(l, chain, ranks, i)
	return l.nodes[l.nodes[chain[0]].levels[0].forward].value, nil
}

// Front returns the first (smallest) element.
func (l *OSkipList[T]) Front() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.nodes[l.nodes[head].levels[0].forward].value, nil
}

// Back returns the last (largest) element.
func (l *OSkipList[T]) Back() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.nodes[l.tail].value, nil
}

// DeleteAt removes the element at the specified index. Negative indices count
// back from the end.
func (l *OSkipList[T]) DeleteAt(i int) error {
	_, err := l.removeAt(i)
	return err
}

// PopAt removes the element at the specified index and returns it. Negative
// indices count back from the end. An error wrapping ErrEmpty is returned if
// the OSkipList is empty.
func (l *OSkipList[T]) PopAt(i int) (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return l.removeAt(i)
}

// Pop removes the last element and returns it. The last node can be found
// through the tail, but its predecessors' spans on every level must be
// updated, so Pop walks from the head like PopAt and takes O(log n) time.
func (l *OSkipList[T]) Pop() (T, error) {
	return l.PopAt(-1)
}

// PopFront removes the first element and returns it. Every predecessor of the
// first node is the head, so no search is needed.
func (l *OSkipList[T]) PopFront() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	// head == 0, so the zero value of the buffer is a chain made of the head.
	var chainBuf [maxHeight]handle
	return unlink(l, chainBuf[:l.height]), nil
}

func (l *OSkipList[T]) removeAt(i int) (T, error) {
	i, err := l.normalize(i)
	if err != nil {
		var zero T
		return zero, err
	}

	var chainBuf [maxHeight]handle
	var ranksBuf [maxHeight]int
	chain, ranks := chainBuf[:l.height], ranksBuf[:l.height]
	seek(l, chain, ranks, i)
	return unlink(l, chain), nil
}

func (l *OSkipList[T]) normalize(i int) (int, error) {
	if i < -l.size || i >= l.size {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, l.size)
	}
	if i < 0 {
		i += l.size
	}
	return i, nil
}

// walk descends from the head at the top level to level 0. On each level it
// follows forward links while pred holds for the rank and value of the next
// node, then records the node it stopped at in chain and that node's rank in
// ranks. The head has rank 0 and the element at index i has rank i+1.
func walk[T any](l *OSkipList[T], chain []handle, ranks []int, pred func(rank int, v T) bool) {
	n := head
	rank := 0
	for lvl := l.height - 1; lvl >= 0; lvl-- {
		for {
			lv := l.nodes[n].levels[lvl]
			if lv.forward == head || !pred(rank+lv.span, l.nodes[lv.forward].value) {
				break
			}
			rank += lv.span
			n = lv.forward
		}
		chain[lvl] = n
		ranks[lvl] = rank
	}
}

// seek fills chain with the predecessors of the element at index i.
func seek[T any](l *OSkipList[T], chain []handle, ranks []int, i int) {
	walk(l, chain, ranks, func(rank int, _ T) bool {
		return rank <= i
	})
}

// findFirst fills chain with the predecessors of the first element equal to
// elem and reports whether there is such an element.
func findFirst[T any](l *OSkipList[T], chain []handle, ranks []int, elem T) bool {
	walk(l, chain, ranks, func(_ int, v T) bool {
		return l.compare(v, elem) < 0
	})
	n := l.nodes[chain[0]].levels[0].forward
	return n != head && l.compare(l.nodes[n].value, elem) == 0
}

// unlink removes the node following chain[0], given its predecessor on every
// level, and returns its value.
func unlink[T any](l *OSkipList[T], chain []handle) T {
	n := l.nodes[chain[0]].levels[0].forward
	if n == head {
		panic("Internal error in 'unlink': no node to remove")
	}
	nd := &l.nodes[n]

	for lvl := 0; lvl < l.height; lvl++ {
		prev := &l.nodes[chain[lvl]].levels[lvl]
		if lvl < len(nd.levels) {
			prev.forward = nd.levels[lvl].forward
			prev.span += nd.levels[lvl].span - 1
		} else {
			prev.span--
		}
	}

	if next := nd.levels[0].forward; next != head {
		l.nodes[next].backward = nd.backward
	} else {
		l.tail = nd.backward
	}

	v := nd.value
	release(l, n)

	l.size--
	if l.size < 1<<l.height && l.height > 1 {
		shrink(l)
	}

	check(l)
	return v
}
