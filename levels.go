package ordskiplist

import (
	"encoding/binary"
	"unsafe"

	"github.com/addrummond/ordskiplist/pcg"
)

func fastSeed[T any](l *OSkipList[T]) {
	// Use the address of the OSkipList to seed the RNG. This is not ideal,
	// but it's cheap, and address space randomization means that it varies
	// between executions. Hashing spreads the few bits that actually vary
	// over the whole seed.
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(uintptr(unsafe.Pointer(l))))
	seed1, seed2 := pcg.SeedFromBytes(b[:])
	l.rand.Seed(seed1, seed2)
}

func source[T any](l *OSkipList[T]) BitSource {
	if l.src != nil {
		return l.src
	}
	if l.rand.IsUninitialized() {
		fastSeed(l)
	}
	return &l.rand
}

// coin returns one fair random bit. Bits are drawn from the source 32 at a
// time.
func coin[T any](l *OSkipList[T]) bool {
	if l.nBits == 0 {
		l.bits = source(l).Uint32()
		l.nBits = 32
	}
	b := l.bits&1 == 1
	l.bits >>= 1
	l.nBits--
	return b
}

// randomLevels draws the level count of a new node: one plus the number of
// consecutive heads, never more than the current height.
func randomLevels[T any](l *OSkipList[T]) int {
	n := 1
	for n < l.height && coin(l) {
		n++
	}
	return n
}

// promotion is the state used when deciding which nodes of one level also
// appear on the level above. The first candidate is always promoted, a
// promotion decided by a coin flip is followed by a rejection, and a rejection
// decided by a coin flip is followed by a promotion. Runs of unpromoted nodes
// are therefore never longer than two.
type promotion uint8

const (
	mustPromote promotion = iota
	mayPromote
	mustNotPromote
)

func promote[T any](l *OSkipList[T], p *promotion) bool {
	switch *p {
	case mustPromote:
		*p = mayPromote
		return true
	case mayPromote:
		if coin(l) {
			*p = mustNotPromote
			return true
		}
		*p = mustPromote
		return false
	default:
		*p = mayPromote
		return false
	}
}

// grow adds a new top level. The head always gets it; the nodes on the
// current top lane are promoted according to the promotion discipline.
func grow[T any](l *OSkipList[T]) {
	if l.height >= maxHeight {
		return
	}

	top := l.height - 1
	hd := &l.nodes[head]
	hd.levels = append(hd.levels, level{forward: head, span: hd.levels[top].span})

	prev := head
	state := mustPromote
	for n := l.nodes[head].levels[top].forward; n != head; {
		nd := &l.nodes[n]
		lv := nd.levels[top]
		if promote(l, &state) {
			nd.levels = append(nd.levels, level{forward: head, span: lv.span})
			l.nodes[prev].levels[top+1].forward = n
			prev = n
		} else {
			l.nodes[prev].levels[top+1].span += lv.span
		}
		n = lv.forward
	}

	l.height++
	l.logger.Debug("ordskiplist: height grown", "height", l.height, "length", l.size)
}

// shrink discards the top level. The level below already accounts for every
// position, so the discarded spans need no folding.
func shrink[T any](l *OSkipList[T]) {
	top := l.height - 1
	for n := head; ; {
		nd := &l.nodes[n]
		next := nd.levels[top].forward
		nd.levels = nd.levels[:top:top]
		if next == head {
			break
		}
		n = next
	}

	l.height--
	l.logger.Debug("ordskiplist: height shrunk", "height", l.height, "length", l.size)
}

// Preen rebuilds every level above level 0 from scratch, restoring the
// expected distribution of node levels after many insertions and removals.
// The elements and their order are unchanged. Preen also compacts the
// internal node storage so that nodes are laid out in order, which makes
// subsequent iteration more cache friendly. Preen runs in O(n) time.
func (l *OSkipList[T]) Preen() {
	old := l.nodes
	nodes := make([]node[T], l.size+1)
	nodes[head] = node[T]{levels: make([]level, l.height), backward: head}

	// Handles in the new storage equal ranks, which makes spans a simple
	// difference of handles.
	var lastBuf [maxHeight]handle
	var stateBuf [maxHeight]promotion
	last := lastBuf[:l.height]
	state := stateBuf[:l.height]

	prev := head
	h := head
	for n := old[head].levels[0].forward; n != head; n = old[n].levels[0].forward {
		h++

		k := 1
		for k < l.height && promote(l, &state[k]) {
			k++
		}

		nodes[h] = node[T]{
			value:    old[n].value,
			levels:   make([]level, k),
			backward: prev,
		}
		for lvl := 0; lvl < k; lvl++ {
			nodes[last[lvl]].levels[lvl] = level{forward: h, span: int(h - last[lvl])}
			last[lvl] = h
		}
		prev = h
	}

	for lvl := range last {
		nodes[last[lvl]].levels[lvl] = level{forward: head, span: l.size + 1 - int(last[lvl])}
	}

	l.nodes = nodes
	l.free = nil
	l.tail = prev

	l.logger.Debug("ordskiplist: preened", "height", l.height, "length", l.size)
	check(l)
}
