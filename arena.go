package ordskiplist

// Nodes are stored in a slice and refer to each other by index. Slot 0 is
// always the head sentinel, and a forward link pointing at the head marks the
// end of a lane, so no separate nil handle is needed.
type handle = int32

const head handle = 0

// maxArenaLen bounds the number of slots addressable by a handle.
const maxArenaLen = 1<<31 - 1

type level struct {
	forward handle
	span    int // number of level-0 positions skipped by forward
}

type node[T any] struct {
	value    T
	levels   []level // exactly one entry per level the node is on
	backward handle  // level 0 only; head for the first node
}

func alloc[T any](l *OSkipList[T], value T, nLevels int) handle {
	var h handle
	if n := len(l.free); n > 0 {
		h = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		if len(l.nodes) >= maxArenaLen {
			panic("Internal error in 'alloc': arena exhausted")
		}
		l.nodes = append(l.nodes, node[T]{})
		h = handle(len(l.nodes) - 1)
	}

	l.nodes[h] = node[T]{
		value:  value,
		levels: make([]level, nLevels),
	}
	return h
}

func release[T any](l *OSkipList[T], h handle) {
	// Zero the slot so that a released value can be garbage collected.
	l.nodes[h] = node[T]{}
	l.free = append(l.free, h)
}

func newHead[T any](height int) node[T] {
	levels := make([]level, height)
	for i := range levels {
		levels[i] = level{forward: head, span: 1}
	}
	return node[T]{levels: levels, backward: head}
}
