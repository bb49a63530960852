package ordskiplist

import (
	"fmt"
	"strings"
)

// LevelCounts returns the number of levels of each element, in order.
func (l *OSkipList[T]) LevelCounts() []int {
	counts := make([]int, 0, l.size)
	for n := l.nodes[head].levels[0].forward; n != head; n = l.nodes[n].levels[0].forward {
		counts = append(counts, len(l.nodes[n].levels))
	}
	return counts
}

// DebugString renders every level of the OSkipList, sparsest first, showing
// the span of each link.
func (l *OSkipList[T]) DebugString() string {
	var s strings.Builder

	fmt.Fprintf(&s, "OSkipList (length %v, height %v):\n", l.size, l.height)
	for lvl := l.height - 1; lvl >= 0; lvl-- {
		fmt.Fprintf(&s, "%2d: head", lvl)
		for n := head; ; {
			lv := l.nodes[n].levels[lvl]
			fmt.Fprintf(&s, " -%d-> ", lv.span)
			if lv.forward == head {
				s.WriteString("end")
				break
			}
			fmt.Fprintf(&s, "%v", l.nodes[lv.forward].value)
			n = lv.forward
		}
		s.WriteString("\n")
	}

	return s.String()
}

func check[T any](l *OSkipList[T]) {
	if !debugChecks {
		return
	}
	if err := verify(l); err != nil {
		panic(fmt.Sprintf("Internal error: %v\n%s", err, l.DebugString()))
	}
}

// verify checks every structural invariant of the OSkipList. It runs in
// O(n log n) time.
func verify[T any](l *OSkipList[T]) error {
	hd := l.nodes[head]
	if l.height < 1 || len(hd.levels) != l.height {
		return fmt.Errorf("head has %d levels, height is %d", len(hd.levels), l.height)
	}
	if l.size > 1<<(l.height+1) {
		return fmt.Errorf("length %d too large for height %d", l.size, l.height)
	}
	if l.height > 1 && l.size < 1<<l.height {
		return fmt.Errorf("length %d too small for height %d", l.size, l.height)
	}

	ranks := map[handle]int{head: 0}
	prev := head
	rank := 0
	for n := hd.levels[0].forward; n != head; n = l.nodes[n].levels[0].forward {
		rank++
		if _, seen := ranks[n]; seen || rank > l.size {
			return fmt.Errorf("level 0 does not terminate after %d elements", l.size)
		}
		ranks[n] = rank

		nd := l.nodes[n]
		if len(nd.levels) < 1 || len(nd.levels) > l.height {
			return fmt.Errorf("element %d has %d levels, height is %d", rank-1, len(nd.levels), l.height)
		}
		if nd.backward != prev {
			return fmt.Errorf("element %d has a wrong backward link", rank-1)
		}
		if prev != head && l.compare(l.nodes[prev].value, nd.value) > 0 {
			return fmt.Errorf("elements %d and %d are out of order", rank-2, rank-1)
		}
		prev = n
	}
	if rank != l.size {
		return fmt.Errorf("level 0 has %d elements, length is %d", rank, l.size)
	}
	if l.tail != prev {
		return fmt.Errorf("tail is not the last element")
	}

	for lvl := 0; lvl < l.height; lvl++ {
		for n := head; ; {
			lv := l.nodes[n].levels[lvl]
			to := l.size + 1
			if lv.forward != head {
				r, ok := ranks[lv.forward]
				if !ok {
					return fmt.Errorf("level %d links to a node missing from level 0", lvl)
				}
				if len(l.nodes[lv.forward].levels) <= lvl {
					return fmt.Errorf("level %d links to a node with only %d levels", lvl, len(l.nodes[lv.forward].levels))
				}
				to = r
			}
			if lv.span != to-ranks[n] {
				return fmt.Errorf("level %d span from rank %d is %d, want %d", lvl, ranks[n], lv.span, to-ranks[n])
			}
			if lv.forward == head {
				break
			}
			n = lv.forward
		}
	}

	return nil
}
