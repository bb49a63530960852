// sliceutils is an internal package providing a sorted slice model of an
// OSkipList, and random operation sequences to run against both. It is used by
// tests and by the bench command.
package sliceutils

import (
	"fmt"
	"sort"

	"github.com/addrummond/ordskiplist/pcg"
)

type elemType = int

// SliceAdd inserts elem after every element equal to it.
func SliceAdd(a *[]elemType, elem elemType) {
	i := sort.Search(len(*a), func(i int) bool { return (*a)[i] > elem })
	*a = append(*a, 0)
	copy((*a)[i+1:], (*a)[i:])
	(*a)[i] = elem
}

// SliceIndex returns the index of the first element equal to elem, or -1.
func SliceIndex(a []elemType, elem elemType) int {
	i := sort.SearchInts(a, elem)
	if i < len(a) && a[i] == elem {
		return i
	}
	return -1
}

// SliceRemoveValue removes the first element equal to elem and reports
// whether there was one.
func SliceRemoveValue(a *[]elemType, elem elemType) bool {
	i := SliceIndex(*a, elem)
	if i < 0 {
		return false
	}
	SliceRemove(a, i)
	return true
}

// SliceRemove removes and returns the element at index.
func SliceRemove(a *[]elemType, index int) elemType {
	v := (*a)[index]
	copy((*a)[index:], (*a)[index+1:])
	*a = (*a)[:len(*a)-1]
	return v
}

type OpKind int

const (
	OpAdd OpKind = iota
	OpRemove
	OpDeleteAt
	OpPopFront
	OpPop
	OpPreen
)

type Op struct {
	Kind  OpKind
	Index int // may be negative, counting back from the end
	Elem  elemType
}

// ApplyOpToSlice applies op to a and reports whether it succeeded. Failing
// ops (removing an absent value, popping an empty slice) leave a unchanged.
func ApplyOpToSlice(op *Op, a *[]elemType) bool {
	switch op.Kind {
	case OpAdd:
		SliceAdd(a, op.Elem)
	case OpRemove:
		return SliceRemoveValue(a, op.Elem)
	case OpDeleteAt:
		i := op.Index
		if i < -len(*a) || i >= len(*a) {
			return false
		}
		if i < 0 {
			i += len(*a)
		}
		SliceRemove(a, i)
	case OpPopFront:
		if len(*a) == 0 {
			return false
		}
		SliceRemove(a, 0)
	case OpPop:
		if len(*a) == 0 {
			return false
		}
		SliceRemove(a, len(*a)-1)
	}
	return true
}

func PrintOp(op *Op) string {
	switch op.Kind {
	case OpAdd:
		return fmt.Sprintf("Add %v\n", op.Elem)
	case OpRemove:
		return fmt.Sprintf("Remove value %v\n", op.Elem)
	case OpDeleteAt:
		return fmt.Sprintf("Delete element at index %v\n", op.Index)
	case OpPopFront:
		return "Pop front\n"
	case OpPop:
		return "Pop back\n"
	case OpPreen:
		return "Preen\n"
	default:
		panic("Unrecognized op")
	}
}

// GenOps generates n random operations with elements in [0, maxElem). Adds
// are about as likely as removals, so the length of the model wanders up and
// down. Most removals and deletions target elements that are present; the
// rest fail.
func GenOps(n int, maxElem int, src *pcg.Source) []Op {
	ops := make([]Op, 0, n)
	a := make([]elemType, 0)
	for i := 0; i < n; i++ {
		op := GenOp(a, maxElem, src)
		ApplyOpToSlice(&op, &a)
		ops = append(ops, op)
	}
	return ops
}

// GenOp generates one random operation suited to the current contents of the
// model a.
func GenOp(a []elemType, maxElem int, src *pcg.Source) Op {
	r := src.Intn(100)
	switch {
	case r < 50 || len(a) == 0:
		return Op{Kind: OpAdd, Elem: src.Intn(maxElem)}
	case r < 70:
		if src.Intn(4) == 0 {
			return Op{Kind: OpRemove, Elem: src.Intn(maxElem)}
		}
		return Op{Kind: OpRemove, Elem: a[src.Intn(len(a))]}
	case r < 85:
		// Occasionally out of range.
		return Op{Kind: OpDeleteAt, Index: src.Intn(2*len(a)+2) - len(a) - 1}
	case r < 92:
		return Op{Kind: OpPopFront}
	case r < 99:
		return Op{Kind: OpPop}
	default:
		return Op{Kind: OpPreen}
	}
}
