package sliceutils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/addrummond/ordskiplist/pcg"
)

func TestSliceAdd(t *testing.T) {
	var a []int
	for _, v := range []int{3, 1, 2, 2, 0} {
		SliceAdd(&a, v)
	}
	assert.Equal(t, []int{0, 1, 2, 2, 3}, a)
	assert.Equal(t, 2, SliceIndex(a, 2))
	assert.Equal(t, -1, SliceIndex(a, 5))

	assert.True(t, SliceRemoveValue(&a, 2))
	assert.False(t, SliceRemoveValue(&a, 7))
	assert.Equal(t, []int{0, 1, 2, 3}, a)
	assert.Equal(t, 0, SliceRemove(&a, 0))
	assert.Equal(t, []int{1, 2, 3}, a)
}

func TestApplyOpToSlice(t *testing.T) {
	a := []int{1, 2, 3}
	assert.True(t, ApplyOpToSlice(&Op{Kind: OpDeleteAt, Index: -1}, &a))
	assert.Equal(t, []int{1, 2}, a)
	assert.False(t, ApplyOpToSlice(&Op{Kind: OpDeleteAt, Index: 2}, &a))
	assert.True(t, ApplyOpToSlice(&Op{Kind: OpPopFront}, &a))
	assert.True(t, ApplyOpToSlice(&Op{Kind: OpPop}, &a))
	assert.False(t, ApplyOpToSlice(&Op{Kind: OpPop}, &a))
	assert.False(t, ApplyOpToSlice(&Op{Kind: OpPopFront}, &a))
	assert.Empty(t, a)
}

func TestGenOps(t *testing.T) {
	ops := GenOps(1000, 20, pcg.New(1, 2))
	assert.Len(t, ops, 1000)

	kinds := map[OpKind]int{}
	a := make([]int, 0)
	for _, o := range ops {
		kinds[o.Kind]++
		ApplyOpToSlice(&o, &a)
		if !sort.IntsAreSorted(a) {
			t.Fatalf("model unsorted after %s", PrintOp(&o))
		}
	}
	for _, k := range []OpKind{OpAdd, OpRemove, OpDeleteAt, OpPopFront, OpPop} {
		assert.Positive(t, kinds[k], "no ops of kind %v", k)
	}
}
