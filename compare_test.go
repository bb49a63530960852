package ordskiplist

import (
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalStrings(t *testing.T) {
	sl := New(NaturalStrings, WithSeed(randSeed1, randSeed2))
	sl.AddAll("file10", "file2", "file1", "file2")

	assert.Equal(t, []string{"file1", "file2", "file2", "file10"}, sl.Values())
	assert.Equal(t, 0, NaturalStrings("a", "a"))
	assert.Negative(t, NaturalStrings("a9", "a10"))
	assert.Positive(t, NaturalStrings("a10", "a9"))
}

// Chunks with equal numeric value but different spellings.
var leadingZeroStrings = []string{
	"", "0", "00", "7", "07", "007", "a", "a0", "a1", "a01", "a001", "a1b",
	"a01b", "a1b2", "a1b02", "a01b2", "a10", "a010", "b", "b1", "b01", "1a",
	"01a",
}

func TestNaturalStringsIsTotalOrder(t *testing.T) {
	for _, a := range leadingZeroStrings {
		assert.Equal(t, 0, NaturalStrings(a, a), "%q", a)
		for _, b := range leadingZeroStrings {
			ab, ba := NaturalStrings(a, b), NaturalStrings(b, a)
			if a != b {
				assert.NotZero(t, ab, "%q %q", a, b)
			}
			assert.Equal(t, ab, -ba, "antisymmetry %q %q", a, b)
			for _, c := range leadingZeroStrings {
				if ab < 0 && NaturalStrings(b, c) < 0 {
					assert.Negative(t, NaturalStrings(a, c), "transitivity %q %q %q", a, b, c)
				}
			}
		}
	}
}

func TestNaturalStringsListRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(randSeed1, randSeed2))
	for trial := 0; trial < 20; trial++ {
		sl := New(NaturalStrings, WithSeed(randSeed1, uint64(trial)))
		var added []string
		for i := 0; i < 100; i++ {
			s := leadingZeroStrings[rnd.IntN(len(leadingZeroStrings))]
			sl.Add(s)
			added = append(added, s)
		}
		requireValid(t, sl)
		for _, s := range added {
			require.True(t, sl.Contains(s), "trial %d: Contains(%q) after Add", trial, s)
		}
		for _, s := range added {
			require.NoError(t, sl.Remove(s), "trial %d: Remove(%q)", trial, s)
		}
		requireValid(t, sl)
		assert.Equal(t, 0, sl.Length())
	}
}

func TestReverse(t *testing.T) {
	sl := New(Reverse(strings.Compare), WithSeed(randSeed1, randSeed2))
	sl.AddAll("b", "c", "a")
	assert.Equal(t, []string{"c", "b", "a"}, sl.Values())
}

func TestRandomStrings(t *testing.T) {
	sl := New(strings.Compare, WithSeed(randSeed1, randSeed2))
	var names []string
	for i := 0; i < 500; i++ {
		name := randomdata.SillyName()
		names = append(names, name)
		sl.Add(name)
	}
	sort.Strings(names)

	requireValid(t, sl)
	assert.Equal(t, names, sl.Values())

	for _, name := range names[:50] {
		i, err := sl.Index(name)
		require.NoError(t, err)
		assert.Equal(t, sort.SearchStrings(names, name), i)
	}

	backward := slices.Collect(sl.Backward())
	slices.Reverse(backward)
	assert.Equal(t, names, backward)
}
