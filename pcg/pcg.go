// Package pcg is an internal package used by github.com/addrummond/ordskiplist.
// It is the default source of the random bits that decide how many levels a
// skip list node gets. Adapted from
// https://raw.githubusercontent.com/MichaelTJones/pcg/d8d8f855137947b55fa38d4fe7489ed05bdc14fd/pcg32.go
package pcg

// PCG Random Number Generation
// Developed by Melissa O'Neill <oneill@pcg-random.org>
// Paper and details at http://www.pcg-random.org
// Ported to Go by Michael Jones <michael.jones@gmail.com>

// Copyright 2018 Michael T. Jones
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for
// the specific language governing permissions and limitations under the License.

import (
	"encoding/binary"
	"math"

	"github.com/spaolacci/murmur3"
)

const multiplier = 0x5851f42d4c957f2d // 6364136223846793005

// Source is a PCG32 generator. The zero value is uninitialized; call Seed
// before drawing from it, or use New.
type Source struct {
	state     uint64
	increment uint64
}

// New returns a Source seeded with the given values.
func New(seed1, seed2 uint64) *Source {
	var s Source
	s.Seed(seed1, seed2)
	return &s
}

// NewFromString returns a Source seeded from an arbitrary string. Equal
// strings give equal sequences.
func NewFromString(seed string) *Source {
	return New(SeedFromString(seed))
}

// IsUninitialized returns true iff Seed has never been called.
func (p *Source) IsUninitialized() bool {
	return p.state == 0
}

// Seed resets the generator. The state is forced odd so that a seeded Source
// is never mistaken for an uninitialized one.
func (p *Source) Seed(state, sequence uint64) {
	p.increment = (sequence << 1) | 1
	p.state = ((state+p.increment)*multiplier + p.increment) | 1
}

// Uint32 returns the next 32 uniformly distributed bits.
func (p *Source) Uint32() uint32 {
	// Advance 64-bit linear congruential generator to new state
	old := p.state
	p.state = old*multiplier + p.increment

	// Confuse and permute 32-bit output from old state
	xorShifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorShifted >> rot) | (xorShifted << ((-rot) & 31))
}

// Bounded returns a uniformly distributed value in [0, bound). It returns 0
// when bound is 0.
func (p *Source) Bounded(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	threshold := -bound % bound
	for {
		r := p.Uint32()
		if r >= threshold {
			return r % bound
		}
	}
}

// Intn is Bounded for ints. It panics if n <= 0 or n > math.MaxUint32.
func (p *Source) Intn(n int) int {
	if n <= 0 {
		panic("pcg: Intn called with n <= 0")
	}
	if uint64(n) > math.MaxUint32 {
		panic("pcg: Intn called with n > math.MaxUint32")
	}
	return int(p.Bounded(uint32(n)))
}

// SeedFromString derives a pair of seeds from a string using murmur3.
func SeedFromString(s string) (uint64, uint64) {
	return SeedFromBytes([]byte(s))
}

// SeedFromBytes derives a pair of seeds from arbitrary bytes using murmur3.
func SeedFromBytes(b []byte) (uint64, uint64) {
	return murmur3.Sum128(b)
}

// SeedFromUint64 derives a pair of seeds from a single integer. Nearby
// integers give unrelated seeds.
func SeedFromUint64(v uint64) (uint64, uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return SeedFromBytes(b[:])
}
