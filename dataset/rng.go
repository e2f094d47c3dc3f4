// SPDX-License-Identifier: MIT

package dataset

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// NewRand returns a deterministic source; seed 0 means defaultSeed.
// A *rand.Rand is not safe for concurrent use.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// streamSeed mixes a base seed and a stream id with the SplitMix64
// finalizer so that every (strategy, n, i) gets an independent stream
// regardless of generation order.
func streamSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// instanceStream packs strategy index, size and ordinal into a stream id.
func instanceStream(strategy, n, i int) uint64 {
	return uint64(strategy)<<48 | uint64(n&0xffffff)<<24 | uint64(i&0xffffff)
}
