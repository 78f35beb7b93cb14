/*
Copyright 2024 The pzhf Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package entropy

import "math/bits"

// symbolTable answers "largest key <= q" over the canonical-lookup map,
// returning the (symbol, length) pair stored at that key. Decoder is
// written against this interface so the succinct rank-based realization
// and the binary-search realization can be swapped and cross-tested for
// bit-exact agreement.
type symbolTable interface {
	lookup(q uint64) (symbol byte, length int)
}

type tableRow struct {
	symbol byte
	length uint8
}

// rankTable is the canonical realization: a bit vector with bits set at
// every key, wrapped in a rank-supporting structure giving rank1(p) in
// O(1) via a per-word cumulative popcount array. Grounded on
// original_source/src/huffman/decode/symboltable.rs's RsDict-backed
// SymbolTable; no succinct rank/bit-vector library appears in the
// retrieval pack, so the rank structure is hand-built on stdlib
// math/bits.OnesCount64 (see DESIGN.md).
type rankTable struct {
	words []uint64
	cum   []int // cum[i] = number of set bits in words[0:i]
	rows  []tableRow
}

func newRankTable(entries []MapEntry) *rankTable {
	maxKey := entries[len(entries)-1].Key
	nwords := int(maxKey/64) + 1
	words := make([]uint64, nwords)
	for _, e := range entries {
		words[e.Key/64] |= 1 << (e.Key % 64)
	}
	cum := make([]int, nwords+1)
	for i, w := range words {
		cum[i+1] = cum[i] + bits.OnesCount64(w)
	}
	rows := make([]tableRow, len(entries))
	for i, e := range entries {
		rows[i] = tableRow{symbol: e.Symbol, length: e.Length}
	}
	return &rankTable{words: words, cum: cum, rows: rows}
}

// rank1 returns the number of set bits at positions strictly less than p.
func (t *rankTable) rank1(p uint64) int {
	wordIdx := int(p / 64)
	if wordIdx >= len(t.words) {
		return t.cum[len(t.words)]
	}
	bitIdx := p % 64
	mask := (uint64(1) << bitIdx) - 1
	if bitIdx == 0 {
		mask = 0
	}
	return t.cum[wordIdx] + bits.OnesCount64(t.words[wordIdx]&mask)
}

func (t *rankTable) lookup(q uint64) (byte, int) {
	row := t.rows[t.rank1(q+1)-1]
	return row.symbol, int(row.length)
}

// binarySearchTable is an alternate realization: a plain sorted key array
// searched with a binary search for the largest key <= q. Shipped so it
// can be cross-tested bit-exact against rankTable; a production decoder
// would typically ship only one.
type binarySearchTable struct {
	keys []uint64
	rows []tableRow
}

func newBinarySearchTable(entries []MapEntry) *binarySearchTable {
	keys := make([]uint64, len(entries))
	rows := make([]tableRow, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		rows[i] = tableRow{symbol: e.Symbol, length: e.Length}
	}
	return &binarySearchTable{keys: keys, rows: rows}
}

func (t *binarySearchTable) lookup(q uint64) (byte, int) {
	// Bisect for the first index whose key is > q; the row just before it
	// holds the largest key <= q.
	lo, hi := 0, len(t.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.keys[mid] > q {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	row := t.rows[lo-1]
	return row.symbol, int(row.length)
}
