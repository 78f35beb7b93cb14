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

// Package entropy implements the canonical Huffman codec core: length
// construction, canonical codeword assignment, the Model that packages
// both, and the streaming bit-level encoder and decoder built on top of it.
package entropy

import (
	"fmt"
	"io"
	"sort"

	"github.com/mofkat/pzhf/internal"
)

// Model is the immutable triple (codewords, lengths, sentinel) shared by an
// Encoder and a Decoder for the lifetime of one stream. It is built once,
// from a histogram or directly from the bytes it will encode, and never
// mutated afterward.
type Model struct {
	codewords [256]uint64
	lengths   [256]uint8
	sentinel  int
	symbols   []byte
}

// MapEntry is one row of the canonical-lookup map: key is the codeword of
// Symbol left-shifted into the model's sentinel-bit field.
type MapEntry struct {
	Key    uint64
	Symbol byte
	Length uint8
}

// FromHistogram builds canonical codeword lengths and assigns codewords
// over a 256-bin histogram and packages the result into a Model. Byte
// values with a zero count are absent; they receive codeword 0, length 1,
// and are never returned by Symbols.
//
// An alphabet of a single present symbol is special-cased with a
// hard-coded length of 1, since the in-place length algorithm requires at
// least two entries.
func FromHistogram(hist [256]int) (*Model, error) {
	present := sortPresentSymbols(hist)
	if len(present) == 0 {
		return nil, fmt.Errorf("entropy: FromHistogram: %w", ErrEmptyAlphabet)
	}

	m := &Model{}
	for b := range m.lengths {
		m.lengths[b] = 1
	}

	if len(present) == 1 {
		b := present[0].symbol
		m.codewords[b] = 0
		m.lengths[b] = 1
		m.sentinel = 1
		m.symbols = []byte{b}
		return m, nil
	}

	counts := make([]int, len(present))
	for i, sc := range present {
		counts[i] = sc.count
	}
	buildLengths(counts)
	small, _ := assignCanonicalCodes(counts)

	m.sentinel = counts[len(counts)-1]
	m.symbols = make([]byte, len(present))
	for i, sc := range present {
		m.codewords[sc.symbol] = uint64(small[i])
		m.lengths[sc.symbol] = uint8(counts[i])
		m.symbols[i] = sc.symbol
	}
	sort.Slice(m.symbols, func(i, j int) bool { return m.symbols[i] < m.symbols[j] })
	return m, nil
}

// FromSlice builds a Model from the byte frequencies of data.
func FromSlice(data []byte) (*Model, error) {
	return FromHistogram(internal.ComputeHistogram(data))
}

// FromReader builds a Model from the byte frequencies of every byte r
// yields, without retaining the bytes read.
func FromReader(r io.Reader) (*Model, error) {
	var hist [256]int
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := internal.ComputeHistogram(buf[:n])
			for b, c := range chunk {
				hist[b] += c
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("entropy: FromReader: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return FromHistogram(hist)
}

// FromOrderedMap rebuilds a Model from a canonical-lookup map and its
// sentinel, the inverse of (*Model).OrderedMap. Used by the container
// package to reconstruct the Model a payload was encoded against from its
// deserialized header.
func FromOrderedMap(entries []MapEntry, sentinel int) *Model {
	m := &Model{sentinel: sentinel}
	for b := range m.lengths {
		m.lengths[b] = 1
	}
	m.symbols = make([]byte, len(entries))
	for i, e := range entries {
		shift := uint(sentinel) - uint(e.Length)
		m.codewords[e.Symbol] = e.Key >> shift
		m.lengths[e.Symbol] = e.Length
		m.symbols[i] = e.Symbol
	}
	sort.Slice(m.symbols, func(i, j int) bool { return m.symbols[i] < m.symbols[j] })
	return m
}

// Encode returns the canonical codeword and its bit length for symbol. The
// caller must never pass a symbol absent from the Model's alphabet; the
// returned (0, 1) pair for such a symbol exists only to keep the table
// well-formed, not to be emitted.
func (m *Model) Encode(symbol byte) (code uint64, length int) {
	return m.codewords[symbol], int(m.lengths[symbol])
}

// Sentinel returns the maximum codeword length across present symbols.
func (m *Model) Sentinel() int {
	return m.sentinel
}

// Symbols returns the sorted alphabet actually present in the Model.
func (m *Model) Symbols() []byte {
	return m.symbols
}

// OrderedMap builds the left-justified canonical-lookup map: an ordered
// (by Key) slice of (key, symbol, length) rows, where Key is the codeword
// left-shifted so that all keys live in a common Sentinel()-bit space. It
// is consumed by the Decoder to build its succinct rank-based lookup.
func (m *Model) OrderedMap() []MapEntry {
	entries := make([]MapEntry, len(m.symbols))
	shift := uint(m.sentinel)
	for i, b := range m.symbols {
		l := uint(m.lengths[b])
		key := m.codewords[b] << (shift - l)
		entries[i] = MapEntry{Key: key, Symbol: b, Length: m.lengths[b]}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// String reports the alphabet size and sentinel without dumping the full
// table, suitable for a single structured log line.
func (m *Model) String() string {
	return fmt.Sprintf("Model{symbols=%d sentinel=%d}", len(m.symbols), m.sentinel)
}
