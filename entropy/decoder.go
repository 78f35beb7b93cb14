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

import (
	"fmt"
	"io"
)

// Decoder reverses an Encoder's packed bit stream using a rank-based
// lookup indexed by the leading Sentinel() bits of a 64-bit buffer. It
// implements io.Reader: Read emits min(len(buf), goal-emitted) decoded
// bytes per call, preserving buffer state across calls so that chunked
// reads are byte-for-byte equivalent to one large read.
type Decoder struct {
	src      io.Reader
	table    symbolTable
	sentinel int
	shift    uint
	goal     int64
	emitted  int64
	buffer   uint64
	bitsLeft uint
	srcEOF   bool
	pending  []byte
	one      [1]byte
}

// NewDecoder returns a Decoder that reads the packed payload produced
// against m from src and stops once it has emitted goal bytes.
func NewDecoder(src io.Reader, m *Model, goal int64) *Decoder {
	return &Decoder{
		src:      src,
		table:    newRankTable(m.OrderedMap()),
		sentinel: m.Sentinel(),
		shift:    uint(64 - m.Sentinel()),
		goal:     goal,
		bitsLeft: 64,
	}
}

// NewBinarySearchDecoder is the same Decoder built on the alternate
// sorted-array binary-search symbolTable realization, provided so the two
// realizations can be tested for bit-exact agreement.
func NewBinarySearchDecoder(src io.Reader, m *Model, goal int64) *Decoder {
	return &Decoder{
		src:      src,
		table:    newBinarySearchTable(m.OrderedMap()),
		sentinel: m.Sentinel(),
		shift:    uint(64 - m.Sentinel()),
		goal:     goal,
		bitsLeft: 64,
	}
}

// decodeOne performs one lookup-and-shift step: look up the symbol whose
// codeword prefixes the buffer's leading bits, then shift those bits out.
func (d *Decoder) decodeOne() byte {
	q := d.buffer >> d.shift
	sym, length := d.table.lookup(q)
	d.buffer <<= uint(length)
	d.bitsLeft += uint(length)
	d.emitted++
	return sym
}

// readStep implements one per-input-byte operation: if there is room,
// place the next payload byte directly; otherwise drain decodable
// codewords into d.pending until there is room, then place the byte.
// Returns false once the payload source is exhausted.
func (d *Decoder) readStep() (bool, error) {
	for d.bitsLeft < 8 {
		if 64-d.bitsLeft < uint(d.sentinel) {
			return false, fmt.Errorf("entropy: decode: buffer underflow: %w", ErrCorruptPayload)
		}
		d.pending = append(d.pending, d.decodeOne())
	}
	n, err := d.src.Read(d.one[:])
	if n == 1 {
		d.buffer += uint64(d.one[0]) << (d.bitsLeft - 8)
		d.bitsLeft -= 8
		return true, nil
	}
	if err == nil || err == io.EOF {
		d.srcEOF = true
		return false, nil
	}
	return false, err
}

// Read implements io.Reader per the blockwise read contract.
func (d *Decoder) Read(buf []byte) (int, error) {
	if d.emitted >= d.goal && len(d.pending) == 0 {
		return 0, io.EOF
	}
	want := int64(len(buf))
	if remaining := d.goal - d.emitted + int64(len(d.pending)); want > remaining {
		want = remaining
	}

	for int64(len(d.pending)) < want && !d.srcEOF {
		if _, err := d.readStep(); err != nil {
			return 0, err
		}
	}
	// Drain phase: once the source is exhausted, keep decoding against
	// the buffered tail until goal is met. A codeword longer than the bits
	// still buffered means the payload ran out first.
	for d.srcEOF && int64(len(d.pending)) < want && d.emitted < d.goal {
		if _, length := d.table.lookup(d.buffer >> d.shift); uint(length) > 64-d.bitsLeft {
			return 0, fmt.Errorf("entropy: decode: %w", ErrCorruptPayload)
		}
		d.pending = append(d.pending, d.decodeOne())
	}
	if int64(len(d.pending)) < want {
		return 0, fmt.Errorf("entropy: decode: %w", ErrCorruptPayload)
	}
	n := copy(buf, d.pending[:want])
	d.pending = d.pending[want:]
	return n, nil
}

// DecodeAll reads src to completion against m, returning all goal bytes.
func DecodeAll(src io.Reader, m *Model, goal int64) ([]byte, error) {
	dec := NewDecoder(src, m, goal)
	out := make([]byte, 0, goal)
	buf := make([]byte, 4096)
	for {
		n, err := dec.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if n == 0 {
			return out, nil
		}
	}
}
