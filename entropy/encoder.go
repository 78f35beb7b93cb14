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
	"math/bits"
)

// Encoder streams bytes through a Model into a packed, byte-aligned bit
// stream written to w. It implements io.Writer: every call to Write
// consumes whole input bytes and emits output bytes only when the next
// codeword does not fit in the 64-bit buffer or a batched drain fires,
// holding the remaining bits until the next Write or Flush.
type Encoder struct {
	w         io.Writer
	model     *Model
	buffer    uint64
	remaining uint
	writtenIn int64
}

// NewEncoder returns an Encoder that writes the packed bit stream of m's
// codewords to w.
func NewEncoder(w io.Writer, m *Model) *Encoder {
	return &Encoder{w: w, model: m, buffer: 0, remaining: 64}
}

// WrittenIn reports the number of input bytes consumed so far.
func (e *Encoder) WrittenIn() int64 {
	return e.writtenIn
}

// put drains the single top byte of buffer to the sink.
func (e *Encoder) put() (int, error) {
	n, err := e.w.Write([]byte{byte(e.buffer >> 56)})
	e.buffer <<= 8
	e.remaining += 8
	return n, err
}

// cleanup opportunistically drains five high bytes at once when the buffer
// has accumulated enough to make one batched write cheaper than five
// single-byte ones. Purely a throughput optimization: the observable byte
// stream is identical whether or not this fires.
func (e *Encoder) cleanup() (int, error) {
	out := [5]byte{
		byte(e.buffer >> 56),
		byte(e.buffer >> 48),
		byte(e.buffer >> 40),
		byte(e.buffer >> 32),
		byte(e.buffer >> 24),
	}
	n, err := e.w.Write(out[:])
	e.buffer <<= 40
	e.remaining += 40
	return n, err
}

// Write encodes every byte of buf and returns the number of packed output
// bytes written to the sink plus the bytes still pending in the internal
// buffer (rounded as if the buffer's trailing zero bytes were already
// flushed).
func (e *Encoder) Write(buf []byte) (int, error) {
	written := 0
	for _, sym := range buf {
		e.writtenIn++
		code, length := e.model.Encode(sym)
		if length > 64 {
			return written, fmt.Errorf("entropy: encode %d: %w", sym, ErrInvalidCode)
		}
		for uint(length) > e.remaining {
			n, err := e.put()
			written += n
			if err != nil {
				return written, err
			}
		}
		e.remaining -= uint(length)
		e.buffer += code << e.remaining
		if e.buffer&0x0000_0000_00FF_0000 > 0 {
			n, err := e.cleanup()
			written += n
			if err != nil {
				return written, err
			}
		}
	}
	return written + 8 - bits.TrailingZeros64(e.buffer)/8, nil
}

// Flush emits every meaningful bit still held in buffer, padded with zero
// bits at the low end of the final byte, and empties the bit buffer;
// WrittenIn keeps its count. No length or padding-count field is appended: the
// decoder instead stops once it has emitted the original byte count
// carried in the container header.
func (e *Encoder) Flush() error {
	out := [8]byte{
		byte(e.buffer >> 56),
		byte(e.buffer >> 48),
		byte(e.buffer >> 40),
		byte(e.buffer >> 32),
		byte(e.buffer >> 24),
		byte(e.buffer >> 16),
		byte(e.buffer >> 8),
		byte(e.buffer),
	}
	outBytes := 8 - e.remaining/8
	if _, err := e.w.Write(out[:outBytes]); err != nil {
		return err
	}
	if f, ok := e.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return err
		}
	}
	e.buffer = 0
	e.remaining = 64
	return nil
}
