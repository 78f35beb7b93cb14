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

package container

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/mofkat/pzhf/entropy"
)

// Compress reads r to completion, builds a Model from its byte
// frequencies, and writes the framed container — magic, big-endian
// header_length, header bytes, then the Huffman payload — to w. It
// returns the number of source bytes read. Grounded on
// original_source/src/lib.rs's stream_compress_with_header_information,
// adapted from its two-pass (seek-back) file handling to a single
// in-memory buffer since Go's io.Reader contract has no universal rewind.
func Compress(w io.Writer, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("container: read source: %w", err)
	}

	model, err := entropy.FromSlice(data)
	if err != nil {
		return 0, fmt.Errorf("container: build model: %w", err)
	}

	header := HeaderFor(model, int64(len(data)))
	headerBytes, err := header.marshal()
	if err != nil {
		return 0, err
	}

	if _, err := io.WriteString(w, Magic); err != nil {
		return 0, fmt.Errorf("container: write magic: %w", err)
	}
	var lenPrefix [8]byte
	binary.BigEndian.PutUint64(lenPrefix[:], uint64(len(headerBytes)))
	if _, err := w.Write(lenPrefix[:]); err != nil {
		return 0, fmt.Errorf("container: write header length: %w", err)
	}
	if _, err := w.Write(headerBytes); err != nil {
		return 0, fmt.Errorf("container: write header: %w", err)
	}

	enc := entropy.NewEncoder(w, model)
	if _, err := enc.Write(data); err != nil {
		return 0, fmt.Errorf("container: encode payload: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return 0, fmt.Errorf("container: flush payload: %w", err)
	}
	return int64(len(data)), nil
}

// Decompress reads a framed container from r and writes the original
// bytes to w, returning the number of bytes written.
func Decompress(w io.Writer, r io.Reader) (int64, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return 0, fmt.Errorf("container: read magic: %w", ErrInvalidMagic)
	}
	if string(magic[:]) != Magic {
		return 0, fmt.Errorf("container: read magic %q: %w", magic, ErrInvalidMagic)
	}

	var lenPrefix [8]byte
	if _, err := io.ReadFull(r, lenPrefix[:]); err != nil {
		return 0, fmt.Errorf("container: read header length: %w", ErrTruncatedHeader)
	}
	headerLen := binary.BigEndian.Uint64(lenPrefix[:])

	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(r, headerBytes); err != nil {
		return 0, fmt.Errorf("container: read header: %w", ErrTruncatedHeader)
	}

	header, err := unmarshalHeader(headerBytes)
	if err != nil {
		return 0, err
	}

	model := header.Model()
	dec := entropy.NewDecoder(r, model, header.ReadBytes)
	n, err := io.Copy(w, dec)
	if err != nil {
		if errors.Is(err, entropy.ErrCorruptPayload) {
			return n, fmt.Errorf("container: decode payload: %w", ErrCorruptPayload)
		}
		return n, fmt.Errorf("container: decode payload: %w", err)
	}
	return n, nil
}
