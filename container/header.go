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
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/mofkat/pzhf/entropy"
)

// Magic is the 4-byte value every compressed stream starts with.
const Magic = "pzhf"

// Header is the in-memory record a stream's framing carries:
// { magic, btree, sentinel, readbytes }. Entries plays the role of the
// ordered map keyed by left-justified canonical codeword; Go has no
// built-in ordered-map type, so a key-sorted slice stands in for it,
// grounded on original_source/src/huffman/header.rs's Header struct.
type Header struct {
	Magic     [4]byte
	Entries   []entropy.MapEntry
	Sentinel  int
	ReadBytes int64
}

// HeaderFor builds the Header describing m, with readBytes the original
// (uncompressed) byte count of the stream m was built from.
func HeaderFor(m *entropy.Model, readBytes int64) Header {
	var h Header
	copy(h.Magic[:], Magic)
	h.Entries = m.OrderedMap()
	h.Sentinel = m.Sentinel()
	h.ReadBytes = readBytes
	return h
}

// Model reconstructs the entropy.Model this Header describes.
func (h Header) Model() *entropy.Model {
	return entropy.FromOrderedMap(h.Entries, h.Sentinel)
}

// marshal produces a deterministic binary encoding of h. gob is the
// serialization commitment this module makes: no third-party binary codec
// appears anywhere in the retrieval pack for this niche (see DESIGN.md),
// and gob needs no schema/tags to round-trip a fixed Go struct.
func (h Header) marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(h); err != nil {
		return nil, fmt.Errorf("container: encode header: %w", err)
	}
	return buf.Bytes(), nil
}

func unmarshalHeader(data []byte) (Header, error) {
	var h Header
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&h); err != nil {
		return Header{}, fmt.Errorf("container: decode header: %w", ErrMalformedHeader)
	}
	return h, nil
}
