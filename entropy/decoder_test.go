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
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoderThreeSymbolSynthetic(t *testing.T) {
	payload := []byte{117, 96}
	m := &Model{sentinel: 9, symbols: []byte{0, 1, 2}}
	m.codewords[0], m.lengths[0] = 0, 1
	m.codewords[1], m.lengths[1] = 3, 2
	m.codewords[2], m.lengths[2] = 342, 9

	got, err := DecodeAll(bytes.NewReader(payload), m, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2}, got)
}

func TestDecoderRoundTripAgainstEncoder(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox jumps again")
	m, err := FromSlice(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf, m)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Flush())

	got, err := DecodeAll(bytes.NewReader(buf.Bytes()), m, int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestDecoderBlockwiseReadMatchesSingleRead(t *testing.T) {
	data := []byte("mississippi river runs through the valley every single spring")
	m, err := FromSlice(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf, m)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Flush())

	dec := NewDecoder(bytes.NewReader(buf.Bytes()), m, int64(len(data)))
	var got []byte
	small := make([]byte, 3)
	for {
		n, err := dec.Read(small)
		got = append(got, small[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if n == 0 {
			break
		}
	}
	require.Equal(t, data, got)
}

func TestDecoderRankAndBinarySearchAgree(t *testing.T) {
	data := []byte("abracadabra, a rare case of recurring characters")
	m, err := FromSlice(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf, m)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Flush())

	rankOut, err := DecodeAll(bytes.NewReader(buf.Bytes()), m, int64(len(data)))
	require.NoError(t, err)

	bsDec := NewBinarySearchDecoder(bytes.NewReader(buf.Bytes()), m, int64(len(data)))
	bsOut := make([]byte, 0, len(data))
	chunk := make([]byte, 4096)
	for {
		n, err := bsDec.Read(chunk)
		bsOut = append(bsOut, chunk[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if n == 0 {
			break
		}
	}

	require.Equal(t, data, rankOut)
	require.Equal(t, data, bsOut)
	require.Equal(t, rankOut, bsOut)
}

func TestDecoderSingleSymbolAlphabet(t *testing.T) {
	data := bytes.Repeat([]byte{7}, 20)
	m, err := FromSlice(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf, m)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Flush())

	got, err := DecodeAll(bytes.NewReader(buf.Bytes()), m, int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestDecoderCorruptPayloadTruncated(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	m, err := FromSlice(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	enc := NewEncoder(&buf, m)
	_, err = enc.Write(data)
	require.NoError(t, err)
	require.NoError(t, enc.Flush())

	truncated := buf.Bytes()[:buf.Len()/2]
	_, err = DecodeAll(bytes.NewReader(truncated), m, int64(len(data)))
	require.ErrorIs(t, err, ErrCorruptPayload)
}
