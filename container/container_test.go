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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	source := []byte(
		"the quick brown fox jumps over the lazy dog. " +
			"pack my box with five dozen liquor jugs. " +
			"how vexingly quick daft zebras jump!",
	)

	var compressed bytes.Buffer
	n, err := Compress(&compressed, bytes.NewReader(source))
	require.NoError(t, err)
	require.Equal(t, int64(len(source)), n)

	var restored bytes.Buffer
	m, err := Decompress(&restored, bytes.NewReader(compressed.Bytes()))
	require.NoError(t, err)
	require.Equal(t, int64(len(source)), m)
	require.Equal(t, source, restored.Bytes())
}

func TestCompressDecompressRoundTripRandomBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	source := make([]byte, 20000)
	rng.Read(source)

	var compressed bytes.Buffer
	_, err := Compress(&compressed, bytes.NewReader(source))
	require.NoError(t, err)

	var restored bytes.Buffer
	_, err = Decompress(&restored, bytes.NewReader(compressed.Bytes()))
	require.NoError(t, err)
	require.Equal(t, source, restored.Bytes())
}

func TestCompressEmptySourceFails(t *testing.T) {
	var compressed bytes.Buffer
	_, err := Compress(&compressed, bytes.NewReader(nil))
	require.Error(t, err)
}

func TestDecompressRejectsInvalidMagic(t *testing.T) {
	var restored bytes.Buffer
	_, err := Decompress(&restored, bytes.NewReader([]byte("nope-this-is-not-pzhf")))
	require.ErrorIs(t, err, ErrInvalidMagic)
}

func TestDecompressRejectsTruncatedHeaderLength(t *testing.T) {
	var restored bytes.Buffer
	_, err := Decompress(&restored, bytes.NewReader([]byte(Magic+"\x00\x00")))
	require.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestDecompressRejectsTruncatedHeaderBody(t *testing.T) {
	var compressed bytes.Buffer
	_, err := Compress(&compressed, bytes.NewReader([]byte("hello, world")))
	require.NoError(t, err)

	// Keep the magic and length prefix but chop the header bytes short.
	truncated := compressed.Bytes()[:12+4]
	var restored bytes.Buffer
	_, err = Decompress(&restored, bytes.NewReader(truncated))
	require.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestDecompressRejectsCorruptPayload(t *testing.T) {
	var compressed bytes.Buffer
	_, err := Compress(&compressed, bytes.NewReader([]byte("the quick brown fox jumps over the lazy dog")))
	require.NoError(t, err)

	truncated := compressed.Bytes()[:compressed.Len()-2]
	var restored bytes.Buffer
	_, err = Decompress(&restored, bytes.NewReader(truncated))
	require.ErrorIs(t, err, ErrCorruptPayload)
}
