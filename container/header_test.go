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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mofkat/pzhf/entropy"
)

func TestHeaderRoundTrip(t *testing.T) {
	m, err := entropy.FromSlice([]byte("the quick brown fox jumps over the lazy dog"))
	require.NoError(t, err)

	want := HeaderFor(m, 44)
	data, err := want.marshal()
	require.NoError(t, err)

	got, err := unmarshalHeader(data)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestHeaderModelReconstructsEncoding(t *testing.T) {
	m, err := entropy.FromSlice([]byte("mississippi river runs through the valley"))
	require.NoError(t, err)

	h := HeaderFor(m, 42)
	rebuilt := h.Model()

	for _, b := range m.Symbols() {
		wantCode, wantLen := m.Encode(b)
		gotCode, gotLen := rebuilt.Encode(b)
		require.Equal(t, wantCode, gotCode)
		require.Equal(t, wantLen, gotLen)
	}
}

func TestUnmarshalHeaderRejectsGarbage(t *testing.T) {
	_, err := unmarshalHeader([]byte{0xff, 0x00, 0x13, 0x37})
	require.ErrorIs(t, err, ErrMalformedHeader)
}
