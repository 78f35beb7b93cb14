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

// Package container implements the on-disk framing that ties a Huffman
// payload to the canonical code used to produce it: magic bytes, a
// length-prefixed serialized header, then the payload itself.
package container

import "errors"

// ErrInvalidMagic is returned when a stream's leading 4 bytes are not "pzhf".
var ErrInvalidMagic = errors.New("container: invalid magic")

// ErrTruncatedHeader is returned when fewer than header_length bytes are
// available after the magic and length prefix.
var ErrTruncatedHeader = errors.New("container: truncated header")

// ErrMalformedHeader is returned when header bytes fail to deserialize.
var ErrMalformedHeader = errors.New("container: malformed header")

// ErrCorruptPayload is returned when the payload ends before the header's
// declared byte count has been decoded.
var ErrCorruptPayload = errors.New("container: corrupt payload")
