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

import "errors"

// ErrInvalidCode is returned by the Encoder when the Model reports a
// codeword length greater than 64 bits for some symbol.
var ErrInvalidCode = errors.New("entropy: codeword length exceeds 64 bits")

// ErrEmptyAlphabet is returned when a Model is built from a histogram with
// no present symbols at all.
var ErrEmptyAlphabet = errors.New("entropy: histogram has no present symbols")

// ErrCorruptPayload is returned by the Decoder when the payload is
// exhausted before the target byte count is reached.
var ErrCorruptPayload = errors.New("entropy: payload exhausted before goal byte count reached")
