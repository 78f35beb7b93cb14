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

// Package pzhf defines the top-level event/listener types shared by the
// codec's sub-packages and the CLI exit codes they map to.
//
// The codec itself lives in entropy (the canonical Huffman core) and
// container (the on-disk framing); this package only carries what both
// need to talk to an embedding program: progress events and exit codes.
package pzhf

// CLI exit codes, returned by cmd/pzhf on failure, covering the
// container/entropy error taxonomy this module's codec actually produces.
// There is no block-size, job, or multi-codec concept here, so codes for
// those never appear.
const (
	ErrUsage            = 1
	ErrOpenFile         = 2
	ErrCreateFile       = 3
	ErrOverwriteFile    = 4
	ErrInvalidMagic     = 5
	ErrTruncatedHeader  = 6
	ErrMalformedHeader  = 7
	ErrCorruptPayload   = 8
	ErrInvalidCode      = 9
	ErrIO               = 10
	ErrUnknown          = 127
)
