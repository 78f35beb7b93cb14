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

// Package internal holds plumbing the codec core treats as an external
// collaborator: histogram construction is a trivial counting pass, not
// part of the Huffman core itself.
package internal

// ComputeHistogram counts the byte frequencies of block into a 256-bin
// histogram, unrolled by 16 to keep the hot loop branch-free. Grounded on
// the order-0 branch of flanglet-kanzi-go/v2/internal/Global.go's
// ComputeHistogram, trimmed of its order-1 and running-total parameters:
// this module's Model only ever needs one order-0 pass over a whole
// stream. entropy.FromSlice calls it directly; entropy.FromReader calls it
// once per chunk read and folds the partial counts together.
func ComputeHistogram(block []byte) [256]int {
	var freqs [256]int
	end16 := len(block) &^ 15

	for i := 0; i < end16; i += 16 {
		d := block[i : i+16]
		freqs[d[0]]++
		freqs[d[1]]++
		freqs[d[2]]++
		freqs[d[3]]++
		freqs[d[4]]++
		freqs[d[5]]++
		freqs[d[6]]++
		freqs[d[7]]++
		freqs[d[8]]++
		freqs[d[9]]++
		freqs[d[10]]++
		freqs[d[11]]++
		freqs[d[12]]++
		freqs[d[13]]++
		freqs[d[14]]++
		freqs[d[15]]++
	}

	for i := end16; i < len(block); i++ {
		freqs[block[i]]++
	}

	return freqs
}
