// Copyright 2025 Blorptools
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"fmt"

	"github.com/spaolacci/murmur3"
)

// Digest returns a murmur3 checksum over the batch content. Two batches with
// the same records in the same order produce the same digest.
func (b Batch) Digest() (uint32, error) {
	h := murmur3.New32()
	for i := range b {
		if _, err := fmt.Fprintf(h, "%d|%g|%s\n", b[i].Count, b[i].Magnitude, b[i].Label); err != nil {
			return 0, fmt.Errorf("error hashing record %d: %w", i, err)
		}
	}
	return h.Sum32(), nil
}
