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

	"github.com/go-faker/faker/v4"
)

type sampleSeed struct {
	Count     int64   `faker:"boundary_start=1, boundary_end=100"`
	Magnitude float64 `faker:"boundary_start=0.1, boundary_end=50"`
	Label     string  `faker:"word"`
}

// Sample generates n fake records for demo and smoke runs.
func Sample(n int) (Batch, error) {
	b := make(Batch, n)
	for i := range b {
		var s sampleSeed
		if err := faker.FakeData(&s); err != nil {
			return nil, fmt.Errorf("error generating sample record: %w", err)
		}
		b[i] = Record{
			Count:     s.Count,
			Magnitude: s.Magnitude,
			Label:     s.Label,
		}
	}
	return b, nil
}
