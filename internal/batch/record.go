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

// Record attribute names as they appear in config files and when conditions.
const (
	CountAttrName     = "count"
	MagnitudeAttrName = "magnitude"
	LabelAttrName     = "label"
)

// Record is the mutable unit processed by the batch transformer. Each record
// is owned solely by the batch that contains it.
type Record struct {
	Count     int64   `mapstructure:"count" yaml:"count" json:"count"`
	Magnitude float64 `mapstructure:"magnitude" yaml:"magnitude" json:"magnitude"`
	Label     string  `mapstructure:"label" yaml:"label" json:"label"`
}

// Batch is an ordered sequence of records processed together. Transformers
// mutate the records in place, the sequence itself is never reallocated.
type Batch []Record
