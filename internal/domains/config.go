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

package domains

import (
	"sync"

	"github.com/blorptools/blorpify/internal/batch"
	"github.com/blorptools/blorpify/internal/transformers/utils"
)

var (
	Cfg  *Config
	once sync.Once
)

const (
	// DefaultScaleFactor matches the original reference run of the tool.
	DefaultScaleFactor = 7
	// DefaultScoreBias couples the score to the same configured scale value.
	DefaultScoreBias = 7
)

func NewConfig() *Config {
	once.Do(
		func() {
			Cfg = &Config{
				Transform: TransformConfig{
					ScaleFactor: DefaultScaleFactor,
				},
				Score: ScoreConfig{
					Bias: DefaultScoreBias,
				},
			}
		},
	)
	return Cfg
}

type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log" json:"log"`
	Transform TransformConfig `mapstructure:"transform" yaml:"transform" json:"transform"`
	Score     ScoreConfig     `mapstructure:"score" yaml:"score" json:"score"`
}

type LogConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

type TransformConfig struct {
	// ScaleFactor is used when no explicit transformer chain is configured:
	// the tool then runs the single Scale transformer with this factor.
	ScaleFactor  int64                `mapstructure:"scale_factor" yaml:"scale_factor" json:"scale_factor,omitempty"`
	InputFile    string               `mapstructure:"input_file" yaml:"input_file" json:"input_file,omitempty"`
	Sample       int                  `mapstructure:"sample" yaml:"sample" json:"sample,omitempty"`
	Records      batch.Batch          `mapstructure:"records" yaml:"records" json:"records,omitempty"`
	Transformers []*TransformerConfig `mapstructure:"transformers" yaml:"transformers" json:"transformers,omitempty"`
}

type TransformerConfig struct {
	Name   string                       `mapstructure:"name" yaml:"name" json:"name"`
	When   string                       `mapstructure:"when" yaml:"when" json:"when,omitempty"`
	Params map[string]utils.ParamsValue `mapstructure:"params" yaml:"params" json:"params,omitempty"`
}

type ScoreConfig struct {
	Bias int32 `mapstructure:"bias" yaml:"bias" json:"bias,omitempty"`
}
