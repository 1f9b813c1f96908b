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
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a batch from a yaml or json records file. The format is
// chosen by the file extension.
func LoadFromFile(filePath string) (Batch, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening records file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing records file")
		}
	}()

	var b Batch
	switch ext := path.Ext(filePath); ext {
	case ".json":
		if err = json.NewDecoder(f).Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding json records file: %w", err)
		}
	case ".yaml", ".yml":
		if err = yaml.NewDecoder(f).Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding yaml records file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported records file extension \"%s\"", ext)
	}
	return b, nil
}
