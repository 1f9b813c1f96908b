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

package transformers

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blorptools/blorpify/internal/batch"
	"github.com/blorptools/blorpify/internal/transformers/utils"
)

func TestScaleTransformer_Transform(t *testing.T) {
	transformer, warnings, err := ScaleTransformerDefinition.Instance(
		context.Background(),
		map[string]utils.ParamsValue{
			"scale_factor": utils.ParamsValue("7"),
		},
	)
	require.NoError(t, err)
	require.Empty(t, warnings)

	r := &batch.Record{Count: 10, Magnitude: 2.5, Label: "narf"}
	res, err := transformer.Transform(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(70), res.Count)
	assert.InDelta(t, 2.5+math.Pi*70, res.Magnitude, 1e-9)
	assert.Equal(t, "blorpified_narf", res.Label)
}

func TestScaleTransformer_Transform_customPrefix(t *testing.T) {
	transformer, warnings, err := ScaleTransformerDefinition.Instance(
		context.Background(),
		map[string]utils.ParamsValue{
			"scale_factor": utils.ParamsValue("2"),
			"label_prefix": utils.ParamsValue("mega_"),
		},
	)
	require.NoError(t, err)
	require.Empty(t, warnings)

	r := &batch.Record{Count: 1, Magnitude: 0, Label: "zort"}
	res, err := transformer.Transform(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "mega_zort", res.Label)
}

func TestScaleTransformer_Transform_requiredParameter(t *testing.T) {
	_, warnings, err := ScaleTransformerDefinition.Instance(
		context.Background(),
		map[string]utils.ParamsValue{},
	)
	require.NoError(t, err)
	require.True(t, warnings.IsFatal())
}

func TestScaleTransformer_GetAffectedAttributes(t *testing.T) {
	transformer := NewScaleTransformer(7, "")
	assert.ElementsMatch(t,
		[]string{batch.CountAttrName, batch.MagnitudeAttrName, batch.LabelAttrName},
		transformer.GetAffectedAttributes(),
	)
}
