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

package pipeline

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blorptools/blorpify/internal/batch"
	"github.com/blorptools/blorpify/internal/domains"
	"github.com/blorptools/blorpify/internal/transformers/utils"
)

func testBatch() batch.Batch {
	return batch.Batch{
		{Count: 10, Magnitude: 2.5, Label: "narf"},
		{Count: 20, Magnitude: 4.8, Label: "zort"},
		{Count: 30, Magnitude: 6.1, Label: "poit"},
	}
}

func TestBatchTransformer_TransformBatch(t *testing.T) {
	bt := NewScaleBatchTransformer(7)
	records := testBatch()

	err := bt.TransformBatch(context.Background(), records)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, int64(70), records[0].Count)
	assert.InDelta(t, 2.5+math.Pi*70, records[0].Magnitude, 1e-9)
	assert.Equal(t, "blorpified_narf", records[0].Label)

	// Order is preserved.
	assert.Equal(t, "blorpified_zort", records[1].Label)
	assert.Equal(t, "blorpified_poit", records[2].Label)
	assert.Equal(t, int64(140), records[1].Count)
	assert.Equal(t, int64(210), records[2].Count)
}

func TestBatchTransformer_TransformBatch_notIdempotent(t *testing.T) {
	bt := NewScaleBatchTransformer(7)
	records := testBatch()

	require.NoError(t, bt.TransformBatch(context.Background(), records))
	firstMagnitude := records[0].Magnitude
	require.NoError(t, bt.TransformBatch(context.Background(), records))

	// The second pass re-multiplies the already scaled count and stacks the
	// label prefix.
	assert.Equal(t, int64(490), records[0].Count)
	assert.InDelta(t, firstMagnitude+math.Pi*490, records[0].Magnitude, 1e-9)
	assert.Equal(t, "blorpified_blorpified_narf", records[0].Label)
	assert.True(t, bt.IsProcessed())
}

func TestBatchTransformer_IsProcessed(t *testing.T) {
	bt := NewScaleBatchTransformer(7)
	require.False(t, bt.IsProcessed())

	require.NoError(t, bt.TransformBatch(context.Background(), testBatch()))
	require.True(t, bt.IsProcessed())
}

func TestBatchTransformer_IsProcessed_emptyBatch(t *testing.T) {
	bt := NewScaleBatchTransformer(7)
	require.False(t, bt.IsProcessed())

	require.NoError(t, bt.TransformBatch(context.Background(), batch.Batch{}))
	require.True(t, bt.IsProcessed())
}

func TestNewBatchTransformerFromConfig(t *testing.T) {
	cfgs := []*domains.TransformerConfig{
		{
			Name: "Scale",
			Params: map[string]utils.ParamsValue{
				"scale_factor": utils.ParamsValue("7"),
			},
		},
	}

	bt, warnings, err := NewBatchTransformerFromConfig(context.Background(), utils.DefaultTransformerRegistry, cfgs)
	require.NoError(t, err)
	require.Empty(t, warnings)

	records := testBatch()
	require.NoError(t, bt.TransformBatch(context.Background(), records))
	assert.Equal(t, int64(70), records[0].Count)
	assert.Equal(t, "blorpified_narf", records[0].Label)
}

func TestNewBatchTransformerFromConfig_unknownName(t *testing.T) {
	cfgs := []*domains.TransformerConfig{
		{Name: "DoesNotExist"},
	}

	_, _, err := NewBatchTransformerFromConfig(context.Background(), utils.DefaultTransformerRegistry, cfgs)
	require.Error(t, err)
}

func TestBatchTransformer_TransformBatch_whenCondition(t *testing.T) {
	cfgs := []*domains.TransformerConfig{
		{
			Name: "Scale",
			When: "record.count > 15",
			Params: map[string]utils.ParamsValue{
				"scale_factor": utils.ParamsValue("7"),
			},
		},
	}

	bt, warnings, err := NewBatchTransformerFromConfig(context.Background(), utils.DefaultTransformerRegistry, cfgs)
	require.NoError(t, err)
	require.Empty(t, warnings)

	records := testBatch()
	require.NoError(t, bt.TransformBatch(context.Background(), records))

	// The first record does not match the condition and stays untouched.
	assert.Equal(t, int64(10), records[0].Count)
	assert.Equal(t, "narf", records[0].Label)
	assert.Equal(t, int64(140), records[1].Count)
	assert.Equal(t, int64(210), records[2].Count)
	assert.True(t, bt.IsProcessed())
}
