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
	"fmt"

	"github.com/blorptools/blorpify/internal/batch"
	"github.com/blorptools/blorpify/internal/domains"
	"github.com/blorptools/blorpify/internal/transformers"
	"github.com/blorptools/blorpify/internal/transformers/utils"
)

// Step is one transformer of the chain together with its optional when
// condition.
type Step struct {
	Transformer utils.Transformer
	When        *batch.WhenCond
}

// BatchTransformer applies a transformer chain to every record of a batch in
// sequence order and keeps the processed flag. The chain is fixed at
// construction, the flag has no reset.
type BatchTransformer struct {
	steps     []*Step
	processed bool
}

func NewBatchTransformer(steps ...*Step) *BatchTransformer {
	return &BatchTransformer{
		steps: steps,
	}
}

// NewScaleBatchTransformer creates the canonical single step chain: the Scale
// transformer with the provided scale factor and the default label prefix.
func NewScaleBatchTransformer(scaleFactor int64) *BatchTransformer {
	return NewBatchTransformer(&Step{
		Transformer: transformers.NewScaleTransformer(scaleFactor, ""),
	})
}

// NewBatchTransformerFromConfig builds the chain from the config entries,
// resolving each transformer by name in the registry and compiling its when
// condition.
func NewBatchTransformerFromConfig(
	ctx context.Context, registry *utils.TransformerRegistry, cfgs []*domains.TransformerConfig,
) (*BatchTransformer, utils.ValidationWarnings, error) {

	var totalWarnings utils.ValidationWarnings
	steps := make([]*Step, 0, len(cfgs))

	for _, cfg := range cfgs {
		def, ok := registry.Get(cfg.Name)
		if !ok {
			return nil, nil, fmt.Errorf(`unknown transformer name "%s"`, cfg.Name)
		}

		t, warnings, err := def.Instance(ctx, cfg.Params)
		if err != nil {
			return nil, nil, fmt.Errorf(`error instancing "%s" transformer: %w`, cfg.Name, err)
		}
		totalWarnings = append(totalWarnings, warnings...)
		if totalWarnings.IsFatal() {
			return nil, totalWarnings, nil
		}

		when, err := batch.NewWhenCond(cfg.When)
		if err != nil {
			return nil, nil, fmt.Errorf(`error compiling "%s" transformer condition: %w`, cfg.Name, err)
		}

		steps = append(steps, &Step{Transformer: t, When: when})
	}

	return NewBatchTransformer(steps...), totalWarnings, nil
}

// TransformBatch mutates every record of the batch in place, in sequence
// order, and sets the processed flag afterwards. The flag is set also for an
// empty batch. Repeated calls compound: the transform is not idempotent.
func (bt *BatchTransformer) TransformBatch(ctx context.Context, b batch.Batch) error {
	for _, s := range bt.steps {
		if err := s.Transformer.Init(ctx); err != nil {
			return fmt.Errorf("error initializing transformer: %w", err)
		}

		for i := range b {
			if s.When != nil {
				ok, err := s.When.Evaluate(&b[i])
				if err != nil {
					return fmt.Errorf("error evaluating when condition on record %d: %w", i, err)
				}
				if !ok {
					continue
				}
			}
			if _, err := s.Transformer.Transform(ctx, &b[i]); err != nil {
				return fmt.Errorf("error transforming record %d: %w", i, err)
			}
		}

		if err := s.Transformer.Done(ctx); err != nil {
			return fmt.Errorf("error closing transformer: %w", err)
		}
	}
	bt.processed = true
	return nil
}

// IsProcessed reports whether TransformBatch has completed at least once.
func (bt *BatchTransformer) IsProcessed() bool {
	return bt.processed
}
