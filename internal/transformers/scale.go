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
	"fmt"

	"github.com/blorptools/blorpify/internal/batch"
	"github.com/blorptools/blorpify/internal/transformers/utils"
	"github.com/blorptools/blorpify/pkg/transformers"
)

const ScaleTransformerName = "Scale"

var ScaleTransformerDefinition = utils.NewTransformerDefinition(
	utils.NewTransformerProperties(
		ScaleTransformerName,
		"Multiply the record count by the scale factor, shift the magnitude by pi times the updated count and prefix the label",
	),

	NewScaleTransformerFromParams,

	utils.MustNewParameterDefinition(
		"scale_factor",
		"integer multiplier applied to the record count",
	).SetRequired(true),

	utils.MustNewParameterDefinition(
		"label_prefix",
		"prefix prepended to the record label",
	).SetDefaultValue(utils.ParamsValue(transformers.DefaultLabelPrefix)),
)

// ScaleTransformer applies the fixed arithmetic transform to single records.
// The actual math lives in pkg/transformers, this type binds it to the
// record attributes and the parameter machinery.
type ScaleTransformer struct {
	t                  *transformers.ScaleTransformer
	affectedAttributes []string

	scaleFactorParam utils.Parameterizer
	labelPrefixParam utils.Parameterizer
}

// NewScaleTransformer creates the transformer directly, bypassing parameter
// decoding. Used by the library entry points.
func NewScaleTransformer(scaleFactor int64, labelPrefix string) *ScaleTransformer {
	return &ScaleTransformer{
		t: transformers.NewScaleTransformer(scaleFactor, labelPrefix),
		affectedAttributes: []string{
			batch.CountAttrName,
			batch.MagnitudeAttrName,
			batch.LabelAttrName,
		},
	}
}

func NewScaleTransformerFromParams(
	ctx context.Context, parameters map[string]utils.Parameterizer,
) (utils.Transformer, utils.ValidationWarnings, error) {

	var scaleFactor int64
	var labelPrefix string

	scaleFactorParam := parameters["scale_factor"]
	labelPrefixParam := parameters["label_prefix"]

	if err := scaleFactorParam.Scan(&scaleFactor); err != nil {
		return nil, nil, fmt.Errorf(`unable to scan "scale_factor" param: %w`, err)
	}

	if err := labelPrefixParam.Scan(&labelPrefix); err != nil {
		return nil, nil, fmt.Errorf(`unable to scan "label_prefix" param: %w`, err)
	}

	st := NewScaleTransformer(scaleFactor, labelPrefix)
	st.scaleFactorParam = scaleFactorParam
	st.labelPrefixParam = labelPrefixParam
	return st, nil, nil
}

func (st *ScaleTransformer) GetAffectedAttributes() []string {
	return st.affectedAttributes
}

func (st *ScaleTransformer) Init(ctx context.Context) error {
	return nil
}

func (st *ScaleTransformer) Done(ctx context.Context) error {
	return nil
}

func (st *ScaleTransformer) Transform(ctx context.Context, r *batch.Record) (*batch.Record, error) {
	r.Count, r.Magnitude, r.Label = st.t.Transform(r.Count, r.Magnitude, r.Label)
	return r, nil
}

func init() {
	utils.DefaultTransformerRegistry.MustRegister(ScaleTransformerDefinition)
}
