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

package utils

import (
	"context"
)

// NewTransformerFunc - make a new transformer instance. parameters is the map
// of the decoded parameters, find an appropriate parameter in the map by its
// name. All of them have been declared in the TransformerDefinition object.
type NewTransformerFunc func(ctx context.Context, parameters map[string]Parameterizer) (
	Transformer, ValidationWarnings, error,
)

type TransformerProperties struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Meta        map[string]any `json:"meta,omitempty"`
}

func NewTransformerProperties(name, description string) *TransformerProperties {
	return &TransformerProperties{
		Name:        name,
		Description: description,
		Meta:        make(map[string]any),
	}
}

func (tp *TransformerProperties) AddMeta(key string, value any) *TransformerProperties {
	tp.Meta[key] = value
	return tp
}

type TransformerDefinition struct {
	Properties *TransformerProperties `json:"properties"`
	New        NewTransformerFunc     `json:"-"`
	Parameters []*ParameterDefinition `json:"parameters"`
}

func NewTransformerDefinition(
	properties *TransformerProperties, newTransformerFunc NewTransformerFunc,
	parameters ...*ParameterDefinition,
) *TransformerDefinition {
	return &TransformerDefinition{
		Properties: properties,
		New:        newTransformerFunc,
		Parameters: parameters,
	}
}

// Instance decodes rawParams against the parameter definitions and creates a
// new transformer instance.
func (d *TransformerDefinition) Instance(
	ctx context.Context, rawParams map[string]ParamsValue,
) (Transformer, ValidationWarnings, error) {

	params, parametersWarnings, err := InitParameters(d.Parameters, rawParams)
	if err != nil {
		return nil, nil, err
	}
	if parametersWarnings.IsFatal() {
		return nil, parametersWarnings, nil
	}

	t, transformerWarnings, err := d.New(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	res := make(ValidationWarnings, 0, len(parametersWarnings)+len(transformerWarnings))
	res = append(res, parametersWarnings...)
	res = append(res, transformerWarnings...)
	return t, res, nil
}
