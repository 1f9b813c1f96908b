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
	"fmt"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ParamsValue - raw parameter value as received from the config file.
type ParamsValue []byte

// ParameterDefinition describes one parameter of a transformer definition.
type ParameterDefinition struct {
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Required     bool        `json:"required"`
	DefaultValue ParamsValue `json:"default_value,omitempty"`
}

func MustNewParameterDefinition(name string, description string) *ParameterDefinition {
	if name == "" {
		panic("parameter name cannot be empty")
	}
	return &ParameterDefinition{
		Name:        name,
		Description: description,
	}
}

func (pd *ParameterDefinition) SetRequired(v bool) *ParameterDefinition {
	pd.Required = v
	return pd
}

func (pd *ParameterDefinition) SetDefaultValue(v ParamsValue) *ParameterDefinition {
	pd.DefaultValue = v
	return pd
}

// Parameterizer - the interface a transformer constructor uses to read its
// decoded parameters.
type Parameterizer interface {
	Scan(dest any) error
	IsEmpty() bool
	RawValue() ParamsValue
}

// StaticParameter holds a raw parameter value bound to its definition.
type StaticParameter struct {
	definition *ParameterDefinition
	rawValue   ParamsValue
}

func NewStaticParameter(definition *ParameterDefinition, rawValue ParamsValue) *StaticParameter {
	return &StaticParameter{
		definition: definition,
		rawValue:   rawValue,
	}
}

func (sp *StaticParameter) IsEmpty() bool {
	return len(sp.rawValue) == 0
}

func (sp *StaticParameter) RawValue() ParamsValue {
	return sp.rawValue
}

// Scan decodes the raw value into dest. Plain scalar destinations are cast
// from the textual value, anything else goes through the yaml decoder.
func (sp *StaticParameter) Scan(dest any) error {
	if dest == nil {
		return fmt.Errorf(`parameter "%s": dest cannot be nil`, sp.definition.Name)
	}
	if sp.IsEmpty() {
		return nil
	}

	var err error
	switch v := dest.(type) {
	case *string:
		*v = string(sp.rawValue)
	case *int:
		*v, err = cast.ToIntE(string(sp.rawValue))
	case *int32:
		*v, err = cast.ToInt32E(string(sp.rawValue))
	case *int64:
		*v, err = cast.ToInt64E(string(sp.rawValue))
	case *float64:
		*v, err = cast.ToFloat64E(string(sp.rawValue))
	case *bool:
		*v, err = cast.ToBoolE(string(sp.rawValue))
	default:
		err = yaml.Unmarshal(sp.rawValue, dest)
	}
	if err != nil {
		return fmt.Errorf(`parameter "%s": cannot scan value "%s": %w`, sp.definition.Name, string(sp.rawValue), err)
	}
	return nil
}

// InitParameters binds raw values to the parameter definitions, applying
// defaults and validating that required parameters are present. Unknown
// parameter names produce warnings.
func InitParameters(
	definitions []*ParameterDefinition, rawParams map[string]ParamsValue,
) (map[string]Parameterizer, ValidationWarnings, error) {

	var warnings ValidationWarnings
	params := make(map[string]Parameterizer, len(definitions))

	for _, pd := range definitions {
		rawValue, provided := rawParams[pd.Name]
		if !provided {
			if pd.Required {
				warnings = append(warnings, NewValidationWarning().
					SetSeverity(ErrorValidationSeverity).
					AddMeta("ParameterName", pd.Name).
					SetMsg("required parameter is not provided"))
				continue
			}
			rawValue = pd.DefaultValue
		}
		params[pd.Name] = NewStaticParameter(pd, rawValue)
	}

	for name := range rawParams {
		if _, ok := params[name]; !ok {
			warnings = append(warnings, NewValidationWarning().
				SetSeverity(WarningValidationSeverity).
				AddMeta("ParameterName", name).
				SetMsg("unknown parameter"))
		}
	}

	return params, warnings, nil
}
