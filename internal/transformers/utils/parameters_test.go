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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticParameter_Scan(t *testing.T) {
	pd := MustNewParameterDefinition("value", "test parameter")

	t.Run("int64", func(t *testing.T) {
		var v int64
		err := NewStaticParameter(pd, ParamsValue("42")).Scan(&v)
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)
	})

	t.Run("string", func(t *testing.T) {
		var v string
		err := NewStaticParameter(pd, ParamsValue("blorpified_")).Scan(&v)
		require.NoError(t, err)
		assert.Equal(t, "blorpified_", v)
	})

	t.Run("float64", func(t *testing.T) {
		var v float64
		err := NewStaticParameter(pd, ParamsValue("3.5")).Scan(&v)
		require.NoError(t, err)
		assert.InDelta(t, 3.5, v, 1e-9)
	})

	t.Run("bool", func(t *testing.T) {
		var v bool
		err := NewStaticParameter(pd, ParamsValue("true")).Scan(&v)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("slice via yaml", func(t *testing.T) {
		var v []string
		err := NewStaticParameter(pd, ParamsValue(`["a", "b"]`)).Scan(&v)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, v)
	})

	t.Run("invalid int", func(t *testing.T) {
		var v int64
		err := NewStaticParameter(pd, ParamsValue("narf")).Scan(&v)
		require.Error(t, err)
	})

	t.Run("empty value leaves dest", func(t *testing.T) {
		v := int64(11)
		err := NewStaticParameter(pd, nil).Scan(&v)
		require.NoError(t, err)
		assert.Equal(t, int64(11), v)
	})
}

func TestInitParameters(t *testing.T) {
	defs := []*ParameterDefinition{
		MustNewParameterDefinition("scale_factor", "multiplier").SetRequired(true),
		MustNewParameterDefinition("label_prefix", "prefix").SetDefaultValue(ParamsValue("blorpified_")),
	}

	t.Run("defaults applied", func(t *testing.T) {
		params, warnings, err := InitParameters(defs, map[string]ParamsValue{
			"scale_factor": ParamsValue("7"),
		})
		require.NoError(t, err)
		require.Empty(t, warnings)

		var prefix string
		require.NoError(t, params["label_prefix"].Scan(&prefix))
		assert.Equal(t, "blorpified_", prefix)
	})

	t.Run("missing required is fatal", func(t *testing.T) {
		_, warnings, err := InitParameters(defs, map[string]ParamsValue{})
		require.NoError(t, err)
		require.True(t, warnings.IsFatal())
	})

	t.Run("unknown parameter warns", func(t *testing.T) {
		_, warnings, err := InitParameters(defs, map[string]ParamsValue{
			"scale_factor": ParamsValue("7"),
			"unexpected":   ParamsValue("1"),
		})
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.False(t, warnings.IsFatal())
	})
}
