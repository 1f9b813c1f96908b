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

const (
	ErrorValidationSeverity   = "error"
	WarningValidationSeverity = "warning"
)

type ValidationWarning struct {
	Msg      string         `json:"msg"`
	Severity string         `json:"severity"`
	Meta     map[string]any `json:"meta,omitempty"`
}

func NewValidationWarning() *ValidationWarning {
	return &ValidationWarning{
		Severity: WarningValidationSeverity,
		Meta:     make(map[string]any),
	}
}

func (vw *ValidationWarning) SetMsg(msg string) *ValidationWarning {
	vw.Msg = msg
	return vw
}

func (vw *ValidationWarning) SetSeverity(severity string) *ValidationWarning {
	vw.Severity = severity
	return vw
}

func (vw *ValidationWarning) AddMeta(key string, value any) *ValidationWarning {
	vw.Meta[key] = value
	return vw
}

type ValidationWarnings []*ValidationWarning

func (vws ValidationWarnings) IsFatal() bool {
	for _, w := range vws {
		if w.Severity == ErrorValidationSeverity {
			return true
		}
	}
	return false
}
