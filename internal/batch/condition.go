// An expression handler for record level conditions. It is used to evaluate
// the when condition of a transformer against a single record.

package batch

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
)

const recordExprNamespace = "record"

// WhenCond - a condition that is evaluated to determine if the record should
// be transformed. An empty condition always matches.
type WhenCond struct {
	whenCond *vm.Program
	when     string
}

// NewWhenCond compiles the when condition. The record attributes are exposed
// under the "record" namespace, e.g. `record.count > 0`.
func NewWhenCond(when string) (*WhenCond, error) {
	var whenCond *vm.Program
	if when != "" {
		log.Debug().
			Str("WhenCond", when).
			Msg("found when condition: compiling")
		var err error
		whenCond, err = expr.Compile(when, expr.Env(newRecordEnv(&Record{})), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("unable to compile when condition: %w", err)
		}
	}
	return &WhenCond{
		whenCond: whenCond,
		when:     when,
	}, nil
}

// Evaluate runs the condition against the record. If the condition is empty
// it always returns true.
func (wc *WhenCond) Evaluate(r *Record) (bool, error) {
	if wc.whenCond == nil {
		return true, nil
	}

	output, err := expr.Run(wc.whenCond, newRecordEnv(r))
	if err != nil {
		return false, fmt.Errorf("unable to evaluate when condition: %w", err)
	}

	cond, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("when condition should return boolean, got (%T) and value %+v", output, output)
	}
	return cond, nil
}

func (wc *WhenCond) Condition() string {
	return wc.when
}

func newRecordEnv(r *Record) map[string]any {
	return map[string]any{
		recordExprNamespace: map[string]any{
			CountAttrName:     r.Count,
			MagnitudeAttrName: r.Magnitude,
			LabelAttrName:     r.Label,
		},
	}
}
