package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// colorVar is the only variable a role id expression may reference.
const colorVar = "color"

// patternFunctions are callable from role id expressions.
var patternFunctions = map[string]function.Function{
	"lower":   stdlib.LowerFunc,
	"upper":   stdlib.UpperFunc,
	"replace": stdlib.ReplaceFunc,
}

// exprPattern implements config.NamePattern over an HCL expression such as
// `"${color}_wool"`.
type exprPattern struct {
	expr hcl.Expression
}

// newExprPattern checks that expr references `color` and nothing else.
func newExprPattern(expr hcl.Expression) (*exprPattern, error) {
	vars := expr.Variables()
	if len(vars) == 0 {
		return nil, fmt.Errorf("%s: id does not reference %s", expr.Range(), colorVar)
	}
	for _, traversal := range vars {
		if name := traversal.RootName(); name != colorVar {
			return nil, fmt.Errorf("%s: unknown variable %q, only %s is available", traversal.SourceRange(), name, colorVar)
		}
	}
	return &exprPattern{expr: expr}, nil
}

// Expand implements config.NamePattern.
func (p *exprPattern) Expand(color string) (string, error) {
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{colorVar: cty.StringVal(color)},
		Functions: patternFunctions,
	}
	val, diags := p.expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s: %w", p.expr.Range(), err)
	}
	if val.IsNull() || !val.IsKnown() {
		return "", fmt.Errorf("%s: id evaluated to null", p.expr.Range())
	}
	return val.AsString(), nil
}

func (p *exprPattern) String() string {
	return p.expr.Range().String()
}
