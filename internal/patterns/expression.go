package patterns

import (
	"fmt"
	"math"

	"github.com/knetic/govaluate"

	"github.com/anas-shakeel/graybmp/internal/bmp"
	"github.com/anas-shakeel/graybmp/internal/utils"
)

// ExpressionFunctions are the functions usable in expression patterns.
// govaluate passes every number as float64.
func ExpressionFunctions() map[string]govaluate.ExpressionFunction {
	unary := func(name string, fn func(float64) float64) govaluate.ExpressionFunction {
		return func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
			}
			v, ok := args[0].(float64)
			if !ok {
				return nil, fmt.Errorf("%s: argument must be numeric", name)
			}
			return fn(v), nil
		}
	}
	binary := func(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
		return func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
			}
			a, ok1 := args[0].(float64)
			b, ok2 := args[1].(float64)
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%s: arguments must be numeric", name)
			}
			return fn(a, b), nil
		}
	}

	return map[string]govaluate.ExpressionFunction{
		"sin":   unary("sin", math.Sin),
		"cos":   unary("cos", math.Cos),
		"sqrt":  unary("sqrt", math.Sqrt),
		"abs":   unary("abs", math.Abs),
		"floor": unary("floor", math.Floor),
		"min":   binary("min", math.Min),
		"max":   binary("max", math.Max),
	}
}

// CompileExpression parses expr so that errors surface before any pixel is generated.
func CompileExpression(expr string) (*govaluate.EvaluableExpression, error) {
	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(expr, ExpressionFunctions())
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", expr, err)
	}
	return compiled, nil
}

// Expression evaluates expr for every pixel with the variables x, y, width
// and height bound. Numeric results are truncated and clamped to [0, 255];
// boolean results map to 255 (true) and 0 (false).
func Expression(width, height int, expr string) (*bmp.Grid, error) {
	compiled, err := CompileExpression(expr)
	if err != nil {
		return nil, err
	}

	g := bmp.NewGrid(width, height)
	params := map[string]interface{}{
		"width":  float64(width),
		"height": float64(height),
	}
	for y := range height {
		params["y"] = float64(y)
		for x := range width {
			params["x"] = float64(x)

			result, err := compiled.Evaluate(params)
			if err != nil {
				return nil, fmt.Errorf("evaluating %q at (%d,%d): %w", expr, x, y, err)
			}

			switch v := result.(type) {
			case float64:
				g.Pixels[y][x] = utils.ClampByte(v)
			case bool:
				if v {
					g.Pixels[y][x] = 255
				}
			default:
				return nil, fmt.Errorf("expression %q produced %T, expected a number", expr, result)
			}
		}
	}
	return g, nil
}
