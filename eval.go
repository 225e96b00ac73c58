package calc

import (
	"math"
	"strconv"
)

// Eval parses source and evaluates the resulting tree.
func Eval(source []byte) (float64, error) {
	node, err := Parse(source)
	if err != nil {
		return 0, err
	}
	return Evaluate(node), nil
}

// Evaluate walks the tree and computes its value with IEEE-754 float64
// arithmetic. Division by zero yields ±Inf or NaN rather than an error.
func Evaluate(node Node) float64 {
	switch n := node.(type) {
	case *NumberNode:
		return n.Value
	case *UnaryNode:
		return evaluateUnary(n)
	case *BinaryNode:
		return evaluateBinary(n)
	}
	panic("unreachable")
}

func evaluateUnary(u *UnaryNode) float64 {
	operand := Evaluate(u.Operand)
	switch u.Op.Kind {
	case PLUS:
		return operand
	case MINUS:
		return -operand
	}
	panic("unreachable")
}

func evaluateBinary(b *BinaryNode) float64 {
	left := Evaluate(b.Left)
	right := Evaluate(b.Right)
	switch b.Op.Kind {
	case PLUS:
		return left + right
	case MINUS:
		return left - right
	case STAR:
		return left * right
	case SLASH:
		return left / right
	case CARET:
		return math.Pow(left, right)
	}
	panic("unreachable")
}

// Format renders v in the shortest form that parses back to the same value.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
