package calc

import "fmt"

// Node is an expression tree node. The set of implementations is closed:
// *NumberNode, *UnaryNode and *BinaryNode.
type Node interface {
	fmt.Stringer
	pos() Pos
	node()
}

type NumberNode struct {
	Token
}

type UnaryNode struct {
	Op      Token
	Operand Node
}

type BinaryNode struct {
	Left  Node
	Op    Token
	Right Node
}

func (n *NumberNode) pos() Pos {
	return n.Token.Pos
}
func (u *UnaryNode) pos() Pos {
	return u.Op.Pos
}
func (b *BinaryNode) pos() Pos {
	return b.Left.pos()
}

func (n *NumberNode) node() {}
func (u *UnaryNode) node()  {}
func (b *BinaryNode) node() {}

func (n *NumberNode) String() string {
	return Format(n.Value)
}

func (u *UnaryNode) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.Kind, u.Operand)
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op.Kind, b.Right)
}
