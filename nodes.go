package procalc

import (
	"strconv"
	"strings"
)

// node is a node in the expression tree. A valid tree contains exactly
// three shapes: number literals (nodeNum, no children), binary operators
// (left and right children), and unary signs (left child only).
type node struct {
	kind nodeKind

	// val is the literal value. It is meaningful only for nodeNum.
	val float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val

	nodeNeg // evaluate left, then negate
	nodeNop // evaluate left

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeMod // evaluate left, mod by right
	nodePow // evaluate left, exp by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeNeg:
		return "Neg"
	case nodeNop:
		return "Nop"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodeMod:
		return "Mod"
	case nodePow:
		return "Pow"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// symbol returns the operator spelling for an operator node kind. It is
// used in error messages and tree printing.
func (k nodeKind) symbol() string {
	switch k {
	case nodeNeg:
		return "-"
	case nodeNop:
		return "+"
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodeMod:
		return "%"
	case nodePow:
		return "^"
	}
	return "?"
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square, alt bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, square, alt)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, square, alt)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square, alt)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square, alt)
	case nodeMul:
		n.left.fmt(b, !square, alt)
		if !alt {
			b.WriteString(" * ")
		} else {
			b.WriteString(" × ")
		}
		n.right.fmt(b, !square, alt)
	case nodeDiv:
		n.left.fmt(b, !square, alt)
		if !alt {
			b.WriteString(" / ")
		} else {
			b.WriteString(" ÷ ")
		}
		n.right.fmt(b, !square, alt)
	case nodeAdd, nodeSub, nodeMod, nodePow:
		n.left.fmt(b, !square, alt)
		b.WriteString(" " + n.kind.symbol() + " ")
		n.right.fmt(b, !square, alt)
	default:
		panic("procalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
