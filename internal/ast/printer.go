package ast

import (
	"fmt"
	"strings"
)

// Print returns a tree-like string representation of the AST for debugging.
// Expressions that have been checked are suffixed with their resolved type.
func Print(node Node) string {
	var sb strings.Builder
	printNode(&sb, node, 0)
	return sb.String()
}

func typeSuffix(e Expression) string {
	if e.Type().IsZero() {
		return ""
	}
	return " : " + e.Type().String()
}

func printNode(sb *strings.Builder, node Node, indent int) {
	if node == nil {
		return
	}

	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *Program:
		sb.WriteString(prefix + "Program\n")
		for _, d := range n.Decls {
			printNode(sb, d, indent+1)
		}

	case *VariableDecl:
		sb.WriteString(fmt.Sprintf("%sVar: %s %s\n", prefix, n.Name, n.Type))

	case *FunctionDecl:
		sb.WriteString(fmt.Sprintf("%sFunction: %s\n", prefix, n.Name))

		if len(n.Params) > 0 {
			sb.WriteString(fmt.Sprintf("%s  Params:\n", prefix))
			for _, p := range n.Params {
				printNode(sb, p, indent+2)
			}
		} else {
			sb.WriteString(fmt.Sprintf("%s  Params: none\n", prefix))
		}

		sb.WriteString(fmt.Sprintf("%s  Returns: %s\n", prefix, n.ReturnType))

		if n.Body != nil {
			sb.WriteString(fmt.Sprintf("%s  Body:\n", prefix))
			printNode(sb, n.Body, indent+2)
		}

	case *Block:
		sb.WriteString(prefix + "Block\n")
		for _, v := range n.Vars {
			printNode(sb, v, indent+1)
		}
		for _, stmt := range n.Statements {
			printNode(sb, stmt, indent+1)
		}

	case *IfStmt:
		sb.WriteString(prefix + "If\n")
		sb.WriteString(prefix + "  Condition:\n")
		printNode(sb, n.Condition, indent+2)
		sb.WriteString(prefix + "  Then:\n")
		printNode(sb, n.Then, indent+2)
		if n.Else != nil {
			sb.WriteString(prefix + "  Else:\n")
			printNode(sb, n.Else, indent+2)
		}

	case *WhileStmt:
		sb.WriteString(prefix + "While\n")
		sb.WriteString(prefix + "  Condition:\n")
		printNode(sb, n.Condition, indent+2)
		sb.WriteString(prefix + "  Body:\n")
		printNode(sb, n.Body, indent+2)

	case *ForStmt:
		sb.WriteString(prefix + "For\n")
		sb.WriteString(prefix + "  Init:\n")
		printNode(sb, n.Init, indent+2)
		sb.WriteString(prefix + "  Condition:\n")
		printNode(sb, n.Condition, indent+2)
		sb.WriteString(prefix + "  Step:\n")
		printNode(sb, n.Step, indent+2)
		sb.WriteString(prefix + "  Body:\n")
		printNode(sb, n.Body, indent+2)

	case *ReturnStmt:
		sb.WriteString(prefix + "Return\n")
		printNode(sb, n.Value, indent+1)

	case *BreakStmt:
		sb.WriteString(prefix + "Break\n")

	case *ContinueStmt:
		sb.WriteString(prefix + "Continue\n")

	case *ExprStmt:
		sb.WriteString(prefix + "ExprStmt\n")
		printNode(sb, n.Expr, indent+1)

	case *IntLit:
		sb.WriteString(fmt.Sprintf("%sInt: %d%s\n", prefix, n.Value, typeSuffix(n)))

	case *FloatLit:
		sb.WriteString(fmt.Sprintf("%sFloat: %g%s\n", prefix, n.Value, typeSuffix(n)))

	case *StringLit:
		sb.WriteString(fmt.Sprintf("%sString: %q%s\n", prefix, n.Value, typeSuffix(n)))

	case *BoolLit:
		sb.WriteString(fmt.Sprintf("%sBool: %t%s\n", prefix, n.Value, typeSuffix(n)))

	case *Identifier:
		sb.WriteString(fmt.Sprintf("%sIdent: %s%s\n", prefix, n.Name, typeSuffix(n)))

	case *AssignExpr:
		sb.WriteString(fmt.Sprintf("%sAssign: %s%s\n", prefix, n.Name, typeSuffix(n)))
		printNode(sb, n.Value, indent+1)

	case *BinaryExpr:
		sb.WriteString(fmt.Sprintf("%sBinary: %s%s\n", prefix, n.Op, typeSuffix(n)))
		printNode(sb, n.Left, indent+1)
		printNode(sb, n.Right, indent+1)

	case *UnaryExpr:
		sb.WriteString(fmt.Sprintf("%sUnary: %s%s\n", prefix, n.Op, typeSuffix(n)))
		printNode(sb, n.Operand, indent+1)

	case *CallExpr:
		sb.WriteString(fmt.Sprintf("%sCall: %s%s\n", prefix, n.Function, typeSuffix(n)))
		for _, arg := range n.Args {
			printNode(sb, arg, indent+1)
		}

	case *NoExpr:
		sb.WriteString(fmt.Sprintf("%sEmpty%s\n", prefix, typeSuffix(n)))

	default:
		sb.WriteString(fmt.Sprintf("%s<unknown node %T>\n", prefix, node))
	}
}
