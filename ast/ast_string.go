package ast

import (
	"fmt"
	"io"
	"strings"
)

// String renders n as an s-expression, for example (FORWARD "50).
func String(n Node) string {
	if n == nil {
		return "<nil>"
	}

	switch v := n.(type) {
	case Literal:
		return `"` + string(v)
	case Variable:
		return ":" + string(v)
	case XCor:
		return "XCOR"
	case YCor:
		return "YCOR"
	case Heading:
		return "HEADING"
	case Color:
		return "COLOR"
	case PenUp:
		return "PENUP"
	case PenDown:
		return "PENDOWN"
	case UnaryExpr:
		return fmt.Sprintf("(%s %s)", v.Op, String(v.Child))
	case BinaryExpr:
		if v.Op == Func {
			return fmt.Sprintf("(%s %s %s %s)", v.Op, v.Name, String(v.LHS), String(v.RHS))
		}
		return fmt.Sprintf("(%s %s %s)", v.Op, String(v.LHS), String(v.RHS))
	case Body:
		var items []string
		for _, item := range v {
			items = append(items, String(item))
		}
		return "[" + strings.Join(items, " ") + "]"
	case Caller:
		return fmt.Sprintf("(CALL %s %s)", v.Name, String(v.Args))
	case Empty:
		return "<empty>"
	case Newline:
		return "<newline>"
	}

	panic("unhandled")
}

func (v UnaryExpr) String() string  { return String(v) }
func (v BinaryExpr) String() string { return String(v) }
func (v Body) String() string       { return String(v) }
func (v Caller) String() string     { return String(v) }

// Dump writes each statement of the program on its own line, followed by the
// procedure table in name order.
func (p Program) Dump(w io.Writer) error {
	for _, n := range p.Body {
		if _, err := fmt.Fprintln(w, String(n)); err != nil {
			return err
		}
	}

	for _, name := range p.ProcedureNames() {
		if _, err := fmt.Fprintf(w, "; procedure %s %s\n", name, String(p.Procedures[name].LHS)); err != nil {
			return err
		}
	}
	return nil
}
